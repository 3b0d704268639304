package game

import (
	"fmt"
	"image/color"

	"smooth-snake/game/types"
)

// Op identifies a drawing primitive
type Op int

const (
	OpFillRect Op = iota
	OpDrawImage
	OpSetOpacity
	OpFillText
)

// Image names one of the HUD icons supplied by the asset provider
type Image int

const (
	ImagePause Image = iota
	ImagePlay
	ImageSmooth
)

// Align anchors text relative to its X coordinate
type Align int

const (
	AlignLeft Align = iota
	AlignRight
	AlignCenter
)

// DrawCommand is one call on a Surface. Coordinates are pixels; text Y is the baseline.
type DrawCommand struct {
	Op       Op
	X, Y     float64
	W, H     float64
	Color    color.RGBA
	Image    Image
	Opacity  float64
	Text     string
	FontSize int
	Align    Align
}

// Surface is the drawing context a frontend hands to Replay
type Surface interface {
	FillRect(x, y, w, h float64, c color.RGBA)
	DrawImage(img Image, x, y, w, h float64)
	SetOpacity(alpha float64)
	MeasureText(text string, fontSize int) float64
	FillText(text string, x, y float64, fontSize int, c color.RGBA)
}

// Replay executes a frame's commands in order
func Replay(s Surface, cmds []DrawCommand) {
	for _, cmd := range cmds {
		switch cmd.Op {
		case OpFillRect:
			s.FillRect(cmd.X, cmd.Y, cmd.W, cmd.H, cmd.Color)
		case OpDrawImage:
			s.DrawImage(cmd.Image, cmd.X, cmd.Y, cmd.W, cmd.H)
		case OpSetOpacity:
			s.SetOpacity(cmd.Opacity)
		case OpFillText:
			x := cmd.X
			switch cmd.Align {
			case AlignRight:
				x -= s.MeasureText(cmd.Text, cmd.FontSize)
			case AlignCenter:
				x -= s.MeasureText(cmd.Text, cmd.FontSize) / 2
			}
			s.FillText(cmd.Text, x, cmd.Y, cmd.FontSize, cmd.Color)
		}
	}
}

var (
	FieldColor = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}
	SnakeColor = color.RGBA{R: 0x00, G: 0xff, B: 0x00, A: 0xff}
	FoodColor  = color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 0xff}
	TextColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

const (
	iconOffsetX = 5
	iconOffsetY = 5
	iconSize    = 40

	dimmedOpacity = 0.2
	tileGap       = 2 // px left between neighbouring tiles

	scoreFontSize    = 20
	scoreMarginRight = 10
	scoreBaseline    = 25
	gameOverFontSize = 30
)

// frameBuilder collects the commands for one tick
type frameBuilder struct {
	cmds []DrawCommand
}

func (b *frameBuilder) fillRect(x, y, w, h float64, c color.RGBA) {
	b.cmds = append(b.cmds, DrawCommand{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: c})
}

func (b *frameBuilder) image(img Image, x, y, size float64) {
	b.cmds = append(b.cmds, DrawCommand{Op: OpDrawImage, Image: img, X: x, Y: y, W: size, H: size})
}

func (b *frameBuilder) opacity(alpha float64) {
	b.cmds = append(b.cmds, DrawCommand{Op: OpSetOpacity, Opacity: alpha})
}

func (b *frameBuilder) text(text string, x, y float64, size int, align Align) {
	b.cmds = append(b.cmds, DrawCommand{
		Op:       OpFillText,
		X:        x,
		Y:        y,
		Text:     text,
		FontSize: size,
		Color:    TextColor,
		Align:    align,
	})
}

// GameOverText is the centered overlay shown when a run ends
func GameOverText(score, widthPx, heightPx int) DrawCommand {
	return DrawCommand{
		Op:       OpFillText,
		X:        float64(widthPx) / 2,
		Y:        float64(heightPx) / 2,
		Text:     fmt.Sprintf("Game over! Your score: %d", score),
		FontSize: gameOverFontSize,
		Color:    TextColor,
		Align:    AlignCenter,
	}
}

func (b *frameBuilder) tile(p types.Point, c color.RGBA) {
	b.fillRect(p.X*types.TileSize, p.Y*types.TileSize, types.TileSize-tileGap, types.TileSize-tileGap, c)
}
