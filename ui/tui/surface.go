package tui

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"smooth-snake/game"
	"smooth-snake/game/types"
)

// One tile is two columns wide and one row high, which keeps it roughly
// square on common terminal fonts.
const (
	CellWidthPx  = types.TileSize / 2
	CellHeightPx = types.TileSize
)

var glyphs = map[game.Image]rune{
	game.ImagePause:  '=',
	game.ImagePlay:   '>',
	game.ImageSmooth: '~',
}

// Surface paints frames into a tcell screen, one cell per CellWidthPx x CellHeightPx pixels
type Surface struct {
	screen  tcell.Screen
	opacity float64
	bg      map[[2]int]tcell.Color
}

func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen, opacity: 1, bg: make(map[[2]int]tcell.Color)}
}

// PixelSize is the surface size the engine sees for the current screen
func (s *Surface) PixelSize() (int, int) {
	cols, rows := s.screen.Size()
	return cols * CellWidthPx, rows * CellHeightPx
}

// Draw clears the screen, replays a frame and shows it
func (s *Surface) Draw(cmds []game.DrawCommand) {
	s.screen.Clear()
	s.opacity = 1
	clear(s.bg)
	game.Replay(s, cmds)
	s.screen.Show()
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (s *Surface) FillRect(x, y, w, h float64, c color.RGBA) {
	cols, rows := s.screen.Size()
	col0, row0 := int(x/CellWidthPx), int(y/CellHeightPx)
	col1 := min(int(math.Ceil((x+w)/CellWidthPx)), cols)
	row1 := min(int(math.Ceil((y+h)/CellHeightPx)), rows)

	style := tcell.StyleDefault.Background(rgb(c))
	for row := max(row0, 0); row < row1; row++ {
		for col := max(col0, 0); col < col1; col++ {
			s.screen.SetContent(col, row, ' ', nil, style)
			s.bg[[2]int{col, row}] = rgb(c)
		}
	}
}

// DrawImage puts the icon's glyph in the cell holding the image's top left corner
func (s *Surface) DrawImage(img game.Image, x, y, w, h float64) {
	r, ok := glyphs[img]
	if !ok {
		return
	}
	col, row := int(x/CellWidthPx), int(y/CellHeightPx)
	style := s.cellStyle(col, row).Foreground(tcell.ColorWhite).Bold(true)
	if s.opacity < 1 {
		style = style.Bold(false).Dim(true)
	}
	s.screen.SetContent(col, row, r, nil, style)
}

func (s *Surface) SetOpacity(alpha float64) {
	s.opacity = alpha
}

// MeasureText ignores the font size: every rune takes one column
func (s *Surface) MeasureText(text string, fontSize int) float64 {
	return float64(len([]rune(text)) * CellWidthPx)
}

// FillText writes on the row holding the baseline
func (s *Surface) FillText(text string, x, y float64, fontSize int, c color.RGBA) {
	_, rows := s.screen.Size()
	row := min(int(y/CellHeightPx), rows-1)
	col := int(math.Round(x / CellWidthPx))
	for _, r := range text {
		if col >= 0 {
			s.screen.SetContent(col, row, r, nil, s.cellStyle(col, row).Foreground(rgb(c)))
		}
		col++
	}
}

// cellStyle keeps the background already painted under a cell
func (s *Surface) cellStyle(col, row int) tcell.Style {
	style := tcell.StyleDefault
	if bg, ok := s.bg[[2]int{col, row}]; ok {
		style = style.Background(bg)
	}
	return style
}
