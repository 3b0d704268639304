package ui

import (
	"image/color"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/rs/zerolog/log"

	"smooth-snake/game"
)

var imageFiles = map[game.Image]string{
	game.ImagePause:  "pause-100.png",
	game.ImagePlay:   "play-100.png",
	game.ImageSmooth: "60-100.png",
}

// Assets holds the HUD textures. A texture that failed to load is absent
// and simply not drawn.
type Assets struct {
	textures map[game.Image]rl.Texture2D
}

// LoadAssets needs an open window
func LoadAssets(dir string) *Assets {
	a := &Assets{textures: make(map[game.Image]rl.Texture2D, len(imageFiles))}
	for img, name := range imageFiles {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("icon not found")
			continue
		}
		tex := rl.LoadTexture(path)
		if tex.ID == 0 {
			log.Warn().Str("path", path).Msg("icon could not be loaded")
			continue
		}
		a.textures[img] = tex
	}
	return a
}

func (a *Assets) Texture(img game.Image) (rl.Texture2D, bool) {
	tex, ok := a.textures[img]
	return tex, ok
}

func (a *Assets) Unload() {
	for img, tex := range a.textures {
		rl.UnloadTexture(tex)
		delete(a.textures, img)
	}
}

// Renderer draws frames into the raylib window
type Renderer struct {
	assets  *Assets
	opacity float64
}

func NewRenderer(assets *Assets) *Renderer {
	return &Renderer{assets: assets, opacity: 1}
}

// Draw replays a frame between BeginDrawing and EndDrawing
func (r *Renderer) Draw(cmds []game.DrawCommand) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)
	r.opacity = 1
	game.Replay(r, cmds)
	rl.EndDrawing()
}

func (r *Renderer) FillRect(x, y, w, h float64, c color.RGBA) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), c)
}

func (r *Renderer) DrawImage(img game.Image, x, y, w, h float64) {
	tex, ok := r.assets.Texture(img)
	if !ok {
		return
	}
	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dst := rl.NewRectangle(float32(x), float32(y), float32(w), float32(h))
	rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, rl.Fade(rl.White, float32(r.opacity)))
}

func (r *Renderer) SetOpacity(alpha float64) {
	r.opacity = alpha
}

func (r *Renderer) MeasureText(text string, fontSize int) float64 {
	return float64(rl.MeasureText(text, int32(fontSize)))
}

// FillText takes a baseline y; raylib draws from the top of the glyphs
func (r *Renderer) FillText(text string, x, y float64, fontSize int, c color.RGBA) {
	rl.DrawText(text, int32(x), int32(y)-int32(fontSize), int32(fontSize), c)
}
