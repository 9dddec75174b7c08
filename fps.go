package bastion

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// FPSWidgetName is the object name of the FPS overlay.
const FPSWidgetName = "fps_widget"

// fpsRefresh is how often, in seconds, the overlay text is redrawn.
const fpsRefresh = 0.5

// fpsWidget redraws the FPS/TPS readout into its image.
type fpsWidget struct {
	img     *ebiten.Image
	elapsed float64
}

// NewFPSWidget creates an object that displays the current FPS and TPS in
// the top-left corner of the screen. Add it last so it draws on top.
func NewFPSWidget() *GameObject {
	// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
	img := ebiten.NewImage(100, 32)
	vis := NewImageVisual(img, 0, 0)
	obj := NewGameObject(FPSWidgetName, Vec2{50, 16}, vis)
	w := &fpsWidget{img: img, elapsed: fpsRefresh}
	obj.AddComponent(w)
	return obj
}

// Update refreshes the readout every fpsRefresh seconds.
func (w *fpsWidget) Update(o *GameObject, s *Scene) {
	w.elapsed += s.Dt()
	if w.elapsed < fpsRefresh {
		return
	}
	w.elapsed = 0

	w.img.Clear()
	// Semi-transparent background for readability
	w.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(w.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
}
