package bastion

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// whitePixel is a 1x1 white image used for SolidVisual. Created on first use
// so that packages importing bastion do not touch the graphics driver at init.
var whitePixel *ebiten.Image

func solidPixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(ColorWhite.toRGBA())
	}
	return whitePixel
}

// ScreenSurface is a Surface that draws onto an ebiten image.
type ScreenSurface struct {
	Target *ebiten.Image
	op     ebiten.DrawImageOptions
}

// NewScreenSurface wraps target.
func NewScreenSurface(target *ebiten.Image) *ScreenSurface {
	return &ScreenSurface{Target: target}
}

// Blit draws v with its top-left corner at topLeft. Visuals other than
// *ImageVisual and SolidVisual are ignored.
func (s *ScreenSurface) Blit(v Visual, topLeft Vec2, alpha float64) {
	op := &s.op
	op.GeoM.Reset()
	op.ColorScale.Reset()
	a := float32(alpha)

	switch vis := v.(type) {
	case *ImageVisual:
		b := vis.Image.Bounds()
		if b.Dx() == 0 || b.Dy() == 0 {
			return
		}
		op.GeoM.Scale(vis.Width/float64(b.Dx()), vis.Height/float64(b.Dy()))
		op.GeoM.Translate(topLeft.X, topLeft.Y)
		op.ColorScale.Scale(a, a, a, a)
		s.Target.DrawImage(vis.Image, op)
	case SolidVisual:
		c := vis.Color
		ca := float32(c.A) * a
		op.GeoM.Scale(vis.Width, vis.Height)
		op.GeoM.Translate(topLeft.X, topLeft.Y)
		op.ColorScale.Scale(float32(c.R)*ca, float32(c.G)*ca, float32(c.B)*ca, ca)
		s.Target.DrawImage(solidPixel(), op)
	}
}
