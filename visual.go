package bastion

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Visual is an opaque drawable handle. The core only needs its size; the
// Surface decides how to put it on screen.
type Visual interface {
	Size() Vec2
}

// BoundsAt returns the bounding rectangle of v centered on center.
func BoundsAt(v Visual, center Vec2) Rect {
	s := v.Size()
	return RectCentered(center, s.X, s.Y)
}

// Surface is the draw primitive supplied by the rendering collaborator.
type Surface interface {
	Blit(v Visual, topLeft Vec2, alpha float64)
}

// ImageVisual draws an ebiten image scaled to a fixed size.
type ImageVisual struct {
	Image         *ebiten.Image
	Width, Height float64
}

// NewImageVisual wraps img. A zero width or height uses the image's own
// dimension.
func NewImageVisual(img *ebiten.Image, w, h float64) *ImageVisual {
	b := img.Bounds()
	if w == 0 {
		w = float64(b.Dx())
	}
	if h == 0 {
		h = float64(b.Dy())
	}
	return &ImageVisual{Image: img, Width: w, Height: h}
}

// Size returns the drawn size.
func (v *ImageVisual) Size() Vec2 { return Vec2{v.Width, v.Height} }

// SolidVisual is a flat colored rectangle.
type SolidVisual struct {
	Width, Height float64
	Color         Color
}

// Size returns the rectangle size.
func (v SolidVisual) Size() Vec2 { return Vec2{v.Width, v.Height} }

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(c.R*c.A*255 + 0.5),
		G: uint8(c.G*c.A*255 + 0.5),
		B: uint8(c.B*c.A*255 + 0.5),
		A: uint8(c.A*255 + 0.5),
	}
}
