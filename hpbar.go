package bastion

// HPBarName is the child name the core gives its health bar.
const HPBarName = "HPBar"

// HPBar draws a horizontal fill bar sized Width×Height, centered on its
// object. Proportion is clamped to [0, 1] when drawn.
type HPBar struct {
	Proportion    float64
	Width, Height float64
	Back, Fill    Color
}

// NewHPBar creates a bar object at the local offset pos and returns both.
func NewHPBar(pos Vec2, w, h float64) (*GameObject, *HPBar) {
	bar := &HPBar{
		Proportion: 1,
		Width:      w,
		Height:     h,
		Back:       Color{0.2, 0.2, 0.2, 1},
		Fill:       Color{0.25, 0.85, 0.3, 1},
	}
	obj := NewGameObject(HPBarName, pos, nil)
	obj.UserData = bar
	obj.AddComponent(bar)
	return obj, bar
}

// Draw blits the background then the filled part, left aligned.
func (b *HPBar) Draw(o *GameObject, dst Surface) {
	r := RectCentered(o.WorldPos(), b.Width, b.Height)
	dst.Blit(SolidVisual{Width: b.Width, Height: b.Height, Color: b.Back}, r.TopLeft(), o.Alpha)
	if fw := b.Width * clamp01(b.Proportion); fw > 0 {
		dst.Blit(SolidVisual{Width: fw, Height: b.Height, Color: b.Fill}, r.TopLeft(), o.Alpha)
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
