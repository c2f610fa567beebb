package charts

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func UniformPadding(p float64) Padding {
	return Padding{
		Top:    p,
		Right:  p,
		Bottom: p,
		Left:   p,
	}
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// Layout is the rectangle of a surface charts draw in once the padding is
// removed.
type Layout struct {
	Width  float64
	Height float64
	Padding
}

func NewLayout(width, height, pad float64) Layout {
	return Layout{
		Width:   width,
		Height:  height,
		Padding: UniformPadding(pad),
	}
}

func (c Layout) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Layout) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

func (c Layout) Left() float64 {
	return c.Padding.Left
}

func (c Layout) Right() float64 {
	return c.Width - c.Padding.Right
}

func (c Layout) Top() float64 {
	return c.Padding.Top
}

func (c Layout) Bottom() float64 {
	return c.Height - c.Padding.Bottom
}

func (c Layout) CenterX() float64 {
	return c.Width / 2
}

func (c Layout) CenterY() float64 {
	return c.Height / 2
}
