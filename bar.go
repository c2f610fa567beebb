package charts

import (
	"time"
)

// BarOptions configures RenderBar. Zero fields take the value documented on
// them; DefaultBarOptions also turns the animation on.
type BarOptions struct {
	// Width and Height default to the size of the surface.
	Width  float64
	Height float64
	// Padding defaults to the responsive padding for Width.
	Padding float64
	// BarColors defaults to BarColors. Bars cycle through it.
	BarColors Palette
	Title     string
	Animate   bool
	// Duration defaults to one second.
	Duration   time.Duration
	Fonts      Fonts
	Theme      Theme
	Responsive Responsive
}

func DefaultBarOptions() BarOptions {
	return BarOptions{
		BarColors:  clonePalette(BarColors),
		Animate:    true,
		Duration:   time.Second,
		Fonts:      DefaultFonts(),
		Theme:      DefaultTheme(),
		Responsive: DefaultResponsive(),
	}
}

func (o BarOptions) withDefaults(s Surface) BarOptions {
	w, h := s.Size()
	if o.Width <= 0 {
		o.Width = w
	}
	if o.Height <= 0 {
		o.Height = h
	}
	o.Responsive = o.Responsive.withDefaults()
	if o.Padding <= 0 {
		o.Padding = o.Responsive.PaddingFor(o.Width)
	}
	if len(o.BarColors) == 0 {
		o.BarColors = BarColors
	}
	if o.Duration <= 0 {
		o.Duration = time.Second
	}
	o.Fonts = o.Fonts.withDefaults()
	o.Theme = o.Theme.withDefaults()
	return o
}

// RenderBar draws one vertical bar per value of the series, growing from
// the bottom axis while the animation runs.
func (r *Renderer) RenderBar(s Surface, serie Series, opts BarOptions) error {
	if missing(s) {
		return nil
	}
	if err := serie.validatePositive(); err != nil {
		return r.reject(KindBar, err)
	}
	c := newBarChart(serie, opts.withDefaults(s))
	r.run(s, KindBar, c.Animate, c.Duration, func(p float64) {
		c.draw(s, p)
	})
	return nil
}

type barChart struct {
	BarOptions
	lay Layout

	serie Series
	scale Scaler
	gap   float64
}

func newBarChart(serie Series, opts BarOptions) barChart {
	lay := NewLayout(opts.Width, opts.Height, opts.Padding)
	return barChart{
		BarOptions: opts,
		lay:        lay,
		serie:      serie,
		scale:      NumberScaler(ValueDomain(serie.Max()), NewRange(0, lay.DrawingHeight())),
		gap:        opts.Responsive.GapFor(opts.Width),
	}
}

func (c barChart) barWidth() float64 {
	n := c.serie.Len()
	if n == 0 {
		return 0
	}
	w := c.lay.DrawingWidth()/float64(n) - c.gap
	if w < 0 {
		w = 0
	}
	return w
}

// bar gives the position and the size of the i-th bar at progress p.
func (c barChart) bar(i int, p float64) (x, y, w, h float64) {
	w = c.barWidth()
	h = c.scale.Scale(c.serie.Values[i]) * p
	x = c.lay.Left() + float64(i)*(w+c.gap)
	y = c.lay.Bottom() - h
	return x, y, w, h
}

func (c barChart) draw(s Surface, p float64) {
	s.ClearRect(0, 0, c.Width, c.Height)
	drawTitle(s, c.Title, c.lay.CenterX(), c.lay.Top()/2, c.Fonts, c.Theme)
	drawAxis(s, c.lay, c.Theme.Axis)
	c.drawBars(s, p)
}

func (c barChart) drawBars(s Surface, p float64) {
	var (
		value = centered(c.Fonts.font(c.Fonts.Value), c.Theme.Text)
		label = centered(c.Fonts.font(c.Fonts.Label), c.Theme.Text)
	)
	for i, v := range c.serie.Values {
		x, y, w, h := c.bar(i, p)
		fillRect(s, x, y, w, h, c.BarColors.At(i))

		mid := x + w/2
		drawText(s, formatValue(v), mid, y-valueOffset, value)
		drawText(s, c.serie.Label(i), mid, c.lay.Bottom()+labelOffset, label)
	}
}
