package charts

import (
	"fmt"
	"math"
	"time"
)

// PieOptions configures RenderPie. Zero fields take the value documented on
// them; DefaultPieOptions also turns the animation on.
type PieOptions struct {
	// Width and Height default to the size of the surface.
	Width  float64
	Height float64
	// Colors defaults to PieColors. Slices cycle through it.
	Colors   Palette
	Title    string
	Animate  bool
	Duration time.Duration
	// Donut punches the center of the pie out, leaving a ring DonutWidth
	// wide (50 by default).
	Donut      bool
	DonutWidth float64
	// A slice gets a label when it covers more than LabelThreshold of the
	// circle and the animation is past LabelProgress. Both default to 0.2; a
	// negative value disables the corresponding check.
	LabelThreshold float64
	LabelProgress  float64
	// LabelOffset is the distance between the circle and the labels (20 by
	// default).
	LabelOffset float64
	// Margin is the space left between the circle and the edges of the
	// surface. It defaults to the responsive padding for Width.
	Margin     float64
	Fonts      Fonts
	Theme      Theme
	Responsive Responsive
}

func DefaultPieOptions() PieOptions {
	return PieOptions{
		Colors:         clonePalette(PieColors),
		Animate:        true,
		Duration:       time.Second,
		DonutWidth:     50,
		LabelThreshold: 0.2,
		LabelProgress:  0.2,
		LabelOffset:    20,
		Fonts:          DefaultFonts(),
		Theme:          DefaultTheme(),
		Responsive:     DefaultResponsive(),
	}
}

func (o PieOptions) withDefaults(s Surface) PieOptions {
	w, h := s.Size()
	if o.Width <= 0 {
		o.Width = w
	}
	if o.Height <= 0 {
		o.Height = h
	}
	o.Responsive = o.Responsive.withDefaults()
	if o.Margin <= 0 {
		o.Margin = o.Responsive.PaddingFor(o.Width)
	}
	if len(o.Colors) == 0 {
		o.Colors = PieColors
	}
	if o.Duration <= 0 {
		o.Duration = time.Second
	}
	if o.DonutWidth <= 0 {
		o.DonutWidth = 50
	}
	if o.LabelThreshold == 0 {
		o.LabelThreshold = 0.2
	}
	if o.LabelProgress == 0 {
		o.LabelProgress = 0.2
	}
	if o.LabelOffset <= 0 {
		o.LabelOffset = 20
	}
	o.Fonts = o.Fonts.withDefaults()
	o.Theme = o.Theme.withDefaults()
	return o
}

// RenderPie draws one slice per value of the series, clockwise from the top
// of the circle. The animation sweeps the circle from 0 to 2π.
func (r *Renderer) RenderPie(s Surface, serie Series, opts PieOptions) error {
	if missing(s) {
		return nil
	}
	if err := serie.validatePositive(); err != nil {
		return r.reject(KindPie, err)
	}
	c := newPieChart(serie, opts.withDefaults(s))
	r.run(s, KindPie, c.Animate, c.Duration, func(p float64) {
		c.draw(s, p)
	})
	return nil
}

type wedge struct {
	Index int
	Start float64
	End   float64
}

func (w wedge) Span() float64 {
	return w.End - w.Start
}

func (w wedge) Middle() float64 {
	return w.Start + w.Span()/2
}

type pieChart struct {
	PieOptions
	lay Layout

	serie Series
	scale AngleScale
}

func newPieChart(serie Series, opts PieOptions) pieChart {
	return pieChart{
		PieOptions: opts,
		lay:        NewLayout(opts.Width, opts.Height, opts.Margin),
		serie:      serie,
		scale:      NewAngleScale(serie.Sum()),
	}
}

func (c pieChart) radius() float64 {
	return math.Min(c.lay.CenterX(), c.lay.CenterY()) - c.Margin
}

func (c pieChart) innerRadius() float64 {
	return c.radius() - c.DonutWidth
}

// wedges computes the slices at progress p. The start of each slice is the
// exact end of the previous one.
func (c pieChart) wedges(p float64) []wedge {
	if c.scale.total <= 0 {
		return nil
	}
	var (
		list  = make([]wedge, 0, c.serie.Len())
		start = topAngle
	)
	for i, v := range c.serie.Values {
		span := c.scale.Angle(v, p)
		list = append(list, wedge{
			Index: i,
			Start: start,
			End:   start + span,
		})
		start += span
	}
	return list
}

func (c pieChart) withLabel(i int, p float64) bool {
	if c.LabelProgress >= 0 && p <= c.LabelProgress {
		return false
	}
	if c.LabelThreshold >= 0 && c.scale.Fraction(c.serie.Values[i]) <= c.LabelThreshold {
		return false
	}
	return true
}

func (c pieChart) labelText(i int) string {
	var (
		label = c.Responsive.Truncate(c.Width, c.serie.Label(i))
		pct   = math.Round(c.scale.Fraction(c.serie.Values[i]) * 100)
	)
	return fmt.Sprintf("%s (%s%%)", label, formatValue(pct))
}

func (c pieChart) draw(s Surface, p float64) {
	s.ClearRect(0, 0, c.Width, c.Height)
	drawTitle(s, c.Title, c.lay.CenterX(), c.Margin/2, c.Fonts, c.Theme)
	if c.radius() <= 0 {
		return
	}
	c.drawPie(s, p)
}

func (c pieChart) drawPie(s Surface, p float64) {
	var (
		cx, cy = c.lay.CenterX(), c.lay.CenterY()
		radius = c.radius()
		inner  = c.innerRadius()
		style  = centered(c.Fonts.font(c.Fonts.Label), c.Theme.Text)
	)
	for _, w := range c.wedges(p) {
		fillWedge(s, cx, cy, radius, w.Start, w.End, c.Colors.At(w.Index))
		if c.Donut && inner > 0 {
			fillWedge(s, cx, cy, inner, w.Start, w.End, c.Theme.Background)
		}
		if !c.withLabel(w.Index, p) {
			continue
		}
		pos := getPosFromAngle(cx, cy, w.Middle(), (radius+c.LabelOffset)*p)
		drawText(s, c.labelText(w.Index), pos.X, pos.Y, style)
	}
}
