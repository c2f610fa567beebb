package charts

import (
	"time"

	"github.com/midbel/slices"
)

// LineOptions configures RenderLine. Zero fields take the value documented
// on them; DefaultLineOptions also turns the animation and the grid on.
type LineOptions struct {
	// Width and Height default to the size of the surface.
	Width  float64
	Height float64
	// Padding defaults to the responsive padding for Width.
	Padding float64
	// LineColor and PointColor default to the first two colours of
	// BarColors.
	LineColor  string
	PointColor string
	Title      string
	Animate    bool
	// Duration defaults to 1.5 seconds.
	Duration time.Duration
	// GridLines draws GridCount+1 horizontal lines labelled with their
	// value and one vertical line per point. Without it, only the left and
	// bottom axes are drawn.
	GridLines bool
	GridCount int
	// PointRadius defaults to 5 and LineWidth to 2.
	PointRadius float64
	LineWidth   float64
	Fonts       Fonts
	Theme       Theme
	Responsive  Responsive
}

const (
	defaultLineDuration = 1500 * time.Millisecond
	defaultGridCount    = 5
	defaultPointRadius  = 5
	defaultLineWidth    = 2
)

func DefaultLineOptions() LineOptions {
	return LineOptions{
		LineColor:   BarColors.At(0),
		PointColor:  BarColors.At(1),
		Animate:     true,
		Duration:    defaultLineDuration,
		GridLines:   true,
		GridCount:   defaultGridCount,
		PointRadius: defaultPointRadius,
		LineWidth:   defaultLineWidth,
		Fonts:       DefaultFonts(),
		Theme:       DefaultTheme(),
		Responsive:  DefaultResponsive(),
	}
}

func (o LineOptions) withDefaults(s Surface) LineOptions {
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
	if o.LineColor == "" {
		o.LineColor = BarColors.At(0)
	}
	if o.PointColor == "" {
		o.PointColor = BarColors.At(1)
	}
	if o.Duration <= 0 {
		o.Duration = defaultLineDuration
	}
	if o.GridCount <= 0 {
		o.GridCount = defaultGridCount
	}
	if o.PointRadius <= 0 {
		o.PointRadius = defaultPointRadius
	}
	if o.LineWidth <= 0 {
		o.LineWidth = defaultLineWidth
	}
	o.Fonts = o.Fonts.withDefaults()
	o.Theme = o.Theme.withDefaults()
	return o
}

// RenderLine draws the values of the series as a polyline with a marker on
// each point. The animation reveals the points from left to right. A series
// with a single point is rejected with ErrTooFewPoints; an empty one only
// gets its grid or axes.
func (r *Renderer) RenderLine(s Surface, serie Series, opts LineOptions) error {
	if missing(s) {
		return nil
	}
	if err := serie.Validate(); err != nil {
		return r.reject(KindLine, err)
	}
	if serie.Len() == 1 {
		return r.reject(KindLine, ErrTooFewPoints)
	}
	c := newLineChart(serie, opts.withDefaults(s))
	r.run(s, KindLine, c.Animate, c.Duration, func(p float64) {
		c.draw(s, p)
	})
	return nil
}

type lineChart struct {
	LineOptions
	lay Layout

	serie Series
	scale Scaler
}

func newLineChart(serie Series, opts LineOptions) lineChart {
	lay := NewLayout(opts.Width, opts.Height, opts.Padding)
	return lineChart{
		LineOptions: opts,
		lay:         lay,
		serie:       serie,
		scale:       NumberScaler(ValueDomain(serie.Max()), NewRange(0, lay.DrawingHeight())),
	}
}

func (c lineChart) spacing() float64 {
	n := c.serie.Len()
	if n < 2 {
		return 0
	}
	return c.lay.DrawingWidth() / float64(n-1)
}

func (c lineChart) point(i int) Point {
	return Point{
		X: c.lay.Left() + c.spacing()*float64(i),
		Y: c.lay.Bottom() - c.scale.Scale(c.serie.Values[i]),
	}
}

// visible tells whether the i-th point is revealed at progress p.
func (c lineChart) visible(i int, p float64) bool {
	return float64(i)/float64(c.serie.Len()-1) <= p
}

func (c lineChart) draw(s Surface, p float64) {
	s.ClearRect(0, 0, c.Width, c.Height)
	drawTitle(s, c.Title, c.lay.CenterX(), c.lay.Top()/2, c.Fonts, c.Theme)
	if c.GridLines {
		c.drawGrid(s)
	} else {
		drawAxis(s, c.lay, c.Theme.Axis)
	}
	c.drawLabels(s)
	if c.serie.Len() < 2 {
		return
	}
	c.drawLine(s, p)
	c.drawPoints(s, p)
}

func (c lineChart) drawGrid(s Surface) {
	var (
		max   = c.serie.Max()
		step  = c.lay.DrawingHeight() / float64(c.GridCount)
		style = textStyle{
			Font:  c.Fonts.font(c.Fonts.Tick),
			Color: c.Theme.Tick,
			Align: AlignRight,
		}
	)
	for i := 0; i <= c.GridCount; i++ {
		y := c.lay.Top() + step*float64(i)
		domainLine(s, c.lay.Left(), y, c.lay.Right(), y, c.Theme.Grid)
		drawText(s, formatValue(tickValue(max, c.GridCount, i)), c.lay.Left()-tickOffset, y+tickShift, style)
	}
	for i := range c.serie.Values {
		x := c.lay.Left() + c.spacing()*float64(i)
		domainLine(s, x, c.lay.Top(), x, c.lay.Bottom(), c.Theme.Grid)
	}
}

func (c lineChart) drawLabels(s Surface) {
	style := centered(c.Fonts.font(c.Fonts.Tick), c.Theme.Tick)
	for i := range c.serie.Values {
		var (
			x     = c.lay.Left() + c.spacing()*float64(i)
			label = c.Responsive.Truncate(c.Width, c.serie.Label(i))
		)
		drawText(s, label, x, c.lay.Bottom()+labelOffset, style)
	}
}

func (c lineChart) drawLine(s Surface, p float64) {
	s.BeginPath()
	fst := c.point(0)
	s.MoveTo(fst.X, fst.Y)
	for i := range slices.Rest(c.serie.Values) {
		i++
		if !c.visible(i, p) {
			break
		}
		pt := c.point(i)
		s.LineTo(pt.X, pt.Y)
	}
	s.SetStrokeColor(c.LineColor)
	s.SetLineWidth(c.LineWidth)
	s.Stroke()
}

func (c lineChart) drawPoints(s Surface, p float64) {
	style := centered(c.Fonts.font(c.Fonts.Value), c.Theme.Text)
	for i, v := range c.serie.Values {
		if !c.visible(i, p) {
			break
		}
		pt := c.point(i)
		fillCircle(s, pt.X, pt.Y, c.PointRadius, c.PointColor)
		drawText(s, formatValue(v), pt.X, pt.Y-(c.PointRadius+valueOffset), style)
	}
}
