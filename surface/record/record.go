// Package record provides a drawing surface that keeps every call made on
// it. The calls are grouped into the shapes and texts of the frame currently
// visible, which makes it easy to check what a chart looks like.
package record

import (
	"math"

	"github.com/midbel/dashcharts"
)

type Op struct {
	Name string
	Args []float64
	Text string
}

type Arc struct {
	X      float64
	Y      float64
	Radius float64
	Start  float64
	End    float64
}

func (a Arc) Span() float64 {
	return a.End - a.Start
}

type Shape struct {
	Filled bool
	Color  string
	Width  float64
	Closed bool
	Points []charts.Point
	Arcs   []Arc
}

// Bounds gives the bounding box of the points of the shape.
func (s Shape) Bounds() (x, y, w, h float64) {
	if len(s.Points) == 0 {
		return
	}
	minx, miny := math.Inf(1), math.Inf(1)
	maxx, maxy := math.Inf(-1), math.Inf(-1)
	for _, p := range s.Points {
		minx = math.Min(minx, p.X)
		miny = math.Min(miny, p.Y)
		maxx = math.Max(maxx, p.X)
		maxy = math.Max(maxy, p.Y)
	}
	return minx, miny, maxx - minx, maxy - miny
}

type Text struct {
	Str      string
	X        float64
	Y        float64
	Color    string
	Font     charts.Font
	Align    charts.Align
	Baseline charts.Baseline
}

type path struct {
	points []charts.Point
	arcs   []Arc
	closed bool
}

type Surface struct {
	width  float64
	height float64

	ops    []Op
	frames int
	shapes []Shape
	texts  []Text

	fill      string
	stroke    string
	lineWidth float64
	font      charts.Font
	align     charts.Align
	baseline  charts.Baseline
	path      path
}

func New(width, height float64) *Surface {
	return &Surface{
		width:     width,
		height:    height,
		fill:      "#000",
		stroke:    "#000",
		lineWidth: 1,
	}
}

// Ops returns every call made since the surface was created or reset.
func (s *Surface) Ops() []Op {
	return s.ops
}

// Count returns how many times the named call was made.
func (s *Surface) Count(name string) int {
	var n int
	for _, o := range s.ops {
		if o.Name == name {
			n++
		}
	}
	return n
}

// Frames returns the number of times the whole surface was cleared.
func (s *Surface) Frames() int {
	return s.frames
}

func (s *Surface) Shapes() []Shape {
	return s.shapes
}

// Filled returns the filled shapes of the current frame, in drawing order.
func (s *Surface) Filled() []Shape {
	var list []Shape
	for _, h := range s.shapes {
		if h.Filled {
			list = append(list, h)
		}
	}
	return list
}

func (s *Surface) Stroked() []Shape {
	var list []Shape
	for _, h := range s.shapes {
		if !h.Filled {
			list = append(list, h)
		}
	}
	return list
}

func (s *Surface) Texts() []Text {
	return s.texts
}

func (s *Surface) Reset() {
	s.ops = s.ops[:0]
	s.frames = 0
	s.shapes = nil
	s.texts = nil
	s.path = path{}
}

func (s *Surface) record(name string, args ...float64) {
	s.ops = append(s.ops, Op{Name: name, Args: args})
}

func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	s.record("clearRect", x, y, w, h)
	if x <= 0 && y <= 0 && x+w >= s.width && y+h >= s.height {
		s.frames++
		s.shapes = nil
		s.texts = nil
	}
}

func (s *Surface) BeginPath() {
	s.record("beginPath")
	s.path = path{}
}

func (s *Surface) MoveTo(x, y float64) {
	s.record("moveTo", x, y)
	s.path.points = append(s.path.points, charts.Point{X: x, Y: y})
}

func (s *Surface) LineTo(x, y float64) {
	s.record("lineTo", x, y)
	s.path.points = append(s.path.points, charts.Point{X: x, Y: y})
}

func (s *Surface) Arc(x, y, radius, start, end float64) {
	s.record("arc", x, y, radius, start, end)
	s.path.arcs = append(s.path.arcs, Arc{
		X:      x,
		Y:      y,
		Radius: radius,
		Start:  start,
		End:    end,
	})
	s.path.points = append(s.path.points,
		charts.Point{X: x + radius*math.Cos(start), Y: y + radius*math.Sin(start)},
		charts.Point{X: x + radius*math.Cos(end), Y: y + radius*math.Sin(end)},
	)
}

func (s *Surface) ClosePath() {
	s.record("closePath")
	s.path.closed = true
}

func (s *Surface) Fill() {
	s.record("fill")
	s.shapes = append(s.shapes, s.shape(true, s.fill))
}

func (s *Surface) Stroke() {
	s.record("stroke")
	s.shapes = append(s.shapes, s.shape(false, s.stroke))
}

func (s *Surface) shape(filled bool, color string) Shape {
	return Shape{
		Filled: filled,
		Color:  color,
		Width:  s.lineWidth,
		Closed: s.path.closed,
		Points: append([]charts.Point(nil), s.path.points...),
		Arcs:   append([]Arc(nil), s.path.arcs...),
	}
}

func (s *Surface) SetFillColor(color string) {
	s.ops = append(s.ops, Op{Name: "fillStyle", Text: color})
	s.fill = color
}

func (s *Surface) SetStrokeColor(color string) {
	s.ops = append(s.ops, Op{Name: "strokeStyle", Text: color})
	s.stroke = color
}

func (s *Surface) SetLineWidth(width float64) {
	s.record("lineWidth", width)
	s.lineWidth = width
}

func (s *Surface) SetFont(font charts.Font) {
	s.record("font", font.Size)
	s.font = font
}

func (s *Surface) SetTextAlign(align charts.Align) {
	s.ops = append(s.ops, Op{Name: "textAlign", Text: align.String()})
	s.align = align
}

func (s *Surface) SetTextBaseline(base charts.Baseline) {
	s.ops = append(s.ops, Op{Name: "textBaseline", Text: base.String()})
	s.baseline = base
}

func (s *Surface) FillText(str string, x, y float64) {
	s.ops = append(s.ops, Op{Name: "fillText", Args: []float64{x, y}, Text: str})
	s.texts = append(s.texts, Text{
		Str:      str,
		X:        x,
		Y:        y,
		Color:    s.fill,
		Font:     s.font,
		Align:    s.align,
		Baseline: s.baseline,
	})
}
