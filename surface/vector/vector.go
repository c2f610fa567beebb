// Package vector implements a chart surface that builds an SVG document.
//
// Clearing the whole surface starts a new document, so that Render always
// outputs the last frame drawn. Clearing only a part of it paints that part
// with the background colour since SVG elements can not be erased.
package vector

import (
	"bufio"
	"io"
	"math"

	"github.com/midbel/dashcharts"
	"github.com/midbel/svg"
)

const epsilon = 1e-9

type segment struct {
	kind  byte
	pos   svg.Pos
	rad   float64
	large bool
	sweep bool
}

const (
	segMove byte = iota
	segLine
	segArc
	segClose
)

type Surface struct {
	Background string

	width  float64
	height float64
	list   []svg.Element

	fill      string
	stroke    string
	lineWidth float64
	font      charts.Font
	align     charts.Align
	baseline  charts.Baseline

	path    []segment
	current bool
}

func New(width, height float64) *Surface {
	return &Surface{
		Background: "#fff",
		width:      width,
		height:     height,
		fill:       "black",
		stroke:     "black",
		lineWidth:  1,
	}
}

// Render writes the current frame as a standalone SVG document.
func (s *Surface) Render(w io.Writer) error {
	el := svg.NewSVG()
	el.OmitProlog = true
	el.Dim = svg.NewDim(s.width, s.height)
	for _, e := range s.list {
		el.Append(e)
	}
	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

// Len returns the number of elements of the current frame.
func (s *Surface) Len() int {
	return len(s.list)
}

func (s *Surface) Size() (float64, float64) {
	return s.width, s.height
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	if x <= 0 && y <= 0 && x+w >= s.width && y+h >= s.height {
		s.list = s.list[:0]
		return
	}
	var el svg.Rect
	el.Pos = svg.NewPos(x, y)
	el.Dim = svg.NewDim(w, h)
	el.Fill = getFill(s.Background)
	s.list = append(s.list, el.AsElement())
}

func (s *Surface) BeginPath() {
	s.path = s.path[:0]
	s.current = false
}

func (s *Surface) MoveTo(x, y float64) {
	s.path = append(s.path, segment{kind: segMove, pos: svg.NewPos(x, y)})
	s.current = true
}

func (s *Surface) LineTo(x, y float64) {
	if !s.current {
		s.MoveTo(x, y)
		return
	}
	s.path = append(s.path, segment{kind: segLine, pos: svg.NewPos(x, y)})
}

func (s *Surface) Arc(x, y, radius, start, end float64) {
	pos := getPosFromAngle(x, y, start, radius)
	if s.current {
		s.LineTo(pos.X, pos.Y)
	} else {
		s.MoveTo(pos.X, pos.Y)
	}
	span := end - start
	if math.Abs(span) < epsilon {
		return
	}
	if math.Abs(span) >= 2*math.Pi-epsilon {
		mid := start + span/2
		s.arcTo(x, y, radius, mid, span/2)
		s.arcTo(x, y, radius, end, span/2)
		return
	}
	s.arcTo(x, y, radius, end, span)
}

func (s *Surface) arcTo(x, y, radius, angle, span float64) {
	s.path = append(s.path, segment{
		kind:  segArc,
		pos:   getPosFromAngle(x, y, angle, radius),
		rad:   radius,
		large: math.Abs(span) > math.Pi,
		sweep: span > 0,
	})
}

func (s *Surface) ClosePath() {
	s.path = append(s.path, segment{kind: segClose})
}

func (s *Surface) Fill() {
	pat := s.makePath()
	pat.Fill = getFill(s.fill)
	s.list = append(s.list, pat.AsElement())
}

func (s *Surface) Stroke() {
	pat := s.makePath()
	pat.Fill = svg.NewFill("none")
	pat.Stroke = svg.NewStroke(s.stroke, s.lineWidth)
	s.list = append(s.list, pat.AsElement())
}

func (s *Surface) makePath() *svg.Path {
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	for _, g := range s.path {
		switch g.kind {
		case segMove:
			pat.AbsMoveTo(g.pos)
		case segLine:
			pat.AbsLineTo(g.pos)
		case segArc:
			pat.AbsArcTo(g.pos, g.rad, g.rad, 0, g.large, g.sweep)
		case segClose:
			pat.ClosePath()
		}
	}
	return &pat
}

func (s *Surface) SetFillColor(color string) {
	s.fill = color
}

func (s *Surface) SetStrokeColor(color string) {
	s.stroke = color
}

func (s *Surface) SetLineWidth(width float64) {
	s.lineWidth = width
}

func (s *Surface) SetFont(font charts.Font) {
	s.font = font
}

func (s *Surface) SetTextAlign(align charts.Align) {
	s.align = align
}

func (s *Surface) SetTextBaseline(base charts.Baseline) {
	s.baseline = base
}

func (s *Surface) FillText(str string, x, y float64) {
	txt := svg.NewText(str)
	txt.Pos = svg.NewPos(x, y)
	txt.Font = svg.NewFont(s.font.Size, s.font.Family...)
	txt.Font.Fill = s.fill
	txt.Anchor = getAnchor(s.align)
	txt.Baseline = getBaseline(s.baseline)
	s.list = append(s.list, txt.AsElement())
}

func getFill(color string) svg.Fill {
	f := svg.NewFill(color)
	f.Opacity = 1
	return f
}

func getAnchor(align charts.Align) string {
	switch align {
	case charts.AlignCenter:
		return "middle"
	case charts.AlignRight:
		return "end"
	default:
		return "start"
	}
}

func getBaseline(base charts.Baseline) string {
	switch base {
	case charts.BaselineTop:
		return "hanging"
	case charts.BaselineMiddle:
		return "middle"
	case charts.BaselineBottom:
		return "text-after-edge"
	default:
		return ""
	}
}

func getPosFromAngle(cx, cy, angle, radius float64) svg.Pos {
	return svg.NewPos(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
}
