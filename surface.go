package charts

import (
	"reflect"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

type Baseline int

const (
	BaselineAlphabetic Baseline = iota
	BaselineTop
	BaselineMiddle
	BaselineBottom
)

func (b Baseline) String() string {
	switch b {
	case BaselineTop:
		return "top"
	case BaselineMiddle:
		return "middle"
	case BaselineBottom:
		return "bottom"
	default:
		return "alphabetic"
	}
}

type Font struct {
	Size   float64
	Family []string
}

// Surface is the immediate mode drawing target charts are painted on.
//
// A path started with BeginPath stays current until the next BeginPath: Fill
// and Stroke paint it without consuming it. Arc connects the current point to
// the start of the arc with a straight segment. Angles are in radians and
// increase clockwise since the y axis points down.
//
// Implementations are used as map keys and must be comparable.
type Surface interface {
	Size() (float64, float64)
	ClearRect(x, y, w, h float64)

	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Arc(x, y, radius, start, end float64)
	ClosePath()
	Fill()
	Stroke()

	SetFillColor(string)
	SetStrokeColor(string)
	SetLineWidth(float64)

	SetFont(Font)
	SetTextAlign(Align)
	SetTextBaseline(Baseline)
	FillText(str string, x, y float64)
}

func missing(s Surface) bool {
	if s == nil {
		return true
	}
	v := reflect.ValueOf(s)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
