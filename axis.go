package charts

import (
	"math"
	"strconv"
)

const (
	valueOffset = 5.0
	labelOffset = 15.0
	tickOffset  = 5.0
	tickShift   = 3.0
)

type textStyle struct {
	Font
	Color    string
	Align    Align
	Baseline Baseline
}

func centered(font Font, color string) textStyle {
	return textStyle{
		Font:  font,
		Color: color,
		Align: AlignCenter,
	}
}

func drawText(s Surface, str string, x, y float64, style textStyle) {
	s.SetFillColor(style.Color)
	s.SetFont(style.Font)
	s.SetTextAlign(style.Align)
	s.SetTextBaseline(style.Baseline)
	s.FillText(str, x, y)
}

func drawTitle(s Surface, title string, x, y float64, fonts Fonts, theme Theme) {
	if title == "" {
		return
	}
	drawText(s, title, x, y, centered(fonts.font(fonts.Title), theme.Text))
}

// drawAxis draws the left and bottom sides of the drawing area as a single
// L shaped path.
func drawAxis(s Surface, lay Layout, color string) {
	s.BeginPath()
	s.MoveTo(lay.Left(), lay.Top())
	s.LineTo(lay.Left(), lay.Bottom())
	s.LineTo(lay.Right(), lay.Bottom())
	s.SetStrokeColor(color)
	s.SetLineWidth(1)
	s.Stroke()
}

func domainLine(s Surface, x1, y1, x2, y2 float64, color string) {
	s.BeginPath()
	s.MoveTo(x1, y1)
	s.LineTo(x2, y2)
	s.SetStrokeColor(color)
	s.SetLineWidth(1)
	s.Stroke()
}

// tickValue gives the label of the i-th horizontal grid line counted from
// the top of the drawing area.
func tickValue(max float64, count, i int) float64 {
	return math.Round(max - (max/float64(count))*float64(i))
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
