package charts

import (
	"math"
)

type Point struct {
	X float64
	Y float64
}

func getPosFromAngle(cx, cy, angle, radius float64) Point {
	return Point{
		X: cx + radius*math.Cos(angle),
		Y: cy + radius*math.Sin(angle),
	}
}

func fillRect(s Surface, x, y, w, h float64, color string) {
	s.BeginPath()
	s.MoveTo(x, y)
	s.LineTo(x+w, y)
	s.LineTo(x+w, y+h)
	s.LineTo(x, y+h)
	s.ClosePath()
	s.SetFillColor(color)
	s.Fill()
}

func fillCircle(s Surface, x, y, radius float64, color string) {
	s.BeginPath()
	s.Arc(x, y, radius, 0, fullcircle)
	s.SetFillColor(color)
	s.Fill()
}

// fillWedge fills the circular sector between start and end.
func fillWedge(s Surface, cx, cy, radius, start, end float64, color string) {
	s.BeginPath()
	s.MoveTo(cx, cy)
	s.Arc(cx, cy, radius, start, end)
	s.ClosePath()
	s.SetFillColor(color)
	s.Fill()
}
