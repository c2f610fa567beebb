package record

import (
	"math"
	"testing"

	"github.com/midbel/dashcharts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathPersistsUntilBeginPath(t *testing.T) {
	s := New(100, 100)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(10, 0)
	s.SetFillColor("red")
	s.Fill()
	s.SetStrokeColor("blue")
	s.Stroke()

	shapes := s.Shapes()
	require.Len(t, shapes, 2)
	assert.Equal(t, shapes[0].Points, shapes[1].Points)
	assert.Equal(t, "red", shapes[0].Color)
	assert.Equal(t, "blue", shapes[1].Color)

	s.BeginPath()
	s.MoveTo(5, 5)
	s.Fill()
	assert.Len(t, s.Shapes()[2].Points, 1)
}

func TestArcPoints(t *testing.T) {
	s := New(100, 100)
	s.BeginPath()
	s.MoveTo(50, 50)
	s.Arc(50, 50, 10, 0, math.Pi/2)
	s.ClosePath()
	s.Fill()

	h := s.Filled()[0]
	assert.True(t, h.Closed)
	require.Len(t, h.Arcs, 1)
	assert.Equal(t, math.Pi/2, h.Arcs[0].Span())
	require.Len(t, h.Points, 3)
	assert.Equal(t, charts.Point{X: 60, Y: 50}, h.Points[1])
	assert.InDelta(t, 50, h.Points[2].X, 1e-9)
	assert.InDelta(t, 60, h.Points[2].Y, 1e-9)
}

func TestFrames(t *testing.T) {
	s := New(100, 100)
	s.ClearRect(0, 0, 100, 100)
	s.FillText("a", 1, 2)
	s.ClearRect(10, 10, 5, 5)
	assert.Len(t, s.Texts(), 1)
	assert.Equal(t, 1, s.Frames())

	s.ClearRect(0, 0, 100, 100)
	assert.Empty(t, s.Texts())
	assert.Equal(t, 2, s.Frames())
	assert.Equal(t, 3, s.Count("clearRect"))

	s.Reset()
	assert.Empty(t, s.Ops())
	assert.Equal(t, 0, s.Frames())
}

func TestText(t *testing.T) {
	s := New(100, 100)
	s.SetFillColor("#333")
	s.SetFont(charts.Font{Size: 12, Family: []string{"Roboto"}})
	s.SetTextAlign(charts.AlignRight)
	s.SetTextBaseline(charts.BaselineMiddle)
	s.FillText("hello", 10, 20)

	txt := s.Texts()[0]
	assert.Equal(t, "hello", txt.Str)
	assert.Equal(t, "#333", txt.Color)
	assert.Equal(t, float64(12), txt.Font.Size)
	assert.Equal(t, charts.AlignRight, txt.Align)
	assert.Equal(t, charts.BaselineMiddle, txt.Baseline)

	ops := s.Ops()
	assert.Equal(t, "right", ops[2].Text)
	assert.Equal(t, "middle", ops[3].Text)
}
