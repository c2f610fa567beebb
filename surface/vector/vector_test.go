package vector

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/midbel/dashcharts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderChart(t *testing.T) {
	var (
		s    = New(400, 300)
		r    = charts.NewRenderer(nil)
		ser  = charts.NewSeries([]string{"A", "B"}, []float64{1, 3})
		opts = charts.DefaultBarOptions()
	)
	opts.Title = "Bars"
	require.NoError(t, r.RenderBar(s, ser, opts))

	var buf bytes.Buffer
	require.NoError(t, s.Render(&buf))
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg"), out)
	assert.Contains(t, out, "Bars")
	assert.Contains(t, out, charts.BarColors.At(0))
	assert.Contains(t, out, charts.BarColors.At(1))
	assert.Contains(t, out, "text-anchor")
}

func TestClearStartsNewFrame(t *testing.T) {
	s := New(100, 100)
	s.FillText("a", 0, 0)
	s.FillText("b", 0, 0)
	assert.Equal(t, 2, s.Len())

	s.ClearRect(0, 0, 100, 100)
	assert.Equal(t, 0, s.Len())

	s.ClearRect(10, 10, 20, 20)
	assert.Equal(t, 1, s.Len())
}

func TestPathSegments(t *testing.T) {
	s := New(100, 100)
	s.BeginPath()
	s.MoveTo(50, 50)
	s.Arc(50, 50, 10, -math.Pi/2, math.Pi)
	s.ClosePath()
	require.Len(t, s.path, 4)
	assert.Equal(t, segLine, s.path[1].kind)
	assert.True(t, s.path[2].large)
	assert.True(t, s.path[2].sweep)

	s.BeginPath()
	s.Arc(50, 50, 10, 0, 2*math.Pi)
	require.Len(t, s.path, 3)
	assert.Equal(t, segMove, s.path[0].kind)
	assert.Equal(t, segArc, s.path[1].kind)
	assert.Equal(t, segArc, s.path[2].kind)
	assert.False(t, s.path[1].large)

	s.BeginPath()
	s.Arc(50, 50, 10, 1, 1)
	assert.Len(t, s.path, 1)
}

func TestFillKeepsPath(t *testing.T) {
	s := New(100, 100)
	s.BeginPath()
	s.MoveTo(0, 0)
	s.LineTo(10, 10)
	s.Fill()
	s.Stroke()
	assert.Equal(t, 2, s.Len())
	assert.Len(t, s.path, 2)
}

func TestTextAttributes(t *testing.T) {
	assert.Equal(t, "start", getAnchor(charts.AlignLeft))
	assert.Equal(t, "middle", getAnchor(charts.AlignCenter))
	assert.Equal(t, "end", getAnchor(charts.AlignRight))
	assert.Equal(t, "", getBaseline(charts.BaselineAlphabetic))
	assert.Equal(t, "hanging", getBaseline(charts.BaselineTop))
}
