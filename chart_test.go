package charts

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedSize struct {
	Surface
	w, h float64
}

func (f *fixedSize) Size() (float64, float64) {
	return f.w, f.h
}

func TestLayout(t *testing.T) {
	lay := NewLayout(800, 600, 40)
	assert.Equal(t, float64(720), lay.DrawingWidth())
	assert.Equal(t, float64(520), lay.DrawingHeight())
	assert.Equal(t, float64(40), lay.Left())
	assert.Equal(t, float64(760), lay.Right())
	assert.Equal(t, float64(40), lay.Top())
	assert.Equal(t, float64(560), lay.Bottom())
	assert.Equal(t, float64(400), lay.CenterX())
	assert.Equal(t, float64(300), lay.CenterY())
}

func TestBarGeometry(t *testing.T) {
	var (
		ser  = NewSeries([]string{"A", "B", "C"}, []float64{10, 20, 5})
		opts = BarOptions{}.withDefaults(&fixedSize{w: 800, h: 600})
		c    = newBarChart(ser, opts)
	)
	require.Equal(t, float64(40), c.lay.Left())
	assert.Equal(t, float64(230), c.barWidth())

	height := c.lay.DrawingHeight()
	for i, want := range []float64{0.5 * height, height, 0.25 * height} {
		x, y, w, h := c.bar(i, 1)
		assert.Equal(t, want, h)
		assert.Equal(t, c.lay.Bottom()-want, y)
		assert.Equal(t, 40+float64(i)*240, x)
		assert.Equal(t, float64(230), w)
	}
	_, _, _, h := c.bar(1, 0.5)
	assert.Equal(t, height/2, h)
}

func TestBarZeroHeight(t *testing.T) {
	var (
		ser  = NewSeries([]string{"A", "B", "C"}, []float64{0, 3, 0})
		opts = BarOptions{}.withDefaults(&fixedSize{w: 500, h: 400})
		c    = newBarChart(ser, opts)
	)
	for i, v := range ser.Values {
		_, _, _, h := c.bar(i, 1)
		assert.Equal(t, v == 0, h == 0)
	}

	zeros := newBarChart(NewSeries([]string{"A"}, []float64{0}), opts)
	_, _, _, h := zeros.bar(0, 1)
	assert.Equal(t, float64(0), h)
}

func TestBarNarrow(t *testing.T) {
	var (
		values = make([]float64, 200)
		labels = make([]string, 200)
		opts   = BarOptions{}.withDefaults(&fixedSize{w: 300, h: 200})
		c      = newBarChart(NewSeries(labels, values), opts)
	)
	assert.Equal(t, float64(0), c.barWidth())
}

func TestPieWedges(t *testing.T) {
	var (
		ser  = NewSeries([]string{"a", "b", "c"}, []float64{25, 25, 50})
		opts = PieOptions{}.withDefaults(&fixedSize{w: 800, h: 600})
		c    = newPieChart(ser, opts)
	)
	list := c.wedges(1)
	require.Len(t, list, 3)
	assert.Equal(t, -math.Pi/2, list[0].Start)
	assert.Equal(t, []float64{math.Pi / 2, math.Pi / 2, math.Pi}, []float64{
		list[0].Span(), list[1].Span(), list[2].Span(),
	})
	for i := 1; i < len(list); i++ {
		assert.Equal(t, list[i-1].End, list[i].Start)
	}
}

func TestPieSpansSum(t *testing.T) {
	series := [][]float64{
		{1},
		{1, 1, 1},
		{0.1, 0.2, 0.3, 0.4},
		{3, 7, 11, 13, 17, 19, 23},
		{1e-3, 1e6, 42, 0},
	}
	opts := PieOptions{}.withDefaults(&fixedSize{w: 400, h: 400})
	for _, values := range series {
		c := newPieChart(NewSeries(make([]string, len(values)), values), opts)
		var sum float64
		for _, w := range c.wedges(1) {
			sum += w.Span()
		}
		assert.InDelta(t, 2*math.Pi, sum, 1e-9, "%v", values)
		last := c.wedges(1)[len(values)-1]
		assert.InDelta(t, topAngle+2*math.Pi, last.End, 1e-9)
	}
}

func TestPieEmpty(t *testing.T) {
	opts := PieOptions{}.withDefaults(&fixedSize{w: 400, h: 400})
	c := newPieChart(NewSeries([]string{"a", "b"}, []float64{0, 0}), opts)
	assert.Empty(t, c.wedges(1))
	c = newPieChart(Series{}, opts)
	assert.Empty(t, c.wedges(1))
}

func TestPieLabels(t *testing.T) {
	var (
		ser  = NewSeries([]string{"small", "large"}, []float64{5, 95})
		opts = DefaultPieOptions().withDefaults(&fixedSize{w: 800, h: 600})
		c    = newPieChart(ser, opts)
	)
	assert.False(t, c.withLabel(0, 1))
	assert.True(t, c.withLabel(1, 1))
	assert.False(t, c.withLabel(1, 0.2))
	assert.True(t, c.withLabel(1, 0.21))
	assert.Equal(t, "large (95%)", c.labelText(1))

	c.LabelThreshold = -1
	c.LabelProgress = -1
	assert.True(t, c.withLabel(0, 0))
}

func TestPieRadius(t *testing.T) {
	opts := DefaultPieOptions().withDefaults(&fixedSize{w: 800, h: 600})
	c := newPieChart(Series{}, opts)
	assert.Equal(t, float64(260), c.radius())
	assert.Equal(t, float64(210), c.innerRadius())
}

func TestLineVisibility(t *testing.T) {
	var (
		n    = 5
		ser  = NewSeries(make([]string, n), []float64{1, 2, 3, 4, 5})
		opts = LineOptions{}.withDefaults(&fixedSize{w: 800, h: 600})
		c    = newLineChart(ser, opts)
	)
	for k := 0; k < n; k++ {
		p := float64(k) / float64(n-1)
		for i := 0; i < n; i++ {
			assert.Equal(t, i <= k, c.visible(i, p), "point %d at %g", i, p)
		}
		if k > 0 {
			assert.False(t, c.visible(k, math.Nextafter(p, 0)))
		}
	}
}

func TestLinePoints(t *testing.T) {
	var (
		ser  = NewSeries([]string{"a", "b", "c"}, []float64{0, 5, 10})
		opts = LineOptions{}.withDefaults(&fixedSize{w: 800, h: 600})
		c    = newLineChart(ser, opts)
	)
	assert.Equal(t, float64(360), c.spacing())
	assert.Equal(t, Point{X: 40, Y: 560}, c.point(0))
	assert.Equal(t, Point{X: 400, Y: 300}, c.point(1))
	assert.Equal(t, Point{X: 760, Y: 40}, c.point(2))
}

func TestProgressAt(t *testing.T) {
	d := time.Second
	assert.Equal(t, float64(0), progressAt(0, d))
	assert.Equal(t, float64(0), progressAt(-time.Millisecond, d))
	assert.Equal(t, 0.25, progressAt(250*time.Millisecond, d))
	assert.Equal(t, float64(1), progressAt(d, d))
	assert.Equal(t, float64(1), progressAt(2*d, d))
	assert.Equal(t, float64(1), progressAt(0, 0))
}

type steppedClock struct {
	times []time.Duration
	queue []func(time.Duration)
}

func (c *steppedClock) Now() time.Duration {
	return 0
}

func (c *steppedClock) RequestFrame(fn func(time.Duration)) {
	c.queue = append(c.queue, fn)
}

func (c *steppedClock) run() {
	for len(c.queue) > 0 && len(c.times) > 0 {
		fn := c.queue[0]
		c.queue = c.queue[1:]
		now := c.times[0]
		c.times = c.times[1:]
		fn(now)
	}
}

func TestAnimationMonotonic(t *testing.T) {
	var (
		clock = steppedClock{
			times: []time.Duration{
				300 * time.Millisecond,
				100 * time.Millisecond,
				600 * time.Millisecond,
				2 * time.Second,
				3 * time.Second,
			},
		}
		seen []float64
		done int
	)
	a := animation{
		clock:    &clock,
		duration: time.Second,
		enter:    func() bool { return true },
		leave:    func() {},
		draw:     func(p float64) { seen = append(seen, p) },
		done:     func() { done++ },
	}
	a.frame(0)
	clock.run()

	assert.Equal(t, []float64{0, 0.3, 0.3, 0.6, 1}, seen)
	assert.Equal(t, 1, done)
	assert.Len(t, clock.times, 1)
}

func TestSessions(t *testing.T) {
	var (
		reg sessions
		a   = &fixedSize{w: 1, h: 1}
		b   = &fixedSize{w: 1, h: 1}
	)
	x := reg.acquire(a)
	g1 := reg.begin(x)
	reg.release(a, x)
	assert.True(t, reg.alive(x, g1))
	assert.True(t, reg.active(a))
	assert.False(t, reg.active(b))

	y := reg.acquire(a)
	require.Same(t, x, y)
	g2 := reg.begin(y)
	reg.release(a, y)
	assert.False(t, reg.alive(x, g1))
	assert.True(t, reg.alive(x, g2))

	reg.end(x, g1)
	assert.True(t, reg.active(a))
	reg.end(x, g2)
	assert.False(t, reg.active(a))

	x = reg.acquire(a)
	reg.release(a, x)
	assert.Empty(t, reg.slots)
}

func TestSessionsLock(t *testing.T) {
	var (
		reg  sessions
		surf = &fixedSize{w: 1, h: 1}
		x    = reg.acquire(surf)
		got  = make(chan struct{})
	)
	go func() {
		y := reg.acquire(surf)
		reg.release(surf, y)
		close(got)
	}()
	select {
	case <-got:
		t.Fatal("surface acquired twice")
	case <-time.After(20 * time.Millisecond):
	}
	reg.release(surf, x)
	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("surface not released")
	}
}

func TestMissingSurface(t *testing.T) {
	var typed *fixedSize
	assert.True(t, missing(nil))
	assert.True(t, missing(typed))
	assert.False(t, missing(&fixedSize{}))
}
