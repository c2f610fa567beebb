package charts

import (
	"time"

	"github.com/sirupsen/logrus"
)

const (
	KindBar  = "bar"
	KindPie  = "pie"
	KindLine = "line"
)

// Renderer draws charts on surfaces and drives their animations with its
// Clock. A render call made on a surface supersedes any animation still
// running on it: the frames of the older call are dropped.
//
// Without a Clock every chart is drawn once, fully, as if animation was
// disabled.
type Renderer struct {
	Clock   Clock
	Logger  logrus.FieldLogger
	OnFrame FrameHook
}

func NewRenderer(clock Clock) *Renderer {
	return &Renderer{
		Clock:  clock,
		Logger: logrus.StandardLogger(),
	}
}

// Active reports whether an animation is still running on the surface,
// started by this Renderer or by another one.
func (r *Renderer) Active(s Surface) bool {
	if missing(s) {
		return false
	}
	return registry.active(s)
}

func (r *Renderer) logger() logrus.FieldLogger {
	if r.Logger == nil {
		return logrus.StandardLogger()
	}
	return r.Logger
}

func (r *Renderer) reject(kind string, err error) error {
	r.logger().WithFields(logrus.Fields{
		"chart": kind,
	}).WithError(err).Warn("series rejected")
	return err
}

// run draws a chart through the shared animation driver. draw must repaint
// the whole chart, decoration included, at the given progress.
func (r *Renderer) run(s Surface, kind string, animate bool, duration time.Duration, draw func(float64)) {
	slot := registry.acquire(s)
	defer registry.release(s, slot)

	var (
		gen = registry.begin(slot)
		log = r.logger().WithFields(logrus.Fields{
			"chart":      kind,
			"generation": gen,
		})
	)
	paint := func(p float64) {
		draw(p)
		if r.OnFrame != nil {
			r.OnFrame(s, p)
		}
	}
	if !animate || r.Clock == nil {
		paint(1)
		registry.end(slot, gen)
		return
	}
	log.WithField("duration", duration).Debug("animation started")
	a := animation{
		clock:    r.Clock,
		start:    r.Clock.Now(),
		duration: duration,
		draw:     paint,
	}
	held := slot
	a.enter = func() bool {
		held = registry.acquire(s)
		ok := registry.alive(held, gen)
		if !ok {
			log.Debug("animation superseded")
		}
		return ok
	}
	a.leave = func() {
		registry.release(s, held)
	}
	a.done = func() {
		registry.end(held, gen)
		log.Debug("animation done")
	}
	a.step(a.start)
}
