package charts

import (
	"sync"
	"time"
)

// Clock schedules the frames of an animation. Now must never decrease and
// RequestFrame runs its callback once, before the next frame is displayed,
// with the time of that frame.
type Clock interface {
	Now() time.Duration
	RequestFrame(func(time.Duration))
}

// FrameHook is called after each frame drawn on a surface.
type FrameHook func(Surface, float64)

func progressAt(elapsed, duration time.Duration) float64 {
	if duration <= 0 {
		return 1
	}
	p := float64(elapsed) / float64(duration)
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	return p
}

// sessions tracks the generation of the last render call made on each
// surface, whatever the Renderer making it. A frame belonging to an older
// generation is stale. Frames are drawn with the lock of their surface held,
// so a stale frame can not interleave with the frame of a newer call.
type sessions struct {
	mu    sync.Mutex
	gen   uint64
	slots map[Surface]*session
}

type session struct {
	mu   sync.Mutex
	gen  uint64
	live bool
	refs int
}

var registry sessions

// acquire locks the surface for drawing. It blocks while another frame is
// drawn on it.
func (s *sessions) acquire(surface Surface) *session {
	s.mu.Lock()
	if s.slots == nil {
		s.slots = make(map[Surface]*session)
	}
	x, ok := s.slots[surface]
	if !ok {
		x = new(session)
		s.slots[surface] = x
	}
	x.refs++
	s.mu.Unlock()

	x.mu.Lock()
	return x
}

func (s *sessions) release(surface Surface, x *session) {
	x.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	x.refs--
	if x.refs == 0 && !x.live {
		delete(s.slots, surface)
	}
}

func (s *sessions) begin(x *session) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	x.gen = s.gen
	x.live = true
	return x.gen
}

func (s *sessions) alive(x *session, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return x.gen == gen
}

func (s *sessions) end(x *session, gen uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if x.gen == gen {
		x.live = false
	}
}

func (s *sessions) active(surface Surface) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	x, ok := s.slots[surface]
	return ok && x.live
}

type animation struct {
	clock    Clock
	start    time.Duration
	duration time.Duration
	progress float64

	// enter locks the surface and reports whether the animation is still
	// the current one. leave is always called after enter.
	enter func() bool
	leave func()
	draw  func(float64)
	done  func()
}

func (a *animation) frame(now time.Duration) {
	alive := a.enter()
	defer a.leave()
	if !alive {
		return
	}
	a.step(now)
}

func (a *animation) step(now time.Duration) {
	p := progressAt(now-a.start, a.duration)
	if p < a.progress {
		p = a.progress
	}
	a.progress = p
	a.draw(p)
	if p < 1 {
		a.clock.RequestFrame(a.frame)
		return
	}
	a.done()
}
