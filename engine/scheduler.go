package engine

import (
	"container/heap"
	"log/slog"
	"time"

	"github.com/kako-jun/yatagarrage/core"
	"github.com/kako-jun/yatagarrage/parameter"
)

// Callback receives the time the firing was scheduled for
type Callback func(at time.Duration)

// forever marks a timer with no repeat limit
const forever = -1

type timer struct {
	id       core.TimerID
	owner    core.Owner
	at       time.Duration
	seq      uint64
	interval time.Duration
	// remaining re-arms left, forever for loops
	remaining int
	fn        Callback
	index     int
}

type timerQueue []*timer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].at != q[j].at {
		return q[i].at < q[j].at
	}
	return q[i].seq < q[j].seq
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*timer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}

// Scheduler is the simulation clock and its queue of deferred callbacks
// Due callbacks fire in (time, registration) order; a repeating timer keeps
// its registration rank across firings
type Scheduler struct {
	now    time.Duration
	queue  timerQueue
	timers map[core.TimerID]*timer
	owners map[core.Owner]struct{}

	nextID    core.TimerID
	nextOwner core.Owner
	seq       uint64

	// stale counts firings skipped by a liveness check
	stale uint64

	logger *slog.Logger
}

// NewScheduler creates a scheduler at time zero
func NewScheduler() *Scheduler {
	return &Scheduler{
		timers: make(map[core.TimerID]*timer),
		owners: make(map[core.Owner]struct{}),
	}
}

// SetLogger routes stale-firing diagnostics to l; nil silences them
func (s *Scheduler) SetLogger(l *slog.Logger) { s.logger = l }

// Now returns simulated time
func (s *Scheduler) Now() time.Duration { return s.now }

// Pending returns the number of live timers
func (s *Scheduler) Pending() int { return len(s.timers) }

// Stale returns how many firings were discarded for a retired owner
func (s *Scheduler) Stale() uint64 { return s.stale }

// NewOwner issues a fresh liveness token; tokens are never reused
func (s *Scheduler) NewOwner() core.Owner {
	s.nextOwner++
	s.owners[s.nextOwner] = struct{}{}
	return s.nextOwner
}

// Alive reports whether the owner has not been retired
func (s *Scheduler) Alive(o core.Owner) bool {
	if o == core.NoOwner {
		return true
	}
	_, ok := s.owners[o]
	return ok
}

// Retire kills the owner and cancels every timer it holds
// Returns the number of timers cancelled
func (s *Scheduler) Retire(o core.Owner) int {
	if o == core.NoOwner {
		return 0
	}
	delete(s.owners, o)

	n := 0
	for id, t := range s.timers {
		if t.owner == o {
			s.remove(id, t)
			n++
		}
	}
	return n
}

// After schedules fn once after delay
func (s *Scheduler) After(o core.Owner, delay time.Duration, fn Callback) core.TimerID {
	return s.schedule(o, delay, 0, 0, fn)
}

// Repeat schedules fn at delay, 2·delay, … for repeat+1 firings in total
func (s *Scheduler) Repeat(o core.Owner, delay time.Duration, repeat int, fn Callback) core.TimerID {
	if repeat < 0 {
		repeat = 0
	}
	return s.schedule(o, delay, delay, repeat, fn)
}

// Loop schedules fn every interval until cancelled
func (s *Scheduler) Loop(o core.Owner, interval time.Duration, fn Callback) core.TimerID {
	return s.schedule(o, interval, interval, forever, fn)
}

func (s *Scheduler) schedule(o core.Owner, delay, interval time.Duration, remaining int, fn Callback) core.TimerID {
	if fn == nil || !s.Alive(o) {
		return 0
	}
	if delay < 0 {
		delay = 0
	}
	if remaining != 0 {
		if interval < parameter.MinTimerInterval {
			interval = parameter.MinTimerInterval
		}
		if delay < parameter.MinTimerInterval {
			delay = parameter.MinTimerInterval
		}
	}

	s.nextID++
	s.seq++
	t := &timer{
		id:        s.nextID,
		owner:     o,
		at:        s.now + delay,
		seq:       s.seq,
		interval:  interval,
		remaining: remaining,
		fn:        fn,
	}
	s.timers[t.id] = t
	heap.Push(&s.queue, t)
	return t.id
}

// Cancel removes a timer, false if it already fired out or was cancelled
func (s *Scheduler) Cancel(id core.TimerID) bool {
	t, ok := s.timers[id]
	if !ok {
		return false
	}
	s.remove(id, t)
	return true
}

// Active reports whether the timer will fire again
func (s *Scheduler) Active(id core.TimerID) bool {
	_, ok := s.timers[id]
	return ok
}

func (s *Scheduler) remove(id core.TimerID, t *timer) {
	delete(s.timers, id)
	if t.index >= 0 {
		heap.Remove(&s.queue, t.index)
	}
}

// Advance moves the clock forward by dt and fires every due callback
// A repeating timer that falls behind catches up within one call
// Returns the number of callbacks run
func (s *Scheduler) Advance(dt time.Duration) int {
	if dt < 0 {
		dt = 0
	}
	target := s.now + dt
	fired := 0

	for len(s.queue) > 0 && s.queue[0].at <= target {
		t := heap.Pop(&s.queue).(*timer)
		at := t.at
		s.now = at

		if !s.Alive(t.owner) {
			delete(s.timers, t.id)
			s.stale++
			if s.logger != nil {
				s.logger.Debug("stale timer skipped", "timer", t.id, "owner", t.owner, "at", at)
			}
			continue
		}

		// Re-arm before running so fn may cancel its own timer
		if t.remaining != 0 {
			if t.remaining > 0 {
				t.remaining--
			}
			t.at += t.interval
			heap.Push(&s.queue, t)
		} else {
			delete(s.timers, t.id)
		}

		t.fn(at)
		fired++
	}

	s.now = target
	return fired
}

// Reset cancels everything and rewinds the clock
// Outstanding owners are retired; token numbering continues
func (s *Scheduler) Reset() {
	for _, t := range s.queue {
		t.index = -1
	}
	s.queue = s.queue[:0]
	clear(s.timers)
	clear(s.owners)
	s.now = 0
}
