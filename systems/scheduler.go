package systems

import (
	"math"
	"slices"
	"time"
)

// TaskID identifies a scheduled task. The zero value never refers to a task.
type TaskID uint64

type task struct {
	id         TaskID
	generation uint64
	due        uint64 // frame to fire on, timers only
	timer      func()
	frame      func(dt float64) bool
	cancelled  bool
	done       bool
}

// Scheduler runs delayed and per-frame work cooperatively from the game loop.
// Time is counted in frames so a delay always fires on the same frame for a
// given tick rate. Every task remembers the generation it was scheduled in;
// Reset bumps the generation and any task from an older one is dropped
// without running.
type Scheduler struct {
	tps        int
	frame      uint64
	generation uint64
	nextID     TaskID
	tasks      []*task
}

func NewScheduler(tps int) *Scheduler {
	if tps <= 0 {
		tps = 60
	}
	return &Scheduler{tps: tps}
}

// Frames converts a duration to a whole number of frames, at least one.
func (s *Scheduler) Frames(d time.Duration) uint64 {
	if d <= 0 {
		return 1
	}
	n := uint64(math.Round(d.Seconds() * float64(s.tps)))
	if n < 1 {
		n = 1
	}
	return n
}

// FrameSeconds is the length of one frame.
func (s *Scheduler) FrameSeconds() float64 {
	return 1 / float64(s.tps)
}

// After runs fn once, d from now.
func (s *Scheduler) After(d time.Duration, fn func()) TaskID {
	return s.add(&task{due: s.frame + s.Frames(d), timer: fn})
}

// EveryFrame runs fn on each following frame until it returns false or the
// task is cancelled.
func (s *Scheduler) EveryFrame(fn func(dt float64) bool) TaskID {
	return s.add(&task{frame: fn})
}

func (s *Scheduler) add(t *task) TaskID {
	s.nextID++
	t.id = s.nextID
	t.generation = s.generation
	s.tasks = append(s.tasks, t)
	return t.id
}

// Cancel stops a pending task. Unknown or finished ids are ignored.
func (s *Scheduler) Cancel(id TaskID) {
	if id == 0 {
		return
	}
	for _, t := range s.tasks {
		if t.id == id {
			t.cancelled = true
			return
		}
	}
}

// Active reports whether id is still waiting to run.
func (s *Scheduler) Active(id TaskID) bool {
	for _, t := range s.tasks {
		if t.id == id {
			return s.live(t)
		}
	}
	return false
}

// Reset cancels every task and starts a new generation.
func (s *Scheduler) Reset() {
	for _, t := range s.tasks {
		t.cancelled = true
	}
	s.tasks = s.tasks[:0]
	s.generation++
}

// Generation is the current round-generation token.
func (s *Scheduler) Generation() uint64 {
	return s.generation
}

// Frame is the number of frames advanced so far.
func (s *Scheduler) Frame() uint64 {
	return s.frame
}

// Pending counts tasks that have not run, finished or been cancelled.
func (s *Scheduler) Pending() int {
	n := 0
	for _, t := range s.tasks {
		if s.live(t) {
			n++
		}
	}
	return n
}

// Update advances one frame and runs whatever is due. Tasks scheduled while
// running are picked up on a later frame.
func (s *Scheduler) Update() {
	s.frame++
	dt := s.FrameSeconds()

	due := slices.Clone(s.tasks)
	for _, t := range due {
		if !s.live(t) {
			continue
		}
		switch {
		case t.timer != nil:
			if s.frame >= t.due {
				t.done = true
				t.timer()
			}
		case t.frame != nil:
			if !t.frame(dt) {
				t.done = true
			}
		}
	}

	kept := make([]*task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if s.live(t) {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
}

func (s *Scheduler) live(t *task) bool {
	return !t.cancelled && !t.done && t.generation == s.generation
}
