package sched

import "sync"

// Task wraps a callback with a stable identity so repeated scheduling of
// the same unit of work collapses into one execution per flush.
type Task struct {
	run func()
}

// NewTask creates a schedulable task from fn.
func NewTask(fn func()) *Task {
	return &Task{run: fn}
}

// Run executes the task's callback.
func (t *Task) Run() {
	if t.run != nil {
		t.run()
	}
}

// Scheduler coalesces tasks into a single per-frame flush.
//
// Scheduling the same *Task twice before a flush executes it once.
// A flush waits for any in-flight view transition on the loop, then one
// animation frame; each task is then posted to the macrotask queue rather
// than run synchronously inside the frame callback.
type Scheduler struct {
	loop *Loop

	mu         sync.Mutex
	pending    []*Task
	pendingSet map[*Task]bool
	armed      bool
}

// NewScheduler creates a scheduler bound to the given loop.
func NewScheduler(loop *Loop) *Scheduler {
	return &Scheduler{
		loop:       loop,
		pendingSet: make(map[*Task]bool),
	}
}

// Schedule adds t to the pending set and arms a flush if none is pending.
func (s *Scheduler) Schedule(t *Task) {
	if t == nil {
		return
	}
	s.mu.Lock()
	if s.pendingSet[t] {
		s.mu.Unlock()
		return
	}
	s.pendingSet[t] = true
	s.pending = append(s.pending, t)
	arm := !s.armed
	s.armed = true
	s.mu.Unlock()

	if !arm {
		return
	}
	if tr := s.loop.Transition(); tr != nil {
		tr.OnFinished(func() {
			s.loop.RequestFrame(s.flush)
		})
	} else {
		s.loop.RequestFrame(s.flush)
	}
}

// Pending returns the number of tasks waiting for the next flush.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// flush posts every pending task to the macrotask queue in insertion order
// and clears the pending state. Tasks scheduled from within flushed tasks
// arm a fresh flush on a later frame.
func (s *Scheduler) flush() {
	s.mu.Lock()
	pending := s.pending
	s.pending = nil
	clear(s.pendingSet)
	s.armed = false
	s.mu.Unlock()

	for _, t := range pending {
		s.loop.Post(t.Run)
	}
}
