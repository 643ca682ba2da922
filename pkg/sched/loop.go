// Package sched provides the cooperative event loop and frame scheduler
// that drive Weft components.
//
// The model is single-threaded: one Loop owns the microtask, macrotask,
// animation-frame and idle queues, and all framework callbacks run on the
// goroutine that pumps it. Loop is NOT safe for concurrent use; to hand work
// to the loop from another goroutine, synchronize externally.
package sched

// Loop owns the task queues of the hosting environment.
//
// Queue semantics mirror the usual event-loop ordering: microtasks drain
// completely between any two tasks, frame callbacks registered during a
// frame run on the next frame, and idle callbacks run at the end of a frame
// after frame callbacks and their microtasks.
type Loop struct {
	microtasks []func()
	tasks      []func()
	frames     []func()
	idles      []func()
	transition *ViewTransition
}

// NewLoop creates an empty loop.
func NewLoop() *Loop {
	return &Loop{}
}

// QueueMicrotask enqueues fn on the microtask queue.
func (l *Loop) QueueMicrotask(fn func()) {
	if fn == nil {
		return
	}
	l.microtasks = append(l.microtasks, fn)
}

// Post enqueues fn as a macrotask.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}
	l.tasks = append(l.tasks, fn)
}

// RequestFrame enqueues fn to run on the next animation frame.
func (l *Loop) RequestFrame(fn func()) {
	if fn == nil {
		return
	}
	l.frames = append(l.frames, fn)
}

// RequestIdle enqueues fn to run at the next idle point.
func (l *Loop) RequestIdle(fn func()) {
	if fn == nil {
		return
	}
	l.idles = append(l.idles, fn)
}

// DrainMicrotasks runs queued microtasks until the queue is empty,
// including microtasks queued while draining.
func (l *Loop) DrainMicrotasks() {
	for len(l.microtasks) > 0 {
		fn := l.microtasks[0]
		l.microtasks = l.microtasks[1:]
		fn()
	}
}

// RunTasks runs queued macrotasks until the queue is empty. Microtasks are
// drained after every task, matching event-loop turn boundaries.
func (l *Loop) RunTasks() {
	l.DrainMicrotasks()
	for len(l.tasks) > 0 {
		fn := l.tasks[0]
		l.tasks = l.tasks[1:]
		fn()
		l.DrainMicrotasks()
	}
}

// PumpFrame advances the loop by one animation frame: pending microtasks,
// then the frame callbacks registered before this frame, then idle
// callbacks, then queued macrotasks.
func (l *Loop) PumpFrame() {
	l.DrainMicrotasks()

	frames := l.frames
	l.frames = nil
	for _, fn := range frames {
		fn()
		l.DrainMicrotasks()
	}

	idles := l.idles
	l.idles = nil
	for _, fn := range idles {
		fn()
		l.DrainMicrotasks()
	}

	l.RunTasks()
}

// Idle returns true when every queue is empty and no transition is active.
func (l *Loop) Idle() bool {
	return len(l.microtasks) == 0 &&
		len(l.tasks) == 0 &&
		len(l.frames) == 0 &&
		len(l.idles) == 0 &&
		l.transition == nil
}

// BeginTransition starts a view transition on this loop. A pending flush in
// any Scheduler bound to the loop waits for the transition to finish before
// requesting its frame. Only one transition is active at a time; beginning a
// new one while another is active finishes the old one first.
func (l *Loop) BeginTransition() *ViewTransition {
	if l.transition != nil {
		l.transition.Finish()
	}
	t := &ViewTransition{loop: l}
	l.transition = t
	return t
}

// Transition returns the in-flight view transition, or nil.
func (l *Loop) Transition() *ViewTransition {
	return l.transition
}
