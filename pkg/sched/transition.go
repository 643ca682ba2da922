package sched

// ViewTransition is the completion signal of an animated DOM swap. The
// framework never drives the animation itself; it only needs to know when
// the swap has finished so deferred work does not interrupt it.
type ViewTransition struct {
	loop     *Loop
	finished bool
	done     []func()
}

// Finish marks the transition complete and runs completion callbacks in
// registration order. Finish is idempotent.
func (t *ViewTransition) Finish() {
	if t.finished {
		return
	}
	t.finished = true
	if t.loop != nil && t.loop.transition == t {
		t.loop.transition = nil
	}
	done := t.done
	t.done = nil
	for _, fn := range done {
		fn()
	}
}

// Finished reports whether the transition has completed.
func (t *ViewTransition) Finished() bool {
	return t.finished
}

// OnFinished registers fn to run when the transition completes. If the
// transition has already finished, fn runs immediately.
func (t *ViewTransition) OnFinished(fn func()) {
	if fn == nil {
		return
	}
	if t.finished {
		fn()
		return
	}
	t.done = append(t.done, fn)
}
