package sched

import "testing"

func TestMicrotasksDrainBetweenTasks(t *testing.T) {
	loop := NewLoop()
	var order []string

	loop.Post(func() {
		order = append(order, "task1")
		loop.QueueMicrotask(func() { order = append(order, "micro1") })
	})
	loop.Post(func() { order = append(order, "task2") })
	loop.RunTasks()

	want := []string{"task1", "micro1", "task2"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestFrameCallbackRegisteredDuringFrameDefers(t *testing.T) {
	loop := NewLoop()
	runs := 0
	loop.RequestFrame(func() {
		runs++
		loop.RequestFrame(func() { runs++ })
	})

	loop.PumpFrame()
	if runs != 1 {
		t.Fatalf("runs after first frame = %d, want 1", runs)
	}
	loop.PumpFrame()
	if runs != 2 {
		t.Fatalf("runs after second frame = %d, want 2", runs)
	}
}

func TestIdleCallbacksRunAfterFrameCallbacks(t *testing.T) {
	loop := NewLoop()
	var order []string
	loop.RequestIdle(func() { order = append(order, "idle") })
	loop.RequestFrame(func() { order = append(order, "frame") })

	loop.PumpFrame()
	if len(order) != 2 || order[0] != "frame" || order[1] != "idle" {
		t.Fatalf("order = %v, want [frame idle]", order)
	}
}

func TestIdleReportsQueuesAndTransition(t *testing.T) {
	loop := NewLoop()
	if !loop.Idle() {
		t.Fatal("fresh loop should be idle")
	}
	tr := loop.BeginTransition()
	if loop.Idle() {
		t.Fatal("loop with active transition should not be idle")
	}
	tr.Finish()
	if !loop.Idle() {
		t.Fatal("loop should be idle after transition finishes")
	}
}

func TestBeginTransitionFinishesPrevious(t *testing.T) {
	loop := NewLoop()
	first := loop.BeginTransition()
	second := loop.BeginTransition()
	if !first.Finished() {
		t.Fatal("beginning a new transition should finish the previous one")
	}
	if second.Finished() {
		t.Fatal("new transition should still be active")
	}
	if loop.Transition() != second {
		t.Fatal("loop should track the new transition")
	}
}

func TestTransitionOnFinishedAfterCompletion(t *testing.T) {
	loop := NewLoop()
	tr := loop.BeginTransition()
	tr.Finish()
	ran := false
	tr.OnFinished(func() { ran = true })
	if !ran {
		t.Fatal("OnFinished after completion should run immediately")
	}
}
