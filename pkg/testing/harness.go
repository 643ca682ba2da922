package testing

import (
	"testing"

	"github.com/go-weft/weft/pkg/config"
	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/sched"
)

// Harness bundles a loop, a document and a recording error handler for a
// single test. Create one per test with NewHarness.
type Harness struct {
	T      *testing.T
	Loop   *sched.Loop
	Doc    *dom.Document
	Errors *ErrorRecorder
}

// NewHarness creates a fresh harness. The global error handler is swapped
// for the harness recorder and restored on cleanup, along with any applied
// process-wide configuration.
func NewHarness(t *testing.T) *Harness {
	t.Helper()
	loop := sched.NewLoop()
	rec := &ErrorRecorder{}
	prev := errors.DefaultHandler
	errors.SetHandler(rec)
	t.Cleanup(func() {
		errors.SetHandler(prev)
		config.Apply(nil)
	})
	return &Harness{
		T:      t,
		Loop:   loop,
		Doc:    dom.NewDocument(loop),
		Errors: rec,
	}
}

// Mount parses an HTML fragment, appends its top-level elements to the
// document body and returns the first one. Parse failures and empty
// fragments fail the test.
func (h *Harness) Mount(src string) *dom.Element {
	h.T.Helper()
	els, err := h.Doc.ParseFragment(src)
	if err != nil {
		h.T.Fatalf("Mount: parse failed: %v", err)
	}
	if len(els) == 0 {
		h.T.Fatalf("Mount: fragment %q contains no elements", src)
	}
	for _, el := range els {
		h.Doc.Body().AppendChild(el)
	}
	return els[0]
}

// PumpFrame advances the loop by exactly one frame.
func (h *Harness) PumpFrame() {
	h.Loop.PumpFrame()
}

// Flush drains microtasks and macrotasks without advancing a frame.
func (h *Harness) Flush() {
	h.Loop.RunTasks()
}

// Settle pumps frames until the loop is idle. An active view transition
// never settles on its own; finish it first.
func (h *Harness) Settle() {
	h.T.Helper()
	for i := 0; i < 100; i++ {
		if h.Loop.Idle() {
			return
		}
		h.Loop.PumpFrame()
	}
	h.T.Fatalf("Settle: loop did not go idle after 100 frames")
}
