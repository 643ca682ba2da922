package testing

import (
	"sync"

	"github.com/go-weft/weft/pkg/errors"
)

// ErrorRecorder is an errors.ErrorHandler that captures reports for
// assertions instead of logging them.
type ErrorRecorder struct {
	mu     sync.Mutex
	errs   []*errors.WeftError
	panics []*errors.PanicError
}

// HandleError records a reported error.
func (r *ErrorRecorder) HandleError(err *errors.WeftError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

// HandlePanic records a recovered panic.
func (r *ErrorRecorder) HandlePanic(err *errors.PanicError) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.panics = append(r.panics, err)
}

// Errors returns recorded errors in report order.
func (r *ErrorRecorder) Errors() []*errors.WeftError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.WeftError(nil), r.errs...)
}

// Panics returns recorded panics in report order.
func (r *ErrorRecorder) Panics() []*errors.PanicError {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*errors.PanicError(nil), r.panics...)
}

// Reset clears all recorded reports.
func (r *ErrorRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = nil
	r.panics = nil
}
