package errors

import (
	"errors"
	"strings"
	"testing"
)

type captureHandler struct {
	errs   []*WeftError
	panics []*PanicError
}

func (h *captureHandler) HandleError(err *WeftError)  { h.errs = append(h.errs, err) }
func (h *captureHandler) HandlePanic(err *PanicError) { h.panics = append(h.panics, err) }

func TestWeftErrorFormatting(t *testing.T) {
	err := &WeftError{
		Op:   "router.Setup",
		Kind: KindConfig,
		Err:  errors.New("bad event list"),
	}
	got := err.Error()
	if !strings.Contains(got, "router.Setup") || !strings.Contains(got, "config") {
		t.Errorf("Error() = %q, want op and kind present", got)
	}
}

func TestConfigErrorNamesRefAndTag(t *testing.T) {
	err := &ConfigError{Tag: "user-card", Ref: "avatar"}
	got := err.Error()
	if !strings.Contains(got, "user-card") || !strings.Contains(got, "avatar") {
		t.Errorf("Error() = %q, want tag and ref present", got)
	}
}

func TestReportUsesGlobalHandler(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	Report(&WeftError{Op: "test", Kind: KindDispatch, Err: errors.New("boom")})
	if len(h.errs) != 1 {
		t.Fatalf("reported errors = %d, want 1", len(h.errs))
	}
	if h.errs[0].Timestamp.IsZero() {
		t.Error("Report should stamp a zero timestamp")
	}
}

func TestRecoverReportsPanic(t *testing.T) {
	h := &captureHandler{}
	SetHandler(h)
	defer SetHandler(nil)

	func() {
		defer Recover("test.op")
		panic("kaboom")
	}()

	if len(h.panics) != 1 {
		t.Fatalf("reported panics = %d, want 1", len(h.panics))
	}
	if h.panics[0].Op != "test.op" {
		t.Errorf("Op = %q, want %q", h.panics[0].Op, "test.op")
	}
	if h.panics[0].Value != "kaboom" {
		t.Errorf("Value = %v, want kaboom", h.panics[0].Value)
	}
}

func TestSetHandlerNilRestoresDefault(t *testing.T) {
	SetHandler(&captureHandler{})
	SetHandler(nil)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Fatalf("DefaultHandler = %T, want *LogHandler", DefaultHandler)
	}
}

func TestKindStrings(t *testing.T) {
	cases := map[ErrorKind]string{
		KindUnknown:  "unknown",
		KindConfig:   "config",
		KindParsing:  "parsing",
		KindDispatch: "dispatch",
		KindPanic:    "panic",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}
