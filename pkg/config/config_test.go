package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-weft/weft/pkg/errors"
)

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
components:
  user-card:
    required_refs: [avatar, name]
router:
  extra_events: [paste, drop]
`))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	refs := cfg.Components["user-card"].RequiredRefs
	if len(refs) != 2 || refs[0] != "avatar" || refs[1] != "name" {
		t.Fatalf("RequiredRefs = %v", refs)
	}
	if len(cfg.Router.ExtraEvents) != 2 || cfg.Router.ExtraEvents[0] != "paste" {
		t.Fatalf("ExtraEvents = %v", cfg.Router.ExtraEvents)
	}
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("components: [not a map"))
	if err == nil {
		t.Fatal("want parse error")
	}
	werr, ok := err.(*errors.WeftError)
	if !ok {
		t.Fatalf("error type = %T, want *errors.WeftError", err)
	}
	if werr.Kind != errors.KindParsing {
		t.Fatalf("Kind = %v, want parsing", werr.Kind)
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if len(cfg.Components) != 0 || len(cfg.Router.ExtraEvents) != 0 {
		t.Fatalf("missing file should yield an empty config, got %+v", cfg)
	}
}

func TestLoadOptionalReadsFile(t *testing.T) {
	dir := t.TempDir()
	data := []byte("router:\n  extra_events: [paste]\n")
	if err := os.WriteFile(filepath.Join(dir, "weft.yaml"), data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if len(cfg.Router.ExtraEvents) != 1 || cfg.Router.ExtraEvents[0] != "paste" {
		t.Fatalf("ExtraEvents = %v", cfg.Router.ExtraEvents)
	}
}

func TestApplyAndLookup(t *testing.T) {
	t.Cleanup(func() { Apply(nil) })

	Apply(&Config{
		Components: map[string]ComponentConfig{
			"user-card": {RequiredRefs: []string{"avatar"}},
		},
		Router: RouterConfig{ExtraEvents: []string{"paste"}},
	})

	if got := RequiredRefs("user-card"); len(got) != 1 || got[0] != "avatar" {
		t.Fatalf("RequiredRefs = %v", got)
	}
	// Tags are matched case-insensitively, like the DOM treats tag names.
	if got := RequiredRefs("USER-CARD"); len(got) != 1 {
		t.Fatalf("RequiredRefs(upper) = %v", got)
	}
	if got := RequiredRefs("other-tag"); got != nil {
		t.Fatalf("RequiredRefs(other-tag) = %v, want nil", got)
	}
	if got := ExtraEvents(); len(got) != 1 || got[0] != "paste" {
		t.Fatalf("ExtraEvents = %v", got)
	}

	Apply(nil)
	if RequiredRefs("user-card") != nil || ExtraEvents() != nil {
		t.Fatal("Apply(nil) should reset to an empty config")
	}
}
