package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-weft/weft/pkg/config"
)

func writeHTML(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func lint(t *testing.T, content string) []Finding {
	t.Helper()
	findings, err := lintFile(writeHTML(t, "page.html", content))
	if err != nil {
		t.Fatalf("lintFile: %v", err)
	}
	return findings
}

func TestCleanMarkupHasNoFindings(t *testing.T) {
	findings := lint(t, `<user-card>
		<span ref="name"></span>
		<li ref="item[]"></li>
		<li ref="item[]"></li>
		<button on:click="/submit?id=1"></button>
	</user-card>`)
	if len(findings) != 0 {
		t.Fatalf("findings = %v, want none", findings)
	}
}

func TestEmptySlotNames(t *testing.T) {
	findings := lint(t, `<div ref=""></div><div ref="[]"></div>`)
	if len(findings) != 2 {
		t.Fatalf("findings = %v, want both empty slot names flagged", findings)
	}
}

func TestDuplicateSingleSlotWithinScope(t *testing.T) {
	findings := lint(t, `<user-card>
		<span ref="name"></span>
		<b ref="name"></b>
	</user-card>`)
	if len(findings) != 1 || !strings.Contains(findings[0].Message, `"name"`) {
		t.Fatalf("findings = %v, want one duplicate report", findings)
	}
}

func TestDuplicateAcrossScopesIsFine(t *testing.T) {
	findings := lint(t, `<user-card><span ref="name"></span></user-card>
		<user-card><span ref="name"></span></user-card>`)
	if len(findings) != 0 {
		t.Fatalf("findings = %v, want separate component scopes", findings)
	}
}

func TestDuplicateInDocumentScope(t *testing.T) {
	findings := lint(t, `<span ref="top"></span><b ref="top"></b>`)
	if len(findings) != 1 || !strings.Contains(findings[0].Message, "(document)") {
		t.Fatalf("findings = %v, want a document-scope duplicate", findings)
	}
}

func TestUnknownEventType(t *testing.T) {
	findings := lint(t, `<button on:hover="/show"></button>`)
	if len(findings) != 1 || !strings.Contains(findings[0].Message, "on:hover") {
		t.Fatalf("findings = %v, want the unknown event flagged", findings)
	}
}

func TestExtraEventsFromConfigAreKnown(t *testing.T) {
	t.Cleanup(func() { config.Apply(nil) })
	config.Apply(&config.Config{Router: config.RouterConfig{ExtraEvents: []string{"hover"}}})

	findings := lint(t, `<button on:hover="/show"></button>`)
	if len(findings) != 0 {
		t.Fatalf("findings = %v, want configured extra event accepted", findings)
	}
}

func TestInertBinding(t *testing.T) {
	findings := lint(t, `<button on:click=".card"></button>`)
	if len(findings) != 1 || !strings.Contains(findings[0].Message, "never fire") {
		t.Fatalf("findings = %v, want the method-less binding flagged", findings)
	}
}

func TestCollectHTMLFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a.html", "b.htm", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("<div></div>"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files, err := collectHTMLFiles(dir)
	if err != nil {
		t.Fatalf("collectHTMLFiles: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v, want the two html files", files)
	}
}
