// Package main provides weftlint, a static checker for Weft binding
// markup. It parses HTML files and validates every on:<event> binding
// attribute against the router grammar and every ref marker against the
// ref tracker's rules, reporting findings that would otherwise surface as
// silent no-ops at runtime.
//
// Usage:
//
//	weftlint [files or directories...]
//
// Exits 1 when any finding is reported.
package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/net/html"

	"github.com/go-weft/weft/pkg/config"
	"github.com/go-weft/weft/pkg/router"
)

// Finding is a single lint result.
type Finding struct {
	File    string
	Message string
}

func main() {
	args := os.Args[1:]
	if len(args) == 0 {
		args = []string{"."}
	}

	// An adjacent weft.yaml may declare extra delegated event types.
	if cfg, err := config.LoadOptional("."); err == nil {
		config.Apply(cfg)
	}

	var files []string
	for _, arg := range args {
		found, err := collectHTMLFiles(arg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "weftlint: %v\n", err)
			os.Exit(2)
		}
		files = append(files, found...)
	}
	sort.Strings(files)

	var findings []Finding
	for _, file := range files {
		fileFindings, err := lintFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "weftlint: %v\n", err)
			os.Exit(2)
		}
		findings = append(findings, fileFindings...)
	}

	for _, f := range findings {
		fmt.Printf("%s: %s\n", f.File, f.Message)
	}
	if len(findings) > 0 {
		fmt.Printf("%d finding(s) in %d file(s)\n", len(findings), len(files))
		os.Exit(1)
	}
}

func collectHTMLFiles(path string) ([]string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{path}, nil
	}
	var files []string
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if ext := filepath.Ext(p); ext == ".html" || ext == ".htm" {
			files = append(files, p)
		}
		return nil
	})
	return files, err
}

func lintFile(file string) ([]Finding, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	root, err := html.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %v", file, err)
	}

	known := make(map[string]bool)
	for _, typ := range router.DefaultEvents {
		known[typ] = true
	}
	for _, typ := range config.ExtraEvents() {
		known[typ] = true
	}

	l := &linter{file: file, knownEvents: known}
	rootScope := newScope(nil)
	l.scopes = append(l.scopes, rootScope)
	l.walk(root, rootScope)
	l.reportDuplicates()
	return l.findings, nil
}

// scope tracks ref names per component boundary so duplicate single-slot
// assignments are caught within the component that owns them.
type scope struct {
	parent *scope
	tag    string
	single map[string]int
}

func newScope(parent *scope) *scope {
	return &scope{parent: parent, single: make(map[string]int)}
}

type linter struct {
	file        string
	knownEvents map[string]bool
	findings    []Finding
	scopes      []*scope
}

func (l *linter) addf(format string, args ...any) {
	l.findings = append(l.findings, Finding{File: l.file, Message: fmt.Sprintf(format, args...)})
}

func (l *linter) walk(n *html.Node, owner *scope) {
	current := owner
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			switch {
			case a.Key == "ref":
				l.checkRef(n.Data, a.Val, owner)
			case strings.HasPrefix(a.Key, router.AttributePrefix):
				l.checkBinding(n.Data, a.Key, a.Val)
			}
		}
		// A custom element opens a new ownership scope for its subtree.
		if strings.Contains(n.Data, "-") {
			current = newScope(owner)
			current.tag = n.Data
			l.scopes = append(l.scopes, current)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		l.walk(c, current)
	}
}

func (l *linter) checkRef(tag, value string, owner *scope) {
	name := value
	list := strings.HasSuffix(name, "[]")
	if list {
		name = name[:len(name)-2]
	}
	if name == "" {
		l.addf("<%s>: ref marker has an empty slot name (%q)", tag, value)
		return
	}
	if !list {
		owner.single[name]++
	}
}

func (l *linter) checkBinding(tag, attr, value string) {
	typ, _ := router.EventTypeOf(attr)
	if !l.knownEvents[typ] {
		l.addf("<%s>: %s binds an event type the router does not delegate", tag, attr)
	}
	b := router.ParseBinding(value)
	if b.Method == "" {
		l.addf("<%s>: %s=%q has no method and will never fire", tag, attr, value)
	}
}

func (l *linter) reportDuplicates() {
	for _, s := range l.scopes {
		tag := s.tag
		if tag == "" {
			tag = "(document)"
		}
		names := make([]string, 0, len(s.single))
		for name, count := range s.single {
			if count > 1 {
				names = append(names, name)
			}
		}
		sort.Strings(names)
		for _, name := range names {
			l.addf("<%s>: ref %q is assigned by multiple elements; only the last survives (use %q for a list)", tag, name, name+"[]")
		}
	}
}
