package dom

import (
	"strings"

	"github.com/go-weft/weft/pkg/errors"
	"github.com/go-weft/weft/pkg/sched"
)

// Definition constructs a controller for a freshly upgraded host element.
type Definition func(el *Element) Controller

// Document owns a connected element tree, the custom-element registry,
// document-level event listeners and mutation-observer delivery.
type Document struct {
	loop *sched.Loop
	body *Element
	defs map[string]Definition

	listeners []*listenerReg
	observers []*MutationObserver
}

// NewDocument creates a document whose body is connected and empty,
// driven by the given loop.
func NewDocument(loop *sched.Loop) *Document {
	d := &Document{
		loop: loop,
		defs: make(map[string]Definition),
	}
	d.body = &Element{tag: "body", doc: d, connected: true}
	return d
}

// Loop returns the loop that drives this document.
func (d *Document) Loop() *sched.Loop { return d.loop }

// Body returns the document's root container element.
func (d *Document) Body() *Element { return d.body }

// CreateElement creates a detached element with the given tag name.
// Elements with a defined tag are upgraded when they connect, not here.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{tag: strings.ToLower(tag), doc: d}
}

// Define registers a custom element. The tag must contain a hyphen and may
// only be defined once; violations are configuration errors and panic.
func (d *Document) Define(tag string, def Definition) {
	tag = strings.ToLower(tag)
	if !strings.Contains(tag, "-") {
		panic(&errors.ConfigError{Tag: tag, Detail: "custom element tag must contain a hyphen"})
	}
	if _, exists := d.defs[tag]; exists {
		panic(&errors.ConfigError{Tag: tag, Detail: "custom element already defined"})
	}
	if def == nil {
		panic(&errors.ConfigError{Tag: tag, Detail: "custom element definition is nil"})
	}
	d.defs[tag] = def
}

// Defined reports whether the tag has a registered definition.
func (d *Document) Defined(tag string) bool {
	_, ok := d.defs[strings.ToLower(tag)]
	return ok
}

// upgrade attaches a controller to el if its tag is defined.
func (d *Document) upgrade(el *Element) {
	if def, ok := d.defs[el.tag]; ok {
		el.controller = def(el)
	}
}

// ElementByID returns the first connected element with the given id, in
// tree order, not descending into shadow roots. Returns nil when absent.
func (d *Document) ElementByID(id string) *Element {
	if id == "" {
		return nil
	}
	var found *Element
	walkLight(d.body, func(el *Element) bool {
		if el.ID() == id {
			found = el
			return false
		}
		return true
	})
	return found
}

// walkLight visits el and its light-tree descendants in tree order,
// skipping inert template subtrees. The visitor returns false to stop.
func walkLight(el *Element, visit func(*Element) bool) bool {
	if !visit(el) {
		return false
	}
	if el.tag == "template" {
		return true
	}
	for _, c := range el.children {
		if !walkLight(c, visit) {
			return false
		}
	}
	return true
}
