// Package router dispatches DOM events to component methods declared
// through on:<event> binding attributes.
//
// One process-wide set of capturing listeners on the document inspects the
// binding attribute of the event's origin, resolves a component instance
// and method name from the attribute value, and invokes the method by
// name. No listener is ever attached to individual elements.
package router

import (
	"fmt"
	"reflect"
	"strings"
	"sync/atomic"
	"unicode"
	"unicode/utf8"

	"github.com/go-weft/weft/pkg/config"
	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/errors"
)

// DefaultEvents are the event types the router delegates out of the box.
var DefaultEvents = []string{
	"click", "dblclick",
	"input", "change", "submit",
	"keydown", "keyup",
	"pointerdown", "pointerup",
	"focusin", "focusout",
	"scroll", "pointermove", "wheel",
}

// directOnly event types fire too often to afford an ancestor walk; their
// bindings only match when the exact origin carries the attribute.
var directOnly = map[string]bool{
	"scroll":      true,
	"pointermove": true,
	"wheel":       true,
}

// Router owns the delegation state. The package-level Setup uses a single
// process-wide instance; separate instances exist for tests.
type Router struct {
	initialized atomic.Bool
}

// New creates an independent router, mainly for tests. Production code
// uses the package-level Setup.
func New() *Router {
	return &Router{}
}

var std = New()

// Setup registers the process-wide delegation listeners on doc. The first
// call wins; every later call is a no-op regardless of the document passed.
// There is no teardown: delegation spans the process lifetime.
func Setup(doc *dom.Document) {
	std.Setup(doc)
}

// Setup registers one capturing listener per tracked event type on doc.
// Idempotent per router instance.
func (r *Router) Setup(doc *dom.Document) {
	if !r.initialized.CompareAndSwap(false, true) {
		return
	}
	events := append(append([]string(nil), DefaultEvents...), config.ExtraEvents()...)
	for _, typ := range events {
		typ := typ
		doc.AddEventListener(typ, func(evt dom.Event) {
			r.dispatch(doc, typ, evt)
		}, true)
	}
}

// dispatch resolves and invokes the binding for one delivered event.
// Resolution misses are silent: bindings routinely exist in markup for
// inactive variants.
func (r *Router) dispatch(doc *dom.Document, typ string, evt dom.Event) {
	path := evt.ComposedPath()
	var origin *dom.Element
	if len(path) > 0 {
		origin = path[0]
	} else {
		origin = evt.Target()
	}
	if origin == nil {
		return
	}

	attr := AttributeFor(typ)
	bound := origin
	value, ok := origin.Attr(attr)
	if !ok {
		if directOnly[typ] {
			return
		}
		bound = nil
		for _, anc := range path[1:] {
			if anc.IsShadowRoot() {
				continue
			}
			if v, found := anc.Attr(attr); found {
				bound, value = anc, v
				break
			}
		}
		if bound == nil {
			return
		}
	}

	binding := ParseBinding(value)
	if binding.Method == "" {
		return
	}
	host := r.resolve(doc, origin, bound, binding.Selector)
	if host == nil {
		return
	}
	ctrl := host.Controller()
	if ctrl == nil {
		return
	}

	handlerEvt := evt
	if bound != evt.Target() {
		handlerEvt = Retarget(evt, bound)
	}
	invoke(ctrl, binding, handlerEvt)
}

// resolve picks the target instance host per the binding selector.
// Explicit selectors match from the event origin, not the element that
// declared the binding, so the nearest matching element between the two
// wins.
func (r *Router) resolve(doc *dom.Document, origin, bound *dom.Element, selector string) *dom.Element {
	switch {
	case selector == "":
		if bound.IsComponentHost() {
			return bound
		}
		return dom.OwnerHost(bound)
	case strings.HasPrefix(selector, "#"):
		return doc.ElementByID(selector[1:])
	default:
		return origin.Closest(selector)
	}
}

var eventInterface = reflect.TypeOf((*dom.Event)(nil)).Elem()

// invoke calls the named method on the controller: parsed data first when
// present, the event last, honoring whichever of those the method's actual
// signature accepts. A method that fits neither shape is a silent no-op.
// Panics from the handler are reported, never propagated, so one failing
// handler cannot break delegation for subsequent events.
func invoke(ctrl dom.Controller, b Binding, evt dom.Event) {
	defer errors.Recover("router.dispatch")

	m := reflect.ValueOf(ctrl).MethodByName(exportName(b.Method))
	if !m.IsValid() {
		return
	}
	mt := m.Type()
	if mt.IsVariadic() {
		return
	}

	evtVal := reflect.ValueOf(evt)
	dataVal := reflect.Value{}
	if b.HasData {
		dataVal = reflect.ValueOf(b.Data)
	}

	var args []reflect.Value
	switch mt.NumIn() {
	case 0:
	case 1:
		in := mt.In(0)
		if evtVal.Type().AssignableTo(in) {
			args = []reflect.Value{evtVal}
			break
		}
		if !b.HasData {
			return
		}
		dv := assignData(dataVal, in)
		if dv == nil {
			reportMismatch(b)
			return
		}
		args = []reflect.Value{*dv}
	case 2:
		dataIn, evtIn := mt.In(0), mt.In(1)
		if !evtVal.Type().AssignableTo(evtIn) {
			return
		}
		var data reflect.Value
		if b.HasData {
			dv := assignData(dataVal, dataIn)
			if dv == nil {
				reportMismatch(b)
				return
			}
			data = *dv
		} else {
			data = reflect.Zero(dataIn)
		}
		args = []reflect.Value{data, evtVal}
	default:
		return
	}
	m.Call(args)
}

// reportMismatch surfaces a payload the resolved method cannot accept.
// Unlike a missing method, the method exists and was meant to fire; the
// markup payload and the method signature disagree, which is a markup
// mistake worth reporting rather than a routine miss.
func reportMismatch(b Binding) {
	errors.Report(&errors.WeftError{
		Op:   "router.dispatch",
		Kind: errors.KindDispatch,
		Err:  fmt.Errorf("method %s cannot accept %T payload", exportName(b.Method), b.Data),
	})
}

// assignData adapts the parsed payload to the parameter type, or nil when
// the payload cannot be passed as that type.
func assignData(data reflect.Value, in reflect.Type) *reflect.Value {
	if !data.IsValid() {
		zero := reflect.Zero(in)
		return &zero
	}
	if data.Type().AssignableTo(in) {
		return &data
	}
	if in.Kind() == reflect.Interface && data.Type().Implements(in) {
		v := data.Convert(in)
		return &v
	}
	return nil
}

// exportName maps a binding method name to the exported Go method name.
func exportName(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	if r == utf8.RuneError {
		return name
	}
	return string(unicode.ToUpper(r)) + name[size:]
}
