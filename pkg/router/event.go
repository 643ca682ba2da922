package router

import "github.com/go-weft/weft/pkg/dom"

// retargeted is a read-through view of an event that reports the element
// that declared the binding as Target, so handlers observe the element
// they were wired to rather than the deepest event source. Every other
// read delegates to the original event.
type retargeted struct {
	dom.Event
	target *dom.Element
}

func (e retargeted) Target() *dom.Element { return e.target }

// Retarget wraps evt so Target reports target.
func Retarget(evt dom.Event, target *dom.Element) dom.Event {
	return retargeted{Event: evt, target: target}
}
