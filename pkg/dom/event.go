package dom

// Event is the read surface an event handler observes. Target is
// retargeted to the document scope when the event originates inside a
// shadow tree; ComposedPath always exposes the true origin as its head.
type Event interface {
	Type() string
	Target() *Element
	CurrentTarget() *Element
	ComposedPath() []*Element
	PreventDefault()
	DefaultPrevented() bool
	StopPropagation()
	PropagationStopped() bool
}

// BaseEvent is the concrete event dispatched through the tree.
type BaseEvent struct {
	typ     string
	target  *Element
	current *Element
	path    []*Element

	defaultPrevented bool
	stopped          bool
}

// NewEvent creates an event of the given type, ready for DispatchEvent.
func NewEvent(typ string) *BaseEvent {
	return &BaseEvent{typ: typ}
}

func (e *BaseEvent) Type() string             { return e.typ }
func (e *BaseEvent) Target() *Element         { return e.target }
func (e *BaseEvent) CurrentTarget() *Element  { return e.current }
func (e *BaseEvent) ComposedPath() []*Element { return e.path }
func (e *BaseEvent) PreventDefault()          { e.defaultPrevented = true }
func (e *BaseEvent) DefaultPrevented() bool   { return e.defaultPrevented }
func (e *BaseEvent) StopPropagation()         { e.stopped = true }
func (e *BaseEvent) PropagationStopped() bool { return e.stopped }

// Listener handles a dispatched event.
type Listener func(Event)

type listenerReg struct {
	typ     string
	fn      Listener
	capture bool
	removed bool
}

// AddEventListener registers fn for events of the given type on this
// element. The returned function removes the listener.
func (e *Element) AddEventListener(typ string, fn Listener, capture bool) func() {
	reg := &listenerReg{typ: typ, fn: fn, capture: capture}
	e.listeners = append(e.listeners, reg)
	return func() { reg.removed = true }
}

// AddEventListener registers a document-level listener. Capturing
// document listeners run before any element in the path; bubbling ones
// run last. The returned function removes the listener.
func (d *Document) AddEventListener(typ string, fn Listener, capture bool) func() {
	reg := &listenerReg{typ: typ, fn: fn, capture: capture}
	d.listeners = append(d.listeners, reg)
	return func() { reg.removed = true }
}

// DispatchEvent dispatches evt with this element as its origin: capture
// phase from the document down, then bubble phase back up. Returns false
// if any handler called PreventDefault.
func (e *Element) DispatchEvent(evt *BaseEvent) bool {
	path := composedPathFrom(e)
	evt.path = path
	evt.target = retargetToDocument(e)

	doc := e.doc

	// Capture: document listeners, then ancestors outermost-first.
	if doc != nil {
		doc.invokeListeners(evt, nil, true)
	}
	if !evt.stopped {
		for i := len(path) - 1; i >= 1; i-- {
			path[i].invokeListeners(evt, true)
			if evt.stopped {
				break
			}
		}
	}

	// At target: capture listeners then bubble listeners.
	if !evt.stopped {
		e.invokeListeners(evt, true)
	}
	if !evt.stopped {
		e.invokeListeners(evt, false)
	}

	// Bubble: ancestors innermost-first, then document listeners.
	if !evt.stopped {
		for i := 1; i < len(path); i++ {
			path[i].invokeListeners(evt, false)
			if evt.stopped {
				break
			}
		}
	}
	if !evt.stopped && doc != nil {
		doc.invokeListeners(evt, nil, false)
	}

	evt.current = nil
	return !evt.defaultPrevented
}

func (e *Element) invokeListeners(evt *BaseEvent, capture bool) {
	evt.current = e
	regs := append([]*listenerReg(nil), e.listeners...)
	for _, reg := range regs {
		if reg.removed || reg.typ != evt.typ || reg.capture != capture {
			continue
		}
		reg.fn(evt)
	}
}

func (d *Document) invokeListeners(evt *BaseEvent, current *Element, capture bool) {
	evt.current = current
	regs := append([]*listenerReg(nil), d.listeners...)
	for _, reg := range regs {
		if reg.removed || reg.typ != evt.typ || reg.capture != capture {
			continue
		}
		reg.fn(evt)
	}
}

// composedPathFrom builds the composed ancestor chain starting at origin,
// crossing shadow boundaries via the host. The origin itself is the head.
func composedPathFrom(origin *Element) []*Element {
	var path []*Element
	for cur := origin; cur != nil; {
		path = append(path, cur)
		next := cur.parent
		if next == nil && cur.isShadow {
			next = cur.host
		}
		cur = next
	}
	return path
}

// retargetToDocument maps an origin inside shadow trees to its outermost
// shadow host, which is what Target reports above the shadow boundary.
func retargetToDocument(origin *Element) *Element {
	cur := origin
	for {
		root := cur
		for root.parent != nil {
			root = root.parent
		}
		if root.isShadow {
			cur = root.host
			continue
		}
		return cur
	}
}
