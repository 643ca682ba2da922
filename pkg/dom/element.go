package dom

import (
	"strings"
)

// Attr is a single element attribute. Order of attributes is preserved.
type Attr struct {
	Key   string
	Value string
}

// Controller receives lifecycle callbacks for a custom element. Component
// base types implement Controller; the document invokes the callbacks as
// the host element enters and leaves the tree.
type Controller interface {
	// Connected is called after the host element joins the connected tree.
	Connected()
	// Disconnected is called after the host element leaves the connected tree.
	Disconnected()
	// Updated is called when an external re-render mechanism signals that
	// the host's subtree has been replaced wholesale.
	Updated()
}

// Element is a node in the document tree. The zero value is not usable;
// create elements through Document.CreateElement or Document.ParseFragment.
type Element struct {
	tag      string
	doc      *Document
	parent   *Element
	children []*Element
	attrs    []Attr
	text     string

	shadow   *Element // open shadow root, nil until attached
	host     *Element // set on shadow roots only
	isShadow bool

	controller Controller
	connected  bool
	listeners  []*listenerReg
}

// Tag returns the element's lower-case tag name.
func (e *Element) Tag() string { return e.tag }

// Document returns the owning document.
func (e *Element) Document() *Document { return e.doc }

// Parent returns the parent element, or nil for detached elements and
// shadow roots.
func (e *Element) Parent() *Element { return e.parent }

// Children returns the element's children. The returned slice is the
// internal one; callers must not mutate it.
func (e *Element) Children() []*Element { return e.children }

// IsConnected reports whether the element is part of the connected tree.
func (e *Element) IsConnected() bool { return e.connected }

// IsShadowRoot reports whether this element is a shadow root.
func (e *Element) IsShadowRoot() bool { return e.isShadow }

// Host returns the shadow host for shadow roots, nil otherwise.
func (e *Element) Host() *Element { return e.host }

// Shadow returns the element's open shadow root, or nil.
func (e *Element) Shadow() *Element { return e.shadow }

// Controller returns the attached lifecycle controller, or nil for
// elements that are not upgraded component hosts.
func (e *Element) Controller() Controller { return e.controller }

// IsComponentHost reports whether the element bounds component ownership:
// either a controller is attached, or the tag name marks it as a custom
// element (contains a hyphen) that may upgrade later.
func (e *Element) IsComponentHost() bool {
	return e.controller != nil || strings.Contains(e.tag, "-")
}

// ID returns the value of the id attribute.
func (e *Element) ID() string { return e.GetAttribute("id") }

// Text returns the element's own text content.
func (e *Element) Text() string { return e.text }

// SetText replaces the element's own text content.
func (e *Element) SetText(s string) { e.text = s }

// GetAttribute returns the attribute value, or "" when absent.
func (e *Element) GetAttribute(name string) string {
	v, _ := e.Attr(name)
	return v
}

// Attr returns the attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.Key == name {
			return a.Value, true
		}
	}
	return "", false
}

// HasAttribute reports whether the attribute is present.
func (e *Element) HasAttribute(name string) bool {
	_, ok := e.Attr(name)
	return ok
}

// Attributes returns the element's attributes in declaration order. The
// returned slice is the internal one; callers must not mutate it.
func (e *Element) Attributes() []Attr { return e.attrs }

// SetAttribute sets or replaces an attribute and notifies observers.
func (e *Element) SetAttribute(name, value string) {
	name = strings.ToLower(name)
	old := ""
	found := false
	for i, a := range e.attrs {
		if a.Key == name {
			old = a.Value
			found = true
			e.attrs[i].Value = value
			break
		}
	}
	if !found {
		e.attrs = append(e.attrs, Attr{Key: name, Value: value})
	}
	if found && old == value {
		return
	}
	e.notifyAttribute(name, old)
}

// RemoveAttribute removes an attribute if present and notifies observers.
func (e *Element) RemoveAttribute(name string) {
	name = strings.ToLower(name)
	for i, a := range e.attrs {
		if a.Key == name {
			old := a.Value
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			e.notifyAttribute(name, old)
			return
		}
	}
}

func (e *Element) notifyAttribute(name, old string) {
	if e.doc == nil {
		return
	}
	e.doc.notifyMutation(MutationRecord{
		Type:          MutationAttributes,
		Target:        e,
		AttributeName: name,
		OldValue:      old,
	})
}

// AppendChild appends child to this element, detaching it from any previous
// parent first. Appending into a connected tree connects and upgrades the
// child's subtree.
func (e *Element) AppendChild(child *Element) {
	e.insertChild(child, len(e.children))
}

// InsertBefore inserts child before ref. A nil ref appends.
func (e *Element) InsertBefore(child, ref *Element) {
	idx := len(e.children)
	if ref != nil {
		for i, c := range e.children {
			if c == ref {
				idx = i
				break
			}
		}
	}
	e.insertChild(child, idx)
}

func (e *Element) insertChild(child *Element, idx int) {
	if child == nil || child == e {
		return
	}
	if child.parent != nil {
		child.parent.RemoveChild(child)
		if idx > len(e.children) {
			idx = len(e.children)
		}
	}
	child.parent = e
	child.doc = e.doc
	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = child

	if e.doc != nil {
		e.doc.notifyMutation(MutationRecord{
			Type:       MutationChildList,
			Target:     e,
			AddedNodes: []*Element{child},
		})
	}
	if e.connected && e.tag != "template" {
		child.setConnected(true)
	}
}

// RemoveChild detaches child from this element. Removing from a connected
// tree disconnects the child's subtree.
func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			child.parent = nil
			if child.connected {
				child.setConnected(false)
			}
			if e.doc != nil {
				e.doc.notifyMutation(MutationRecord{
					Type:         MutationChildList,
					Target:       e,
					RemovedNodes: []*Element{child},
				})
			}
			return
		}
	}
}

// Remove detaches the element from its parent, if any.
func (e *Element) Remove() {
	if e.parent != nil {
		e.parent.RemoveChild(e)
	}
}

// AttachShadow creates and returns an open shadow root for the element.
// If a shadow root already exists it is returned unchanged.
func (e *Element) AttachShadow() *Element {
	if e.shadow != nil {
		return e.shadow
	}
	sr := &Element{
		tag:      "#shadow-root",
		doc:      e.doc,
		host:     e,
		isShadow: true,
	}
	e.shadow = sr
	if e.connected {
		sr.setConnected(true)
	}
	return sr
}

// NotifyUpdated forwards an external re-render signal to the element's
// controller, if one is attached.
func (e *Element) NotifyUpdated() {
	if e.controller != nil {
		e.controller.Updated()
	}
}

// setConnected flips connectedness for the subtree rooted at e, upgrading
// and notifying controllers in tree order. Template subtrees stay inert.
func (e *Element) setConnected(state bool) {
	if e.connected == state {
		return
	}
	e.connected = state
	if state {
		if e.controller == nil && e.doc != nil {
			e.doc.upgrade(e)
		}
		if e.controller != nil {
			e.controller.Connected()
		}
	} else {
		if e.controller != nil {
			e.controller.Disconnected()
		}
	}
	if e.tag == "template" {
		return
	}
	// Children may move during Connected callbacks (shadow hydration);
	// walk a snapshot and re-check parentage.
	kids := append([]*Element(nil), e.children...)
	for _, c := range kids {
		if c.parent == e {
			c.setConnected(state)
		}
	}
	if e.shadow != nil {
		e.shadow.setConnected(state)
	}
}

// contains reports whether e is an inclusive ancestor of other within the
// same tree. Shadow boundaries are not crossed.
func (e *Element) contains(other *Element) bool {
	for cur := other; cur != nil; cur = cur.parent {
		if cur == e {
			return true
		}
	}
	return false
}

// OwnerHost returns the nearest strict ancestor of el that bounds component
// ownership, crossing shadow boundaries via the host element. Returns nil
// when no ancestor qualifies.
func OwnerHost(el *Element) *Element {
	cur := el
	for cur != nil {
		next := cur.parent
		if next == nil && cur.isShadow {
			next = cur.host
		}
		if next == nil {
			return nil
		}
		if !next.isShadow && next.IsComponentHost() {
			return next
		}
		cur = next
	}
	return nil
}
