package component

import "github.com/go-weft/weft/pkg/dom"

// RefAttribute is the attribute that marks an element as a reference
// slot of its owning component.
const RefAttribute = "ref"

// listSuffix marks a slot name as accumulating, exactly two characters.
const listSuffix = "[]"

// Refs is an immutable snapshot of a component's reference slots. The
// tracker replaces the whole snapshot on every recomputation; callers must
// not hold on to a Refs value across mutations and expect it to update.
type Refs struct {
	single map[string]*dom.Element
	lists  map[string][]*dom.Element
	names  []string
}

func newRefs() *Refs {
	return &Refs{
		single: make(map[string]*dom.Element),
		lists:  make(map[string][]*dom.Element),
	}
}

func (r *Refs) set(name string, el *dom.Element) {
	r.noteName(name)
	r.single[name] = el
}

func (r *Refs) add(name string, el *dom.Element) {
	r.noteName(name)
	r.lists[name] = append(r.lists[name], el)
}

// noteName records a slot name once, even when it is populated both as a
// single slot and as a list.
func (r *Refs) noteName(name string) {
	if _, ok := r.single[name]; ok {
		return
	}
	if _, ok := r.lists[name]; ok {
		return
	}
	r.names = append(r.names, name)
}

// Element returns the element in a single-assignment slot, or nil.
func (r *Refs) Element(name string) *dom.Element {
	return r.single[name]
}

// Elements returns the ordered elements of an accumulating slot, or nil.
func (r *Refs) Elements(name string) []*dom.Element {
	return r.lists[name]
}

// Has reports whether the named slot is populated.
func (r *Refs) Has(name string) bool {
	if _, ok := r.single[name]; ok {
		return true
	}
	_, ok := r.lists[name]
	return ok
}

// Len returns the number of distinct populated slot names.
func (r *Refs) Len() int { return len(r.names) }

// Names returns slot names in first-seen scan order.
func (r *Refs) Names() []string { return r.names }
