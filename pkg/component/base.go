package component

import (
	"strings"

	"github.com/go-weft/weft/pkg/config"
	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/errors"
)

// Component is implemented by any type that embeds *Base.
type Component interface {
	dom.Controller
	base() *Base
}

// RefDeclarer is implemented by components that require certain reference
// slots to be populated. A missing required slot is a configuration error
// raised during the first ref computation.
type RefDeclarer interface {
	RequiredRefs() []string
}

// Optional lifecycle hooks for the embedding component type.
type (
	// ConnectHook runs synchronously when the host connects, before the
	// deferred ref scan.
	ConnectHook interface{ OnConnect() }
	// DisconnectHook runs when the host disconnects, after observation
	// teardown.
	DisconnectHook interface{ OnDisconnect() }
	// UpdateHook runs after an external re-render signal has been
	// processed and refs recomputed.
	UpdateHook interface{ OnUpdate() }
)

// Base carries the per-instance state of a component: the host element,
// the current ref snapshot and the mutation subscription. Embed *Base and
// construct it with NewBase.
type Base struct {
	el       *dom.Element
	self     Component
	refs     *Refs
	observer *dom.MutationObserver

	connected bool
	failed    bool
}

// NewBase creates an unbound component base. Register binds it to a host
// element when the custom element upgrades.
func NewBase() *Base {
	return &Base{refs: newRefs()}
}

func (b *Base) base() *Base { return b }

// Register wires a component constructor into the document's custom
// element registry. The constructor runs once per host element, when the
// element first connects.
func Register(doc *dom.Document, tag string, create func() Component) {
	doc.Define(tag, func(el *dom.Element) dom.Controller {
		c := create()
		b := c.base()
		b.el = el
		b.self = c
		return c
	})
}

// Element returns the host element.
func (b *Base) Element() *dom.Element { return b.el }

// Refs returns the current reference snapshot. The snapshot is replaced
// wholesale on recomputation and must not be mutated.
func (b *Base) Refs() *Refs { return b.refs }

// Connected implements dom.Controller. It hydrates a declarative shadow
// template, runs the OnConnect hook, and defers the first ref scan and the
// mutation subscription to an idle point so they do not instrument the
// transient churn of initial hydration.
func (b *Base) Connected() {
	b.connected = true
	HydrateShadow(b.el)
	if hook, ok := b.self.(ConnectHook); ok {
		hook.OnConnect()
	}
	b.el.Document().Loop().RequestIdle(func() {
		if !b.connected || b.observer != nil {
			return
		}
		b.computeRefs()
		b.observe()
	})
}

// Disconnected implements dom.Controller. Observation is torn down
// synchronously; the stale ref snapshot remains readable but is no longer
// updated.
func (b *Base) Disconnected() {
	b.connected = false
	if b.observer != nil {
		b.observer.Disconnect()
		b.observer = nil
	}
	if hook, ok := b.self.(DisconnectHook); ok {
		hook.OnDisconnect()
	}
}

// Updated implements dom.Controller. An external re-render replaced the
// subtree wholesale, so pending mutation records are discarded and refs
// recomputed immediately.
func (b *Base) Updated() {
	if !b.connected || b.failed {
		return
	}
	if b.observer != nil {
		b.observer.TakeRecords()
	}
	b.computeRefs()
	if hook, ok := b.self.(UpdateHook); ok {
		hook.OnUpdate()
	}
}

// computeRefs rebuilds the ref snapshot from the component's owned scan
// surfaces: the host element's light tree and its shadow root. Markers
// owned by a nested component are excluded. The snapshot is replaced, not
// patched.
func (b *Base) computeRefs() {
	if b.failed {
		return
	}
	next := newRefs()
	b.scanSurface(b.el, next)
	if sr := b.el.Shadow(); sr != nil {
		b.scanSurface(sr, next)
	}

	for _, name := range b.requiredRefs() {
		if !next.Has(name) {
			b.failed = true
			panic(&errors.ConfigError{Tag: b.el.Tag(), Ref: name})
		}
	}
	b.refs = next
}

func (b *Base) scanSurface(surface *dom.Element, into *Refs) {
	for _, el := range surface.QueryAll("[" + RefAttribute + "]") {
		if dom.OwnerHost(el) != b.el {
			continue
		}
		name := el.GetAttribute(RefAttribute)
		if name == "" {
			continue
		}
		if strings.HasSuffix(name, listSuffix) {
			if slot := name[:len(name)-len(listSuffix)]; slot != "" {
				into.add(slot, el)
			}
			continue
		}
		into.set(name, el)
	}
}

func (b *Base) requiredRefs() []string {
	var required []string
	if decl, ok := b.self.(RefDeclarer); ok {
		required = append(required, decl.RequiredRefs()...)
	}
	for _, name := range config.RequiredRefs(b.el.Tag()) {
		seen := false
		for _, have := range required {
			if have == name {
				seen = true
				break
			}
		}
		if !seen {
			required = append(required, name)
		}
	}
	return required
}

// observe subscribes to childList and ref-attribute mutations on both scan
// surfaces. Delivery is batched; one batch triggers at most one
// recomputation, and batches that only touch nested components' subtrees
// are ignored.
func (b *Base) observe() {
	b.observer = dom.NewMutationObserver(b.onMutations)
	init := dom.ObserveInit{
		Subtree:         true,
		ChildList:       true,
		Attributes:      true,
		AttributeFilter: []string{RefAttribute},
	}
	b.observer.Observe(b.el, init)
	if sr := b.el.Shadow(); sr != nil {
		b.observer.Observe(sr, init)
	}
}

func (b *Base) onMutations(records []dom.MutationRecord, _ *dom.MutationObserver) {
	if !b.connected || b.failed {
		return
	}
	for _, rec := range records {
		if b.ownsMutation(rec) {
			b.computeRefs()
			return
		}
	}
}

// ownsMutation reports whether the record's target falls within this
// component's owned territory rather than a nested component's.
func (b *Base) ownsMutation(rec dom.MutationRecord) bool {
	switch rec.Type {
	case dom.MutationChildList:
		if rec.Target == b.el || rec.Target == b.el.Shadow() {
			return true
		}
		// Children of a nested component host are that component's
		// territory even though the host itself is owned here.
		if rec.Target.IsComponentHost() {
			return false
		}
		return dom.OwnerHost(rec.Target) == b.el
	case dom.MutationAttributes:
		return dom.OwnerHost(rec.Target) == b.el
	default:
		return false
	}
}
