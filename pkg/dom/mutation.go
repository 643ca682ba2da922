package dom

// MutationType discriminates mutation records.
type MutationType int

const (
	// MutationChildList records added or removed children.
	MutationChildList MutationType = iota
	// MutationAttributes records an attribute change.
	MutationAttributes
)

func (t MutationType) String() string {
	switch t {
	case MutationChildList:
		return "childList"
	case MutationAttributes:
		return "attributes"
	default:
		return "unknown"
	}
}

// MutationRecord describes a single tree or attribute change. For child
// list changes Target is the parent whose children changed.
type MutationRecord struct {
	Type          MutationType
	Target        *Element
	AddedNodes    []*Element
	RemovedNodes  []*Element
	AttributeName string
	OldValue      string
}

// ObserveInit selects which mutations an observation target reports.
type ObserveInit struct {
	// Subtree extends observation to all descendants of the target.
	// Shadow boundaries are not crossed; observe the shadow root
	// separately to cover it.
	Subtree bool
	// ChildList reports added and removed children.
	ChildList bool
	// Attributes reports attribute changes.
	Attributes bool
	// AttributeFilter restricts attribute reporting to the named
	// attributes. Empty means all attributes.
	AttributeFilter []string
}

// MutationCallback receives a delivered batch of records.
type MutationCallback func(records []MutationRecord, obs *MutationObserver)

type observeTarget struct {
	el   *Element
	init ObserveInit
}

// MutationObserver collects mutation records for its observed targets and
// delivers them in batches on the document loop's microtask queue.
type MutationObserver struct {
	callback  MutationCallback
	doc       *Document
	targets   []observeTarget
	records   []MutationRecord
	scheduled bool
}

// NewMutationObserver creates an observer that delivers batches to cb.
func NewMutationObserver(cb MutationCallback) *MutationObserver {
	return &MutationObserver{callback: cb}
}

// Observe starts observing target with the given options. Observing an
// already-observed target replaces its options.
func (o *MutationObserver) Observe(target *Element, init ObserveInit) {
	if target == nil || target.doc == nil {
		return
	}
	if o.doc == nil {
		o.doc = target.doc
		o.doc.observers = append(o.doc.observers, o)
	}
	for i := range o.targets {
		if o.targets[i].el == target {
			o.targets[i].init = init
			return
		}
	}
	o.targets = append(o.targets, observeTarget{el: target, init: init})
}

// Disconnect stops observation synchronously and discards queued records.
// The callback will not fire after Disconnect returns.
func (o *MutationObserver) Disconnect() {
	o.targets = nil
	o.records = nil
	if o.doc != nil {
		for i, reg := range o.doc.observers {
			if reg == o {
				o.doc.observers = append(o.doc.observers[:i], o.doc.observers[i+1:]...)
				break
			}
		}
		o.doc = nil
	}
}

// TakeRecords returns queued records and empties the queue without waiting
// for delivery. Any already-scheduled delivery becomes a no-op.
func (o *MutationObserver) TakeRecords() []MutationRecord {
	records := o.records
	o.records = nil
	return records
}

// matches reports whether the record falls within any observed target.
func (o *MutationObserver) matches(rec MutationRecord) bool {
	for _, t := range o.targets {
		if rec.Target != t.el && !(t.init.Subtree && t.el.contains(rec.Target)) {
			continue
		}
		switch rec.Type {
		case MutationChildList:
			if t.init.ChildList {
				return true
			}
		case MutationAttributes:
			if !t.init.Attributes {
				continue
			}
			if len(t.init.AttributeFilter) == 0 {
				return true
			}
			for _, name := range t.init.AttributeFilter {
				if name == rec.AttributeName {
					return true
				}
			}
		}
	}
	return false
}

func (o *MutationObserver) enqueue(rec MutationRecord) {
	o.records = append(o.records, rec)
	if o.scheduled || o.doc == nil {
		return
	}
	o.scheduled = true
	o.doc.loop.QueueMicrotask(o.deliver)
}

func (o *MutationObserver) deliver() {
	o.scheduled = false
	records := o.records
	o.records = nil
	if len(records) == 0 || o.callback == nil {
		return
	}
	o.callback(records, o)
}

// notifyMutation routes a record to every observer that matches it.
func (d *Document) notifyMutation(rec MutationRecord) {
	for _, o := range append([]*MutationObserver(nil), d.observers...) {
		if o.matches(rec) {
			o.enqueue(rec)
		}
	}
}
