// Package component provides the base type Weft components embed.
//
// A component is a custom element whose controller embeds *Base. On
// connection the base hydrates a declarative shadow template if one is
// present, then — deferred to an idle point so first paint is not blocked —
// scans its owned subtrees for ref markers and starts observing mutations
// so the ref snapshot stays current without manual wiring.
//
//	type UserCard struct {
//	    *component.Base
//	}
//
//	func (c *UserCard) RequiredRefs() []string { return []string{"avatar"} }
//
//	func (c *UserCard) Toggle(e dom.Event) { ... }
//
//	component.Register(doc, "user-card", func() component.Component {
//	    return &UserCard{Base: component.NewBase()}
//	})
//
// Ref markers are `ref` attributes on descendant elements. A name ending
// in `[]` accumulates matching elements into an ordered slice instead of a
// single slot. Markers inside a nested component belong to that component,
// never to an ancestor.
package component
