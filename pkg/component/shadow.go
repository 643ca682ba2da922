package component

import "github.com/go-weft/weft/pkg/dom"

// HydrateShadow attaches a previously declared but uninitialized shadow
// subtree to host. If host has no shadow root and a direct
// <template shadowrootmode> (or the older shadowroot form) child exists,
// an open shadow root is created, the template's content moves into it and
// the template is removed. Idempotent; absence of a template is a normal,
// silent case.
func HydrateShadow(host *dom.Element) {
	if host.Shadow() != nil {
		return
	}
	for _, child := range host.Children() {
		if child.Tag() != "template" {
			continue
		}
		if !child.HasAttribute("shadowrootmode") && !child.HasAttribute("shadowroot") {
			continue
		}
		sr := host.AttachShadow()
		content := append([]*dom.Element(nil), child.Children()...)
		host.RemoveChild(child)
		for _, el := range content {
			sr.AppendChild(el)
		}
		return
	}
}
