// Package testing provides a component testing harness for Weft.
//
// A Harness owns a fresh loop and document, swaps the global error handler
// for a recorder, and pumps the loop deterministically:
//
//	func TestCounter(t *testing.T) {
//	    h := wefttest.NewHarness(t)
//	    component.Register(h.Doc, "my-counter", newCounter)
//	    host := h.Mount(`<my-counter><button ref="inc" on:click="/add/1"></button></my-counter>`)
//	    h.Settle()
//
//	    host.QueryAll("[ref]")[0].DispatchEvent(dom.NewEvent("click"))
//	    h.Settle()
//	}
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import wefttest "github.com/go-weft/weft/pkg/testing"
package testing
