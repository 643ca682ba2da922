// Package dom provides the document model Weft components run against.
//
// The model is deliberately small: elements with ordered attributes, open
// shadow roots, capture/bubble event dispatch along the composed path,
// batched mutation observation, and a custom-element registry that hands
// lifecycle callbacks (Connected, Disconnected, Updated) to attached
// controllers. It is single-threaded; every API must be called from the
// goroutine that pumps the document's loop.
//
// # Templates
//
// <template> subtrees are inert: their contents are not connected, not
// upgraded, and invisible to queries until something moves them into the
// live tree (for example shadow-root hydration on component connection).
//
// # Selectors
//
// Matches, Closest and QueryAll support compound simple selectors — tag,
// #id, .class, [attr] and [attr=value] — without combinators. That is the
// entire vocabulary event bindings need.
package dom
