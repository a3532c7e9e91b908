// Package htmlcomp provides a mutable HTML element tree with
// user-defined component types.
//
// The package unifies three pieces: a typed tree model, a streaming
// parser that builds trees from HTML text, and a render pipeline that
// expands component elements into concrete markup before serializing
// the result back to HTML.
//
// # Core Types
//
// Element is the tree node: a type name, an ordered attribute mapping,
// and an ordered child sequence. Children are *Element values or opaque
// leaves (conventionally strings). Type describes the behavior of a
// registered element name: void-ness, per-attribute codecs, and an
// optional Transform function that turns the name into a component.
//
// # Registration
//
// Every name used during parsing, rendering, or serialization must be
// registered first. Registration is process-wide and must happen before
// the first Parse, Render, or String call; it is not safe to register
// concurrently with those operations. The standard tag catalog lives in
// the elements package and is installed with elements.Register.
//
// # Pipeline
//
//	tree, err := htmlcomp.Parse(input)
//	out, err := htmlcomp.String(tree)
//
// Parse builds a raw tree, applying registered attribute parsers as it
// goes. String renders the tree to a fixpoint (expanding components),
// normalizes it, and emits HTML text.
package htmlcomp
