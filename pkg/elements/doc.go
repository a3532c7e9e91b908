// Package elements carries the standard HTML tag catalog and a
// constructor DSL over it.
//
// Call Register once at startup, before any parse, render, or
// serialize call, to install every standard element (and the fragment)
// into the htmlcomp registry:
//
//	elements.Register()
//	doc := elements.Div(elements.ID("greeting"),
//	    "Hello, ", elements.Strong("world"), "!",
//	)
//
// The constructors panic if Register has not been called; they are
// thin wrappers over htmlcomp.MustNew.
package elements
