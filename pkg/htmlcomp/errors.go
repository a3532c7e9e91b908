package htmlcomp

import "fmt"

// UnknownTypeError reports a tag or element name with no registry entry.
// It is fatal to the operation that performed the lookup.
type UnknownTypeError struct {
	// Name is the element name that failed to resolve.
	Name string
}

// Error implements the error interface.
func (e *UnknownTypeError) Error() string {
	return fmt.Sprintf("unknown element type %q", e.Name)
}

// ParseError reports malformed input: a mismatched or unpaired end tag,
// unclosed tags at end of input, or an unregistered tag name. The parser
// does not produce a partial tree on this error.
type ParseError struct {
	// Message describes the failure.
	Message string

	// Unclosed is the number of elements still open at end of input,
	// when that is the cause.
	Unclosed int

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return "parse: " + e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

// RenderDepthError reports that component expansion exceeded the render
// depth guard. It almost always indicates a component whose transform
// substitutes unconditionally.
type RenderDepthError struct {
	// Depth is the guard value that was exceeded.
	Depth int
}

// Error implements the error interface.
func (e *RenderDepthError) Error() string {
	return fmt.Sprintf("render: expansion exceeded %d levels; a component transform likely never returns nil", e.Depth)
}
