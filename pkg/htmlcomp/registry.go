package htmlcomp

import "strings"

// AttrParser converts the raw wire string of an attribute into its
// in-tree value. Parsers are applied by the parser when reading
// attributes of the owning type.
type AttrParser func(raw string) any

// AttrFormatter converts an in-tree attribute value back to its wire
// string. Returning ok=false omits the attribute from output entirely.
type AttrFormatter func(value any) (wire string, ok bool)

// TransformFunc substitutes a value for a component element during
// rendering. Returning (nil, nil) means no further expansion: the
// element is treated as concrete. A returned *Element is rendered again
// (components may expand to other components); any other non-nil value
// is wrapped in a fragment as-is. Errors propagate out of Render
// unwrapped.
type TransformFunc func(children []any, attrs *Attrs) (any, error)

// Type describes the behavior of a registered element name. A Type with
// a Transform is a component; a plain element type leaves it nil.
// Descriptors are immutable after registration.
type Type struct {
	// Name is the canonical lowercase element name. The empty string
	// names the fragment type.
	Name string

	// Void marks types that may never have children and are serialized
	// without a closing tag.
	Void bool

	// ParseAttrs maps canonical attribute names to wire-string parsers.
	ParseAttrs map[string]AttrParser

	// FormatAttrs maps canonical attribute names to formatters.
	FormatAttrs map[string]AttrFormatter

	// Transform, when non-nil, makes this type a component.
	Transform TransformFunc

	// DefaultAttrs supplies the attribute mapping every freshly
	// constructed element of this type starts from.
	DefaultAttrs func() *Attrs
}

// IsComponent reports whether this type substitutes during rendering.
func (t Type) IsComponent() bool {
	return t.Transform != nil
}

// registry is the process-wide name-to-type mapping. It is written only
// during the startup registration phase and read-only afterwards;
// registering concurrently with parse/render/serialize calls is not
// supported.
var registry = make(map[string]Type)

// Register inserts or replaces the descriptor under the lowercase form
// of t.Name. Missing codec maps and defaults are filled in once here:
// every type parses and formats the "class" attribute as a ClassSet and
// defaults it to an empty set.
func Register(t Type) {
	t.Name = strings.ToLower(t.Name)
	if t.ParseAttrs == nil {
		t.ParseAttrs = make(map[string]AttrParser)
	}
	if _, ok := t.ParseAttrs["class"]; !ok {
		t.ParseAttrs["class"] = parseClassAttr
	}
	if t.FormatAttrs == nil {
		t.FormatAttrs = make(map[string]AttrFormatter)
	}
	if _, ok := t.FormatAttrs["class"]; !ok {
		t.FormatAttrs["class"] = formatClassAttr
	}
	if t.DefaultAttrs == nil {
		t.DefaultAttrs = defaultAttrs
	}
	registry[t.Name] = t
}

// RegisterElement registers a plain element type with no transform and
// no custom codecs.
func RegisterElement(name string, void bool) {
	Register(Type{Name: name, Void: void})
}

// RegisterComponent registers a component type under name with the
// given transform.
func RegisterComponent(name string, transform TransformFunc) {
	Register(Type{Name: name, Transform: transform})
}

// Lookup resolves a registered type by its lowercase name.
func Lookup(name string) (Type, error) {
	t, ok := registry[strings.ToLower(name)]
	if !ok {
		return Type{}, &UnknownTypeError{Name: name}
	}
	return t, nil
}

// defaultAttrs is the shared default-attribute hook: every element
// starts with an empty class set. An empty set formats to nothing, so
// the default never appears in output.
func defaultAttrs() *Attrs {
	a := NewAttrs()
	a.Set("class", NewClassSet())
	return a
}

// parseClassAttr splits the wire string into a token set.
func parseClassAttr(raw string) any {
	return NewClassSet(strings.Fields(raw)...)
}

// formatClassAttr joins the tokens sorted; an empty set is omitted.
func formatClassAttr(value any) (string, bool) {
	s, ok := value.(ClassSet)
	if !ok {
		// Caller stored a plain string (or something else) under
		// "class"; emit it with the generic conversion.
		return formatAttrValue(value), true
	}
	if s.Len() == 0 {
		return "", false
	}
	return s.String(), true
}

// The fragment type is structural to the tree model: the empty name is
// reserved for it and the parser seeds its stack with one. It is
// registered here rather than by the catalog so the core is usable
// without one.
func init() {
	RegisterElement("", false)
}
