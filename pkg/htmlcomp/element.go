package htmlcomp

import (
	"fmt"
	"strings"
)

// Attr is a single attribute argument for New and Add. Keys are
// canonicalized with CanonicalAttrName when applied, so external names
// like "accept-charset" and "for" may be used directly.
type Attr struct {
	Key   string
	Value any
}

// Element is a tree node: a registered type name, an ordered attribute
// mapping, and an ordered child sequence. Children are *Element values
// or opaque leaves (conventionally strings). The zero value is not
// usable; construct elements with New, MustNew, or Fragment.
type Element struct {
	// Name is the type-descriptor key this element currently behaves
	// as. The empty string is the fragment type.
	Name string

	// Attrs holds the element's attributes under canonical names.
	Attrs *Attrs

	// Children is the ordered child sequence.
	Children []any
}

// New constructs an element of the named type. The attributes start
// from the type's defaults, then args are applied as by Add. It fails
// with *UnknownTypeError if the name is not registered.
func New(name string, args ...any) (*Element, error) {
	t, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	return newOfType(t, args), nil
}

// MustNew is New but panics on an unregistered name. It is intended for
// constructor tables over names whose registration is guaranteed, such
// as the standard tag catalog.
func MustNew(name string, args ...any) *Element {
	e, err := New(name, args...)
	if err != nil {
		panic(err)
	}
	return e
}

// Fragment constructs a fragment element: a structural grouping node
// with no tag of its own in serialized output.
func Fragment(args ...any) *Element {
	return MustNew("", args...)
}

// newOfType constructs an element for an already-resolved type.
func newOfType(t Type, args []any) *Element {
	e := &Element{
		Name:  t.Name,
		Attrs: t.DefaultAttrs(),
	}
	return e.Add(args...)
}

// Add is the sole mutation primitive: it appends child arguments to the
// existing child sequence and merges attribute arguments into the
// mapping key-by-key, last write wins. It returns the receiver for
// chaining.
//
// Arguments are interpreted by type: Attr and []Attr set attributes;
// *Element, string, and any other value become children; []any splices
// its entries in as children; nil is ignored.
func (e *Element) Add(args ...any) *Element {
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			e.Attrs.Set(CanonicalAttrName(v.Key), v.Value)
		case []Attr:
			for _, a := range v {
				e.Attrs.Set(CanonicalAttrName(a.Key), a.Value)
			}
		case *Element:
			if v != nil {
				e.Children = append(e.Children, v)
			}
		case []any:
			for _, c := range v {
				if c != nil {
					e.Children = append(e.Children, c)
				}
			}
		default:
			e.Children = append(e.Children, arg)
		}
	}
	return e
}

// Copy returns a shallow copy: the same type name, a copy of the
// ordered attribute mapping (values are not cloned), and the same child
// references.
func (e *Element) Copy() *Element {
	out := &Element{
		Name:     e.Name,
		Attrs:    e.Attrs.Copy(),
		Children: make([]any, len(e.Children)),
	}
	copy(out.Children, e.Children)
	return out
}

// IsFragment reports whether this element is the fragment type.
func (e *Element) IsFragment() bool {
	return e.Name == ""
}

// Attr returns the attribute stored under the canonical key and whether
// it is present.
func (e *Element) Attr(key string) (any, bool) {
	return e.Attrs.Get(key)
}

// HasAttr reports whether the canonical key is present.
func (e *Element) HasAttr(key string) bool {
	return e.Attrs.Has(key)
}

// SetAttr stores value under the canonical key.
func (e *Element) SetAttr(key string, value any) {
	e.Attrs.Set(key, value)
}

// DelAttr removes the canonical key and reports whether it was present.
func (e *Element) DelAttr(key string) bool {
	return e.Attrs.Del(key)
}

// Len returns the number of children.
func (e *Element) Len() int {
	return len(e.Children)
}

// Child returns the child at index i. Negative indices count from the
// end. An out-of-range index panics: child access is positional, and a
// bad index is a caller programming error.
func (e *Element) Child(i int) any {
	return e.Children[e.childIndex(i)]
}

// SetChild replaces the child at index i.
func (e *Element) SetChild(i int, v any) {
	e.Children[e.childIndex(i)] = v
}

// RemoveChild deletes the child at index i.
func (e *Element) RemoveChild(i int) {
	i = e.childIndex(i)
	e.Children = append(e.Children[:i], e.Children[i+1:]...)
}

// Slice returns a copy of the child range [i, j). Negative bounds count
// from the end; out-of-range bounds panic.
func (e *Element) Slice(i, j int) []any {
	n := len(e.Children)
	if i < 0 {
		i += n
	}
	if j < 0 {
		j += n
	}
	if i < 0 || j > n || i > j {
		panic(fmt.Sprintf("htmlcomp: child range [%d:%d] out of range with %d children", i, j, n))
	}
	out := make([]any, j-i)
	copy(out, e.Children[i:j])
	return out
}

func (e *Element) childIndex(i int) int {
	n := len(e.Children)
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		panic(fmt.Sprintf("htmlcomp: child index %d out of range with %d children", i, n))
	}
	return i
}

// Equal reports deep structural equality: type name, attribute mapping,
// and child sequence, recursing into child elements. Attribute order is
// not significant.
func (e *Element) Equal(other *Element) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Name != other.Name || !e.Attrs.Equal(other.Attrs) {
		return false
	}
	if len(e.Children) != len(other.Children) {
		return false
	}
	for i, c := range e.Children {
		if !childEqual(c, other.Children[i]) {
			return false
		}
	}
	return true
}

func childEqual(x, y any) bool {
	xe, xok := x.(*Element)
	ye, yok := y.(*Element)
	if xok || yok {
		return xok && yok && xe.Equal(ye)
	}
	return attrValueEqual(x, y)
}

// ShallowNormalize cleans up the direct children: fragment children are
// replaced by their own children (spliced in place), empty strings are
// dropped, and adjacent strings are concatenated after flattening.
// Other children pass through unchanged and are not recursed into.
func (e *Element) ShallowNormalize() {
	flattened := make([]any, 0, len(e.Children))
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok && el.IsFragment() {
			flattened = append(flattened, el.Children...)
		} else {
			flattened = append(flattened, c)
		}
	}

	normalized := flattened[:0]
	for _, c := range flattened {
		s, isString := c.(string)
		if !isString {
			normalized = append(normalized, c)
			continue
		}
		if s == "" {
			continue
		}
		if n := len(normalized); n > 0 {
			if prev, ok := normalized[n-1].(string); ok {
				normalized[n-1] = prev + s
				continue
			}
		}
		normalized = append(normalized, s)
	}

	e.Children = normalized
}

// Normalize applies ShallowNormalize to every element in the subtree,
// bottom-up, finishing with e itself.
func (e *Element) Normalize() {
	for _, c := range e.Children {
		if el, ok := c.(*Element); ok {
			el.Normalize()
		}
	}
	e.ShallowNormalize()
}

// GoString returns a constructor-style debug representation.
func (e *Element) GoString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Element(%q", e.Name)
	if e.Attrs.Len() > 0 {
		fmt.Fprintf(&b, ", %s", e.Attrs)
	}
	b.WriteByte(')')
	if len(e.Children) > 0 {
		b.WriteByte('[')
		for i, c := range e.Children {
			if i > 0 {
				b.WriteString(", ")
			}
			if el, ok := c.(*Element); ok {
				b.WriteString(el.GoString())
			} else {
				fmt.Fprintf(&b, "%#v", c)
			}
		}
		b.WriteByte(']')
	}
	return b.String()
}
