package htmlcomp

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// ClassSet is an unordered set of class tokens. It is the value type of
// the canonical "class" attribute: parsing splits the wire string on
// whitespace, and serialization emits the tokens sorted lexicographically
// regardless of insertion order.
type ClassSet map[string]struct{}

// NewClassSet returns a ClassSet containing the given tokens.
func NewClassSet(tokens ...string) ClassSet {
	s := make(ClassSet, len(tokens))
	s.Add(tokens...)
	return s
}

// Add inserts tokens into the set. Empty tokens are ignored.
func (s ClassSet) Add(tokens ...string) {
	for _, t := range tokens {
		if t != "" {
			s[t] = struct{}{}
		}
	}
}

// Remove deletes tokens from the set.
func (s ClassSet) Remove(tokens ...string) {
	for _, t := range tokens {
		delete(s, t)
	}
}

// Has reports whether the set contains the token.
func (s ClassSet) Has(token string) bool {
	_, ok := s[token]
	return ok
}

// Len returns the number of tokens in the set.
func (s ClassSet) Len() int {
	return len(s)
}

// Copy returns a copy of the set.
func (s ClassSet) Copy() ClassSet {
	out := make(ClassSet, len(s))
	for t := range s {
		out[t] = struct{}{}
	}
	return out
}

// Equal reports whether both sets contain the same tokens.
func (s ClassSet) Equal(other ClassSet) bool {
	if len(s) != len(other) {
		return false
	}
	for t := range s {
		if _, ok := other[t]; !ok {
			return false
		}
	}
	return true
}

// String returns the tokens joined by single spaces in sorted order.
func (s ClassSet) String() string {
	tokens := make([]string, 0, len(s))
	for t := range s {
		tokens = append(tokens, t)
	}
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// Attrs is an insertion-ordered mapping from canonical attribute name to
// value. Values are typically strings, but registered attribute parsers
// may produce richer types such as ClassSet.
//
// Setting an existing key replaces its value and moves the key to the
// end of the order, so emission order tracks the most recent write. This
// is what keeps parsed markup round-trip stable: type defaults are
// written first and any attribute present in the source displaces them
// in source order.
type Attrs struct {
	keys   []string
	values map[string]any
}

// NewAttrs returns an empty attribute mapping.
func NewAttrs() *Attrs {
	return &Attrs{values: make(map[string]any)}
}

// Len returns the number of attributes.
func (a *Attrs) Len() int {
	return len(a.keys)
}

// Get returns the value for key and whether it is present.
func (a *Attrs) Get(key string) (any, bool) {
	v, ok := a.values[key]
	return v, ok
}

// Has reports whether key is present.
func (a *Attrs) Has(key string) bool {
	_, ok := a.values[key]
	return ok
}

// Set stores value under key. An existing key is moved to the end of the
// iteration order.
func (a *Attrs) Set(key string, value any) {
	if _, ok := a.values[key]; ok {
		a.deleteKey(key)
	}
	a.keys = append(a.keys, key)
	a.values[key] = value
}

// Del removes key and reports whether it was present.
func (a *Attrs) Del(key string) bool {
	if _, ok := a.values[key]; !ok {
		return false
	}
	a.deleteKey(key)
	delete(a.values, key)
	return true
}

func (a *Attrs) deleteKey(key string) {
	for i, k := range a.keys {
		if k == key {
			a.keys = append(a.keys[:i], a.keys[i+1:]...)
			return
		}
	}
}

// Keys returns the attribute names in iteration order.
func (a *Attrs) Keys() []string {
	out := make([]string, len(a.keys))
	copy(out, a.keys)
	return out
}

// Copy returns a shallow copy: the ordering and mapping are duplicated,
// the values are not.
func (a *Attrs) Copy() *Attrs {
	out := &Attrs{
		keys:   make([]string, len(a.keys)),
		values: make(map[string]any, len(a.values)),
	}
	copy(out.keys, a.keys)
	for k, v := range a.values {
		out.values[k] = v
	}
	return out
}

// Merge applies every entry of other in order, last write wins per key.
func (a *Attrs) Merge(other *Attrs) {
	if other == nil {
		return
	}
	for _, k := range other.keys {
		a.Set(k, other.values[k])
	}
}

// Equal reports whether both mappings hold the same keys and values.
// Ordering is not significant.
func (a *Attrs) Equal(other *Attrs) bool {
	if a == nil || other == nil {
		return a == other
	}
	if len(a.keys) != len(other.keys) {
		return false
	}
	for k, v := range a.values {
		ov, ok := other.values[k]
		if !ok || !attrValueEqual(v, ov) {
			return false
		}
	}
	return true
}

// String returns a debug representation in iteration order.
func (a *Attrs) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range a.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %v", k, a.values[k])
	}
	b.WriteByte('}')
	return b.String()
}

// attrValueEqual compares two attribute values, treating ClassSet as a
// set rather than a map with ordering assumptions.
func attrValueEqual(x, y any) bool {
	if xs, ok := x.(ClassSet); ok {
		ys, ok := y.(ClassSet)
		return ok && xs.Equal(ys)
	}
	return reflect.DeepEqual(x, y)
}

// goKeywords is the Go keyword set used by attribute name escaping.
var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true,
	"continue": true, "default": true, "defer": true, "else": true,
	"fallthrough": true, "for": true, "func": true, "go": true,
	"goto": true, "if": true, "import": true, "interface": true,
	"map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true,
	"var": true,
}

// CanonicalAttrName converts an external attribute name to its internal
// form: lowercase, hyphens replaced with underscores, and names that
// collide with Go keywords prefixed with an underscore. The label "for"
// attribute is therefore addressed as "_for", and "accept-charset" as
// "accept_charset".
func CanonicalAttrName(name string) string {
	name = strings.ReplaceAll(strings.ToLower(name), "-", "_")
	if goKeywords[name] {
		name = "_" + name
	}
	return name
}

// ExternalAttrName reverses CanonicalAttrName for serialization:
// the keyword escape prefix is removed and underscores become hyphens.
func ExternalAttrName(name string) string {
	if strings.HasPrefix(name, "_") && goKeywords[name[1:]] {
		name = name[1:]
	}
	return strings.ReplaceAll(name, "_", "-")
}
