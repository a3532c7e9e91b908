package htmlcomp

import (
	"reflect"
	"testing"
)

func TestClassSetString(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"empty", nil, ""},
		{"single", []string{"apple"}, "apple"},
		{"sorted regardless of insertion order", []string{"banana", "apple"}, "apple banana"},
		{"duplicates collapse", []string{"a", "b", "a"}, "a b"},
		{"empty tokens ignored", []string{"", "x", ""}, "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewClassSet(tt.tokens...).String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClassSetOps(t *testing.T) {
	s := NewClassSet("a", "b")
	if !s.Has("a") || s.Has("c") {
		t.Errorf("Has() wrong membership: %v", s)
	}
	s.Add("c")
	s.Remove("a")
	if s.Has("a") || !s.Has("c") || s.Len() != 2 {
		t.Errorf("after Add/Remove: %v", s)
	}

	if !NewClassSet("x", "y").Equal(NewClassSet("y", "x")) {
		t.Error("Equal() should ignore order")
	}
	if NewClassSet("x").Equal(NewClassSet("x", "y")) {
		t.Error("Equal() should compare sizes")
	}

	c := s.Copy()
	c.Add("z")
	if s.Has("z") {
		t.Error("Copy() should not share storage")
	}
}

func TestAttrsOrdering(t *testing.T) {
	a := NewAttrs()
	a.Set("class", NewClassSet())
	a.Set("id", "greeting")
	a.Set("class", NewClassSet("apple"))

	// Overwriting moves the key to the end of the order.
	want := []string{"id", "class"}
	if got := a.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}

	if v, ok := a.Get("id"); !ok || v != "greeting" {
		t.Errorf("Get(id) = %v, %v", v, ok)
	}
	if _, ok := a.Get("missing"); ok {
		t.Error("Get(missing) should report absent")
	}
}

func TestAttrsDel(t *testing.T) {
	a := NewAttrs()
	a.Set("id", "x")
	a.Set("title", "y")

	if !a.Del("id") {
		t.Error("Del(id) should report present")
	}
	if a.Del("id") {
		t.Error("second Del(id) should report absent")
	}
	if a.Has("id") || !a.Has("title") || a.Len() != 1 {
		t.Errorf("after Del: keys %v", a.Keys())
	}
}

func TestAttrsMergeAndEqual(t *testing.T) {
	a := NewAttrs()
	a.Set("id", "x")
	a.Set("title", "t")

	b := NewAttrs()
	b.Set("title", "t2")
	b.Set("lang", "en")

	a.Merge(b)
	if v, _ := a.Get("title"); v != "t2" {
		t.Errorf("Merge should overwrite: title = %v", v)
	}
	if got := a.Keys(); !reflect.DeepEqual(got, []string{"id", "title", "lang"}) {
		t.Errorf("Keys() after merge = %v", got)
	}

	x := NewAttrs()
	x.Set("id", "g")
	x.Set("class", NewClassSet("a", "b"))
	y := NewAttrs()
	y.Set("class", NewClassSet("b", "a"))
	y.Set("id", "g")
	if !x.Equal(y) {
		t.Error("Equal() should ignore ordering and compare ClassSet as a set")
	}

	y.Set("id", "other")
	if x.Equal(y) {
		t.Error("Equal() should detect differing values")
	}
}

func TestCanonicalAttrName(t *testing.T) {
	tests := []struct {
		external string
		internal string
	}{
		{"id", "id"},
		{"class", "class"},
		{"accept-charset", "accept_charset"},
		{"data-id", "data_id"},
		{"http-equiv", "http_equiv"},
		{"for", "_for"},
		{"type", "_type"},
		{"default", "_default"},
		{"ID", "id"},
	}

	for _, tt := range tests {
		t.Run(tt.external, func(t *testing.T) {
			if got := CanonicalAttrName(tt.external); got != tt.internal {
				t.Errorf("CanonicalAttrName(%q) = %q, want %q", tt.external, got, tt.internal)
			}
		})
	}
}

func TestExternalAttrName(t *testing.T) {
	// Round trip through the canonical form.
	for _, name := range []string{"id", "class", "accept-charset", "for", "type", "data-id"} {
		if got := ExternalAttrName(CanonicalAttrName(name)); got != name {
			t.Errorf("ExternalAttrName(CanonicalAttrName(%q)) = %q", name, got)
		}
	}
}
