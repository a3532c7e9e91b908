package htmlcomp

import (
	"errors"
	"testing"
)

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("nonexistent-element")
	if err == nil {
		t.Fatal("Lookup should fail for an unregistered name")
	}
	var ute *UnknownTypeError
	if !errors.As(err, &ute) {
		t.Fatalf("error type = %T, want *UnknownTypeError", err)
	}
	if ute.Name != "nonexistent-element" {
		t.Errorf("Name = %q", ute.Name)
	}
}

func TestRegisterLowercasesName(t *testing.T) {
	RegisterElement("MixedCase", false)

	typ, err := Lookup("mixedcase")
	if err != nil {
		t.Fatalf("Lookup(lowercase) failed: %v", err)
	}
	if typ.Name != "mixedcase" {
		t.Errorf("Name = %q, want %q", typ.Name, "mixedcase")
	}
	if _, err := Lookup("MIXEDCASE"); err != nil {
		t.Errorf("Lookup should be case-insensitive: %v", err)
	}
}

func TestRegisterInstallsClassCodecs(t *testing.T) {
	RegisterElement("codecprobe", false)
	typ, err := Lookup("codecprobe")
	if err != nil {
		t.Fatal(err)
	}

	parsed := typ.ParseAttrs["class"]("banana apple")
	set, ok := parsed.(ClassSet)
	if !ok {
		t.Fatalf("class parser produced %T, want ClassSet", parsed)
	}
	if set.String() != "apple banana" {
		t.Errorf("parsed class = %q", set.String())
	}

	if wire, keep := typ.FormatAttrs["class"](set); !keep || wire != "apple banana" {
		t.Errorf("formatted class = %q, keep=%v", wire, keep)
	}
	if _, keep := typ.FormatAttrs["class"](NewClassSet()); keep {
		t.Error("empty class set should be omitted")
	}

	attrs := typ.DefaultAttrs()
	v, ok := attrs.Get("class")
	if !ok {
		t.Fatal("default attrs should contain class")
	}
	if set, ok := v.(ClassSet); !ok || set.Len() != 0 {
		t.Errorf("default class = %v", v)
	}
}

func TestIsComponent(t *testing.T) {
	RegisterElement("plainprobe", false)
	RegisterComponent("compprobe", func(children []any, attrs *Attrs) (any, error) {
		return nil, nil
	})

	plain, _ := Lookup("plainprobe")
	comp, _ := Lookup("compprobe")
	if plain.IsComponent() {
		t.Error("plain element reported as component")
	}
	if !comp.IsComponent() {
		t.Error("component not reported as component")
	}
}

func TestFragmentRegisteredByCore(t *testing.T) {
	typ, err := Lookup("")
	if err != nil {
		t.Fatalf("fragment type not registered: %v", err)
	}
	if typ.Void || typ.IsComponent() {
		t.Errorf("fragment descriptor unexpected: %+v", typ)
	}
}
