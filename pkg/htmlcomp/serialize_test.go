package htmlcomp

import (
	"fmt"
	"strings"
	"testing"
)

// roundTrip asserts that parsing html and re-serializing it yields the
// identical string.
func roundTrip(t *testing.T, html string) {
	t.Helper()
	root := mustParse(t, html)
	got, err := String(root)
	if err != nil {
		t.Fatalf("String() unexpected error: %v", err)
	}
	if got != html {
		t.Errorf("round trip:\n got %q\nwant %q", got, html)
	}
}

func TestRoundTrip(t *testing.T) {
	registerTestTypes()

	tests := []struct {
		name string
		html string
	}{
		{"div with attributes", `<div id="greeting" class="apple banana">Hello, <strong>world</strong>!</div>`},
		{"void element", `<div>Look, <img src="apple.png" alt="Photo of a green apple"> apple!</div>`},
		{"nested lists", `<ul><li>cat</li><li>dog</li></ul>`},
		{"top-level siblings", `<p>one</p>two<p>three</p>`},
		{"keyword attribute", `<label for="name">Name</label>`},
		{"hyphenated attribute", `<div data-id="123">x</div>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			roundTrip(t, tt.html)
		})
	}
}

func TestSerializeVoidElement(t *testing.T) {
	registerTestTypes()

	got, err := String(Fragment(MustNew("div", "Look, ", MustNew("img", Attr{Key: "src", Value: "x.png"}), " z!")))
	if err != nil {
		t.Fatal(err)
	}
	if got != `<div>Look, <img src="x.png"> z!</div>` {
		t.Errorf("got %q", got)
	}
	if strings.Contains(got, "</img>") {
		t.Error("void element must not have a closing tag")
	}
}

func TestSerializeSelfClosedVoidNormalizes(t *testing.T) {
	registerTestTypes()

	root := mustParse(t, `<div>a <img src="b.png"/> c</div>`)
	got, err := String(root)
	if err != nil {
		t.Fatal(err)
	}
	if got != `<div>a <img src="b.png"> c</div>` {
		t.Errorf("got %q", got)
	}
}

func TestSerializeClassSorted(t *testing.T) {
	registerTestTypes()

	el := MustNew("div", Attr{Key: "class", Value: NewClassSet("banana", "apple", "cherry")})
	got, err := String(el)
	if err != nil {
		t.Fatal(err)
	}
	if got != `<div class="apple banana cherry"></div>` {
		t.Errorf("got %q", got)
	}
}

func TestSerializeEmptyClassOmitted(t *testing.T) {
	registerTestTypes()

	got, err := String(MustNew("div", "x"))
	if err != nil {
		t.Fatal(err)
	}
	if got != `<div>x</div>` {
		t.Errorf("default empty class set should not be emitted: %q", got)
	}
}

func TestSerializeFragmentRootSuppressed(t *testing.T) {
	registerTestTypes()

	got, err := String(Fragment(MustNew("p", "a"), MustNew("p", "b")))
	if err != nil {
		t.Fatal(err)
	}
	if got != `<p>a</p><p>b</p>` {
		t.Errorf("got %q", got)
	}
}

func TestSerializeEscaping(t *testing.T) {
	registerTestTypes()

	el := MustNew("p",
		Attr{Key: "title", Value: `a "quoted" <value>`},
		"1 < 2 & 3 > 2",
	)
	got, err := String(el)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(got, `title="a &quot;quoted&quot; &lt;value&gt;"`) {
		t.Errorf("attribute not escaped: %q", got)
	}
	if !strings.Contains(got, "1 &lt; 2 &amp; 3 &gt; 2") {
		t.Errorf("text not escaped: %q", got)
	}
}

func TestSerializeAttrNameExternalized(t *testing.T) {
	registerTestTypes()

	el := MustNew("label", Attr{Key: "for", Value: "name"}, Attr{Key: "data-x", Value: "1"})
	got, err := String(el)
	if err != nil {
		t.Fatal(err)
	}
	if got != `<label for="name" data-x="1"></label>` {
		t.Errorf("got %q", got)
	}
}

func TestSerializeVoidWithChildrenFails(t *testing.T) {
	registerTestTypes()

	img := MustNew("img")
	img.Children = append(img.Children, "illegal")

	if err := WriteHTML(&strings.Builder{}, img); err == nil {
		t.Error("void element with children should fail to serialize")
	}
}

func TestSerializeOpaqueLeaf(t *testing.T) {
	registerTestTypes()

	got, err := String(MustNew("p", 42))
	if err != nil {
		t.Fatal(err)
	}
	if got != `<p>42</p>` {
		t.Errorf("got %q", got)
	}
}

func TestStringRendersComponents(t *testing.T) {
	registerTestTypes()
	RegisterComponent("orderedlist", func(children []any, attrs *Attrs) (any, error) {
		v, ok := attrs.Get("items")
		if !ok {
			return nil, fmt.Errorf("orderedlist: items attribute required")
		}
		ol := MustNew("ol")
		for _, k := range attrs.Keys() {
			if k == "items" {
				continue
			}
			value, _ := attrs.Get(k)
			ol.Attrs.Set(k, value)
		}
		for _, item := range strings.Split(v.(string), ",") {
			ol.Add(MustNew("li", item))
		}
		return ol, nil
	})

	root := mustParse(t, `<orderedlist items="alpha,beta,gamma" id="greek-letters"/>`)
	got, err := String(root)
	if err != nil {
		t.Fatal(err)
	}
	want := `<ol id="greek-letters"><li>alpha</li><li>beta</li><li>gamma</li></ol>`
	if got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestWriteHTMLUnknownType(t *testing.T) {
	registerTestTypes()

	el := MustNew("div")
	el.Name = "ghosttag"
	if err := WriteHTML(&strings.Builder{}, el); err == nil {
		t.Error("serializing an unregistered type should fail")
	}
}
