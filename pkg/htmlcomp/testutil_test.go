package htmlcomp

import "sync"

// The core package carries no tag catalog of its own, so tests register
// the handful of standard elements they exercise.
var registerTestTypesOnce sync.Once

func registerTestTypes() {
	registerTestTypesOnce.Do(func() {
		for _, name := range []string{
			"div", "p", "span", "strong", "em", "blockquote",
			"ul", "ol", "li", "table", "tr", "td", "label", "input",
		} {
			RegisterElement(name, false)
		}
		for _, name := range []string{"img", "br", "hr"} {
			RegisterElement(name, true)
		}
	})
}

func mustParse(t interface{ Fatalf(string, ...any) }, data string) *Element {
	root, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", data, err)
	}
	return root
}
