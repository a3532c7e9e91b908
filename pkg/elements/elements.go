package elements

import (
	"sync"

	"github.com/justinyaodu/htmlcomp/pkg/htmlcomp"
)

// Type aliases so DSL call sites need only this package.
type Element = htmlcomp.Element
type Attr = htmlcomp.Attr

// allElements is the element list from the HTML spec:
// https://html.spec.whatwg.org/multipage/indices.html#elements-3
var allElements = []string{
	"a", "abbr", "address", "area", "article", "aside", "audio", "b", "base",
	"bdi", "bdo", "blockquote", "body", "br", "button", "canvas", "caption",
	"cite", "code", "col", "colgroup", "data", "datalist", "dd", "del",
	"details", "dfn", "dialog", "div", "dl", "dt", "em", "embed", "fieldset",
	"figcaption", "figure", "footer", "form", "h1", "h2", "h3", "h4", "h5",
	"h6", "head", "header", "hgroup", "hr", "html", "i", "iframe", "img",
	"input", "ins", "kbd", "label", "legend", "li", "link", "main", "map",
	"mark", "math", "menu", "meta", "meter", "nav", "noscript", "object", "ol",
	"optgroup", "option", "output", "p", "param", "picture", "pre", "progress",
	"q", "rp", "rt", "ruby", "s", "samp", "script", "section", "select",
	"slot", "small", "source", "span", "strong", "style", "sub", "summary",
	"sup", "svg", "table", "tbody", "td", "template", "textarea", "tfoot",
	"th", "thead", "time", "title", "tr", "track", "u", "ul", "var", "video",
	"wbr",
}

// voidElements is the void element list from the HTML spec:
// https://html.spec.whatwg.org/multipage/syntax.html#void-elements
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

var registerOnce sync.Once

// Register installs every standard element type into the htmlcomp
// registry. It is idempotent and must run before the first parse,
// render, or serialize call in the process.
func Register() {
	registerOnce.Do(func() {
		for _, name := range allElements {
			htmlcomp.RegisterElement(name, voidElements[name])
		}
	})
}

// IsVoidElement reports whether the standard tag is a void element.
func IsVoidElement(tag string) bool {
	return voidElements[tag]
}

// Names returns the standard element names in catalog order.
func Names() []string {
	out := make([]string, len(allElements))
	copy(out, allElements)
	return out
}
