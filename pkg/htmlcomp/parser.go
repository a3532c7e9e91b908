package htmlcomp

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ParserConfig configures tag-mismatch recovery.
type ParserConfig struct {
	// Lenient enables HTML5-like recovery: an end tag implicitly
	// closes any intervening open elements until a matching start tag
	// is found. The default (strict) policy rejects any mismatched end
	// tag. Under both policies an end tag with no matching start tag
	// and unclosed tags at end of input are parse errors.
	Lenient bool
}

// Parser builds element trees from HTML text. It is a single-pass,
// stack-based consumer of the html tokenizer's event stream; the stack
// is seeded with one implicit root fragment that receives the parsed
// top-level nodes. A Parser may be reused; each Parse call starts fresh.
type Parser struct {
	config ParserConfig
	root   *Element
	stack  []*Element
}

// NewParser creates a Parser with the given configuration.
func NewParser(config ParserConfig) *Parser {
	return &Parser{config: config}
}

// Parse reads HTML text with the default strict configuration and
// returns the parsed nodes in a fragment.
func Parse(data string) (*Element, error) {
	return NewParser(ParserConfig{}).Parse(strings.NewReader(data))
}

// Parse consumes r to the end and returns the root fragment. On any
// *ParseError the input is rejected as a whole; no partial tree is
// returned.
func (p *Parser) Parse(r io.Reader) (*Element, error) {
	p.root = Fragment()
	p.stack = p.stack[:0]
	p.stack = append(p.stack, p.root)

	z := html.NewTokenizer(r)
	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return nil, &ParseError{Message: err.Error(), Wrapped: err}
			}
			return p.finish()

		case html.TextToken:
			p.top().Add(string(z.Text()))

		case html.StartTagToken:
			tok := z.Token()
			if err := p.openTag(tok.Data, tok.Attr, false); err != nil {
				return nil, err
			}

		case html.SelfClosingTagToken:
			tok := z.Token()
			if err := p.openTag(tok.Data, tok.Attr, true); err != nil {
				return nil, err
			}

		case html.EndTagToken:
			name, _ := z.TagName()
			if err := p.closeTag(string(name)); err != nil {
				return nil, err
			}

		case html.CommentToken, html.DoctypeToken:
			// Passed over: comment and doctype semantics are out of
			// scope for the tree model.
		}
	}
}

func (p *Parser) top() *Element {
	return p.stack[len(p.stack)-1]
}

// openTag resolves the tag's type, parses its attributes, and attaches
// a new element at the insertion point. Non-void elements are pushed
// unless the tag was self-closed: an erroneous self-close on a non-void
// element is tolerated and closes the element immediately.
func (p *Parser) openTag(tag string, rawAttrs []html.Attribute, selfClosing bool) error {
	t, err := Lookup(tag)
	if err != nil {
		return &ParseError{
			Message: fmt.Sprintf("unregistered element %q", tag),
			Wrapped: err,
		}
	}

	el := newOfType(t, nil)
	for _, a := range rawAttrs {
		key := CanonicalAttrName(a.Key)
		var value any = a.Val
		if parse, ok := t.ParseAttrs[key]; ok {
			value = parse(a.Val)
		}
		el.Attrs.Set(key, value)
	}

	p.top().Add(el)
	if !t.Void && !selfClosing {
		p.stack = append(p.stack, el)
	}
	return nil
}

// closeTag matches an end tag against the open-element stack.
func (p *Parser) closeTag(tag string) error {
	if p.config.Lenient {
		// Implicitly close any open elements that don't match, then
		// close the matching one. The root fragment never matches.
		for i := len(p.stack) - 1; i > 0; i-- {
			if p.stack[i].Name == tag {
				p.stack = p.stack[:i]
				return nil
			}
		}
		return &ParseError{
			Message: fmt.Sprintf("end tag %q has no matching start tag", tag),
		}
	}

	top := p.top()
	if top == p.root {
		return &ParseError{
			Message: fmt.Sprintf("end tag %q has no matching start tag", tag),
		}
	}
	if top.Name != tag {
		return &ParseError{
			Message: fmt.Sprintf("end tag %q does not match start tag %q", tag, top.Name),
		}
	}
	p.stack = p.stack[:len(p.stack)-1]
	return nil
}

// finish validates that only the implicit root remains open.
func (p *Parser) finish() (*Element, error) {
	if unclosed := len(p.stack) - 1; unclosed > 0 {
		return nil, &ParseError{
			Message:  fmt.Sprintf("%d unclosed tag(s)", unclosed),
			Unclosed: unclosed,
		}
	}
	return p.root, nil
}
