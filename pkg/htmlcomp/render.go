package htmlcomp

// DefaultRenderDepth is the expansion depth guard. Component chains (or
// trees) deeper than this fail with *RenderDepthError instead of
// recursing without bound. The engine performs no cycle detection
// beyond this: a transform that always substitutes is a programming
// error in the component, not a condition Render recovers from.
const DefaultRenderDepth = 1000

// Render recursively expands e into a concrete tree: one containing
// only non-substituting types. The input is not mutated; rendering
// copies on transform. The result is shallow-normalized at each level.
//
// For each element, the registered transform is invoked until it
// declines (returns nil): an element result restarts expansion on the
// substitute, any other non-nil result is wrapped as the single child
// of a fragment and treated as already concrete. Once a type declines,
// its element children are rendered in place within a shallow copy.
// Transform errors propagate unwrapped.
func Render(e *Element) (*Element, error) {
	return renderAtDepth(e, 0)
}

func renderAtDepth(e *Element, depth int) (*Element, error) {
	if depth >= DefaultRenderDepth {
		return nil, &RenderDepthError{Depth: DefaultRenderDepth}
	}

	t, err := Lookup(e.Name)
	if err != nil {
		return nil, err
	}

	if t.Transform != nil {
		substitute, err := t.Transform(e.Children, e.Attrs)
		if err != nil {
			return nil, err
		}
		switch v := substitute.(type) {
		case nil:
			// No further expansion; fall through to the children.
		case *Element:
			if v != nil {
				return renderAtDepth(v, depth+1)
			}
		default:
			// Non-element substitutes (typically text) are wrapped in
			// a fragment and not rendered further.
			return Fragment(v), nil
		}
	}

	rendered := e.Copy()
	for i, c := range rendered.Children {
		if el, ok := c.(*Element); ok {
			r, err := renderAtDepth(el, depth+1)
			if err != nil {
				return nil, err
			}
			rendered.Children[i] = r
		}
	}
	rendered.ShallowNormalize()
	return rendered, nil
}
