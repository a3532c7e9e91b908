package htmlcomp

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// String renders e and returns the resulting HTML text. A fragment root
// contributes no tags of its own, so only its children's markup
// appears.
func String(e *Element) (string, error) {
	rendered, err := Render(e)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	if err := WriteHTML(&b, rendered); err != nil {
		return "", err
	}
	return b.String(), nil
}

// WriteHTML emits an already-rendered tree as HTML text. Component
// elements still present in the tree fail with *UnknownTypeError only
// if unregistered; a registered component is emitted as a plain tag, so
// callers normally pass trees through Render (or use String) first.
func WriteHTML(w io.Writer, e *Element) error {
	t, err := Lookup(e.Name)
	if err != nil {
		return err
	}

	if e.IsFragment() {
		return writeChildren(w, e)
	}

	if _, err := fmt.Fprintf(w, "<%s", e.Name); err != nil {
		return err
	}
	if err := writeAttrs(w, t, e.Attrs); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}

	if t.Void {
		if len(e.Children) > 0 {
			return fmt.Errorf("htmlcomp: void element %q has %d children", e.Name, len(e.Children))
		}
		return nil
	}

	if err := writeChildren(w, e); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "</%s>", e.Name)
	return err
}

// writeAttrs emits the attributes in iteration order, applying the
// type's formatter per key when one exists. A formatter declining
// (ok=false) drops the attribute entirely. Canonical names are mapped
// back to their external form.
func writeAttrs(w io.Writer, t Type, attrs *Attrs) error {
	for _, key := range attrs.Keys() {
		value, _ := attrs.Get(key)

		var wire string
		if format, ok := t.FormatAttrs[key]; ok {
			s, keep := format(value)
			if !keep {
				continue
			}
			wire = s
		} else {
			wire = formatAttrValue(value)
		}

		if _, err := fmt.Fprintf(w, ` %s="%s"`, ExternalAttrName(key), escapeAttr(wire)); err != nil {
			return err
		}
	}
	return nil
}

func writeChildren(w io.Writer, e *Element) error {
	for _, c := range e.Children {
		switch v := c.(type) {
		case *Element:
			if err := WriteHTML(w, v); err != nil {
				return err
			}
		case string:
			if _, err := io.WriteString(w, escapeHTML(v)); err != nil {
				return err
			}
		default:
			// Opaque leaves serialize through the generic string
			// conversion, escaped as text.
			if _, err := io.WriteString(w, escapeHTML(formatAttrValue(v))); err != nil {
				return err
			}
		}
	}
	return nil
}

// formatAttrValue is the generic value-to-wire-string conversion used
// when a type has no formatter for a key.
func formatAttrValue(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case ClassSet:
		return v.String()
	case bool:
		if v {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
