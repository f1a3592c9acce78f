package xmltext

import (
	"strings"

	"github.com/beevik/etree"
)

// Markers is an open/close bracket pair substituted for subscript or
// superscript tags while flattening, e.g. {"_{", "}"} to keep TeX-style
// subscripts readable in plain text.
type Markers struct {
	Open  string
	Close string
}

// Flatten collapses a subtree into the concatenation of its text nodes in
// document order: the element's own text, its descendants' text, and the
// tails between them, but not the element's own tail.
//
// When a sub or sup marker pair is supplied, the subtree is re-serialized to
// markup, the literal <sub>/</sub> and <sup>/</sup> tags are replaced by the
// pair's open/close strings, and the result is re-parsed before collecting
// text. A nil pair alongside a non-nil one unwraps that tag silently (text
// kept, tag dropped). Substituting on the serialized form keeps tag
// boundaries from ever splitting multi-byte text.
//
// Flatten is total: a nil element yields "", and markers that break
// re-parsing fall back to the plain concatenation with tags unwrapped.
func Flatten(el *etree.Element, sub, sup *Markers) string {
	if el == nil {
		return ""
	}
	if sub == nil && sup == nil {
		return allText(el)
	}

	doc := etree.NewDocument()
	doc.SetRoot(el.Copy())
	markup, err := doc.WriteToString()
	if err != nil {
		return allText(el)
	}
	markup = substituteTag(markup, "sub", sub)
	markup = substituteTag(markup, "sup", sup)

	reparsed := etree.NewDocument()
	if err := reparsed.ReadFromString(markup); err != nil || reparsed.Root() == nil {
		// Marker text made the markup unparsable (or removed the root
		// element entirely); keep the text rather than failing.
		return allText(el)
	}
	return allText(reparsed.Root())
}

// substituteTag replaces the literal open and close tags of name with the
// marker pair. Tags carrying attributes, or serialized self-closed, do not
// match and are left for the re-parse to unwrap.
func substituteTag(markup, name string, m *Markers) string {
	var open, close string
	if m != nil {
		open, close = m.Open, m.Close
	}
	markup = strings.ReplaceAll(markup, "<"+name+">", open)
	return strings.ReplaceAll(markup, "</"+name+">", close)
}

// allText walks the subtree with an explicit stack and concatenates every
// character-data token in document order.
func allText(el *etree.Element) string {
	var b strings.Builder
	stack := make([]etree.Token, 0, len(el.Child))
	for i := len(el.Child) - 1; i >= 0; i-- {
		stack = append(stack, el.Child[i])
	}
	for len(stack) > 0 {
		tok := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		switch t := tok.(type) {
		case *etree.CharData:
			b.WriteString(t.Data)
		case *etree.Element:
			for i := len(t.Child) - 1; i >= 0; i-- {
				stack = append(stack, t.Child[i])
			}
		}
	}
	return b.String()
}

// TextNodes returns the direct character-data children of el, in order,
// without descending into child elements.
func TextNodes(el *etree.Element) []string {
	if el == nil {
		return nil
	}
	var nodes []string
	for _, tok := range el.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			nodes = append(nodes, cd.Data)
		}
	}
	return nodes
}

// FlattenAffiliation flattens an affiliation subtree into a single line:
// text and tail fragments are collected in document order, empties are
// filtered, and the rest are joined with single spaces. The text of childless
// label and sup elements is skipped (their tails are kept) so footnote
// markers do not leak into the affiliation string.
//
// The traversal keeps an explicit stack; affiliations in the wild nest deeply
// enough that recursion depth must not track document depth.
func FlattenAffiliation(el *etree.Element) string {
	if el == nil {
		return ""
	}
	type item struct {
		el   *etree.Element
		text string
	}
	var parts []string
	stack := []item{{el: el}}
	for len(stack) > 0 {
		it := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if it.el == nil {
			if it.text != "" {
				parts = append(parts, it.text)
			}
			continue
		}
		e := it.el
		children := e.ChildElements()
		expanded := make([]item, 0, len(children)+2)
		if len(children) == 0 {
			if e.Tag != "label" && e.Tag != "sup" {
				expanded = append(expanded, item{text: e.Text()})
			}
			expanded = append(expanded, item{text: e.Tail()})
		} else {
			expanded = append(expanded, item{text: e.Text()})
			for _, c := range children {
				expanded = append(expanded, item{el: c})
			}
			expanded = append(expanded, item{text: e.Tail()})
		}
		for i := len(expanded) - 1; i >= 0; i-- {
			stack = append(stack, expanded[i])
		}
	}
	return strings.TrimSpace(strings.Join(parts, " "))
}
