package xmltext

import (
	"strings"
	"testing"

	"github.com/beevik/etree"
)

func mustParse(t *testing.T, markup string) *etree.Element {
	t.Helper()
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return doc.Root()
}

func TestFlatten_ConcatenatesInlineText(t *testing.T) {
	el := mustParse(t, `<ArticleTitle>Effects of <i>E. coli</i> on mice.</ArticleTitle>`)
	got := Flatten(el, nil, nil)
	if got != "Effects of E. coli on mice." {
		t.Fatalf("unexpected flatten result: %q", got)
	}
}

func TestFlatten_SubSupMarkers(t *testing.T) {
	el := mustParse(t, `<ArticleTitle>H<sub>2</sub>O and E=mc<sup>2</sup></ArticleTitle>`)
	sub := &Markers{Open: "_{", Close: "}"}
	sup := &Markers{Open: "^{", Close: "}"}
	got := Flatten(el, sub, sup)
	if got != "H_{2}O and E=mc^{2}" {
		t.Fatalf("expected bracketed sub/sup, got %q", got)
	}
}

func TestFlatten_SupOnlyUnwrapsSub(t *testing.T) {
	el := mustParse(t, `<ArticleTitle>H<sub>2</sub>O and E=mc<sup>2</sup></ArticleTitle>`)
	sup := &Markers{Open: "^{", Close: "}"}
	got := Flatten(el, nil, sup)
	if got != "H2O and E=mc^{2}" {
		t.Fatalf("expected sub unwrapped and sup bracketed, got %q", got)
	}
}

func TestFlatten_NoMarkersKeepsTextDropsTags(t *testing.T) {
	el := mustParse(t, `<ArticleTitle>H<sub>2</sub>O and E=mc<sup>2</sup></ArticleTitle>`)
	got := Flatten(el, nil, nil)
	if got != "H2O and E=mc2" {
		t.Fatalf("expected tags silently unwrapped, got %q", got)
	}
}

func TestFlatten_EntitiesSurviveRoundTrip(t *testing.T) {
	el := mustParse(t, `<ArticleTitle>AT&amp;T reports x<sub>i</sub> &lt; 1</ArticleTitle>`)
	sub := &Markers{Open: "_{", Close: "}"}
	got := Flatten(el, sub, nil)
	if got != "AT&T reports x_{i} < 1" {
		t.Fatalf("escaped entities mangled by round trip: %q", got)
	}
}

func TestFlatten_UnparsableMarkersFallBack(t *testing.T) {
	el := mustParse(t, `<ArticleTitle>H<sub>2</sub>O</ArticleTitle>`)
	sub := &Markers{Open: "<", Close: ">"}
	got := Flatten(el, sub, nil)
	if got != "H2O" {
		t.Fatalf("expected fallback to plain text, got %q", got)
	}
}

func TestFlatten_NilElement(t *testing.T) {
	if got := Flatten(nil, nil, nil); got != "" {
		t.Fatalf("expected empty string for nil element, got %q", got)
	}
}

func TestTextNodes_DirectChildrenOnly(t *testing.T) {
	el := mustParse(t, `<Title>Acta <i>Medica</i> Scandinavica</Title>`)
	got := TextNodes(el)
	want := []string{"Acta ", " Scandinavica"}
	if len(got) != len(want) {
		t.Fatalf("expected %d text nodes, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("text node %d: want %q, got %q", i, want[i], got[i])
		}
	}
}

func TestFlattenAffiliation_SkipsLabelAndSupText(t *testing.T) {
	el := mustParse(t, `<Affiliation><label>1</label>Department of Biology<sup>a</sup>, University of Helsinki, Finland.</Affiliation>`)
	got := FlattenAffiliation(el)
	want := "Department of Biology , University of Helsinki, Finland."
	if got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestFlattenAffiliation_SupWithChildrenKeepsText(t *testing.T) {
	// The label/sup skip applies only to childless elements.
	el := mustParse(t, `<Affiliation>X<sup>2<i>y</i></sup>Z</Affiliation>`)
	got := FlattenAffiliation(el)
	if got != "X 2 y Z" {
		t.Fatalf("want %q, got %q", "X 2 y Z", got)
	}
}

func TestFlattenAffiliation_DeepNesting(t *testing.T) {
	const depth = 4096
	var b strings.Builder
	b.WriteString("<Affiliation>")
	for i := 0; i < depth; i++ {
		b.WriteString("<d>")
	}
	b.WriteString("core")
	for i := 0; i < depth; i++ {
		b.WriteString("</d>")
	}
	b.WriteString("</Affiliation>")
	el := mustParse(t, b.String())
	if got := FlattenAffiliation(el); got != "core" {
		t.Fatalf("deep tree flatten: want %q, got %q", "core", got)
	}
}

func TestFlattenAffiliation_Nil(t *testing.T) {
	if got := FlattenAffiliation(nil); got != "" {
		t.Fatalf("expected empty string for nil element, got %q", got)
	}
}
