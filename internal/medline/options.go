package medline

import "github.com/hyperifyio/medtab/internal/xmltext"

// Options steer how citations are flattened. The zero value is NOT the
// default configuration; call DefaultOptions and adjust from there.
type Options struct {
	// YearInfoOnly reduces every publication date to its year. When false
	// the date keeps month and day where the source provides them.
	YearInfoOnly bool

	// NLMCategory labels structured abstract sections with the NlmCategory
	// attribute instead of the free-form Label attribute.
	NLMCategory bool

	// IncludeSections prefixes each structured abstract section with its
	// label, "LABEL: text", instead of concatenating bare section texts.
	IncludeSections bool

	// Subscript and Superscript replace <sub> and <sup> markup inside
	// titles and abstracts with open/close marker pairs. A nil marker pair
	// unwraps the tag, keeping only its text.
	Subscript   *xmltext.Markers
	Superscript *xmltext.Markers

	// Workers caps the number of citations flattened concurrently by
	// Parse. Values below 1 mean sequential.
	Workers int
}

// DefaultOptions returns the baseline configuration: year-only dates,
// Label-attribute section names, no section labels in abstracts, sub/sup
// markup unwrapped, sequential parsing.
func DefaultOptions() Options {
	return Options{YearInfoOnly: true}
}
