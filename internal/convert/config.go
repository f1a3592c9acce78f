package convert

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hyperifyio/medtab/internal/medline"
	"github.com/hyperifyio/medtab/internal/xmltext"
)

// Output format names accepted by Config.Format.
const (
	FormatCSV   = "csv"
	FormatJSONL = "jsonl"
)

// Config drives one conversion run: which files to flatten, where the rows
// go, and how the extraction engine is configured.
type Config struct {
	// Inputs are the MEDLINE XML files to flatten, processed in order.
	// Their records concatenate; nothing is merged or deduplicated.
	Inputs []string

	// Output is the destination path. Empty or "-" writes to stdout.
	Output string

	// Format selects the row serialization, FormatCSV or FormatJSONL.
	Format string

	// Grants switches the run from citation records to grant records.
	Grants bool

	// FullDates keeps month and day in publication dates instead of
	// reducing them to the year.
	FullDates bool

	// IncludeSections prefixes structured abstract sections with their
	// labels; NLMCategory draws those labels from the NlmCategory
	// attribute instead of Label.
	IncludeSections bool
	NLMCategory     bool

	// SubscriptMarkers and SuperscriptMarkers are "open,close" pairs
	// substituted for sub/sup markup in titles and abstracts. Empty means
	// unwrap the markup silently.
	SubscriptMarkers   string
	SuperscriptMarkers string

	// Workers caps concurrent per-citation flattening. 0 or 1 means
	// sequential.
	Workers int

	Verbose bool
}

// DefaultConfig returns the baseline run configuration: CSV on stdout,
// year-only dates, sequential.
func DefaultConfig() Config {
	return Config{Output: "-", Format: FormatCSV}
}

// ValidateConfig rejects configurations Run cannot act on.
func ValidateConfig(cfg Config) error {
	if len(cfg.Inputs) == 0 {
		return ErrNoInputs
	}
	if cfg.Format != FormatCSV && cfg.Format != FormatJSONL {
		return fmt.Errorf("config: unknown format %q (want %s or %s)", cfg.Format, FormatCSV, FormatJSONL)
	}
	if cfg.Workers < 0 {
		return errors.New("config: negative worker count")
	}
	if _, err := ParseMarkers(cfg.SubscriptMarkers); err != nil {
		return err
	}
	if _, err := ParseMarkers(cfg.SuperscriptMarkers); err != nil {
		return err
	}
	return nil
}

// ParseMarkers turns an "open,close" flag value into a marker pair. Empty
// input yields nil, which the flattener treats as unwrap-silently.
func ParseMarkers(s string) (*xmltext.Markers, error) {
	if s == "" {
		return nil, nil
	}
	open, close, ok := strings.Cut(s, ",")
	if !ok {
		return nil, fmt.Errorf("config: markers %q: want an open,close pair", s)
	}
	return &xmltext.Markers{Open: open, Close: close}, nil
}

// engineOptions maps the run configuration onto the extraction engine's
// options. ValidateConfig has already vetted the marker syntax.
func engineOptions(cfg Config) medline.Options {
	opts := medline.DefaultOptions()
	opts.YearInfoOnly = !cfg.FullDates
	opts.IncludeSections = cfg.IncludeSections
	opts.NLMCategory = cfg.NLMCategory
	opts.Subscript, _ = ParseMarkers(cfg.SubscriptMarkers)
	opts.Superscript, _ = ParseMarkers(cfg.SuperscriptMarkers)
	opts.Workers = cfg.Workers
	return opts
}
