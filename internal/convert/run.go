package convert

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/medtab/internal/medline"
	"github.com/hyperifyio/medtab/internal/source"
	"github.com/hyperifyio/medtab/internal/tabular"
)

// ErrNoInputs is returned when a run is started without input files.
var ErrNoInputs = errors.New("convert: no input files")

// Run flattens every input file and writes one table. Inputs concatenate in
// argument order. The first file that fails to parse aborts the run with no
// partial output.
func Run(cfg Config) error {
	if err := ValidateConfig(cfg); err != nil {
		return err
	}
	opts := engineOptions(cfg)

	var records []medline.Record
	var grants []medline.Grant
	for _, path := range cfg.Inputs {
		start := time.Now()
		doc, err := source.Load(path)
		if err != nil {
			log.Error().Err(err).Str("path", path).Msg("input rejected")
			return err
		}
		if cfg.Grants {
			batch := medline.ParseGrants(doc)
			grants = append(grants, batch...)
			log.Info().Str("path", path).Int("grants", len(batch)).
				Dur("took", time.Since(start)).Msg("flattened grants")
			continue
		}
		batch := medline.Parse(doc, opts)
		if len(batch) == 0 {
			log.Warn().Str("path", path).Msg("document has no citations")
		}
		deleted := 0
		for _, r := range batch {
			if r.Delete {
				deleted++
			}
		}
		records = append(records, batch...)
		log.Info().Str("path", path).Int("citations", len(batch)-deleted).
			Int("deleted", deleted).Dur("took", time.Since(start)).
			Msg("flattened citations")
	}

	out, closeOut, err := openOutput(cfg.Output)
	if err != nil {
		return err
	}
	defer closeOut()

	if cfg.Grants {
		if cfg.Format == FormatJSONL {
			err = tabular.WriteGrantsJSONL(out, grants)
		} else {
			err = tabular.WriteGrantsCSV(out, grants)
		}
	} else {
		if cfg.Format == FormatJSONL {
			err = tabular.WriteRecordsJSONL(out, records)
		} else {
			err = tabular.WriteRecordsCSV(out, records)
		}
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if cfg.Output != "" && cfg.Output != "-" {
		log.Info().Str("out", cfg.Output).Msg("wrote output")
	}
	return nil
}

// openOutput resolves the destination writer. "-" and the empty path mean
// stdout, which must not be closed.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}
