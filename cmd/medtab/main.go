package main

import (
	"flag"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/medtab/internal/convert"
)

func main() {
	// Logging setup
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		inputs      string
		outputPath  string
		format      string
		grants      bool
		fullDates   bool
		sections    bool
		nlmCategory bool
		subMarkers  string
		supMarkers  string
		workers     int
		configPath  string
		verbose     bool
	)

	flag.StringVar(&inputs, "input", os.Getenv("MEDTAB_INPUT"), "Comma-separated MEDLINE XML files (.xml or .xml.gz); positional arguments are appended")
	flag.StringVar(&outputPath, "output", "-", "Output path; '-' writes to stdout")
	flag.StringVar(&format, "format", convert.FormatCSV, "Output format: csv or jsonl")
	flag.BoolVar(&grants, "grants", false, "Emit grant records instead of citation records")
	flag.BoolVar(&fullDates, "dates.full", false, "Keep month and day in publication dates instead of year only")
	flag.BoolVar(&sections, "abstract.sections", false, "Prefix structured abstract sections with their labels")
	flag.BoolVar(&nlmCategory, "abstract.nlmCategory", false, "Draw section labels from the NlmCategory attribute instead of Label")
	flag.StringVar(&subMarkers, "markers.sub", os.Getenv("MEDTAB_SUB_MARKERS"), "Subscript markers as an open,close pair, e.g. '_{,}'")
	flag.StringVar(&supMarkers, "markers.sup", os.Getenv("MEDTAB_SUP_MARKERS"), "Superscript markers as an open,close pair, e.g. '^{,}'")
	flag.IntVar(&workers, "workers", 0, "Citations flattened concurrently; 0 or 1 is sequential")
	flag.StringVar(&configPath, "config", os.Getenv("MEDTAB_CONFIG"), "Optional YAML or JSON config file")
	flag.BoolVar(&verbose, "v", false, "Verbose logging")
	flag.Parse()

	if verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg := convert.Config{
		Inputs:             splitList(inputs),
		Output:             outputPath,
		Format:             format,
		Grants:             grants,
		FullDates:          fullDates,
		IncludeSections:    sections,
		NLMCategory:        nlmCategory,
		SubscriptMarkers:   subMarkers,
		SuperscriptMarkers: supMarkers,
		Workers:            workers,
		Verbose:            verbose,
	}
	cfg.Inputs = append(cfg.Inputs, flag.Args()...)

	if strings.TrimSpace(configPath) != "" {
		fc, err := convert.LoadConfigFile(configPath)
		if err != nil {
			log.Error().Err(err).Str("path", configPath).Msg("config file rejected")
			os.Exit(2)
		}
		convert.ApplyFileConfig(&cfg, fc)
		if cfg.Verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
	}

	if err := convert.Run(cfg); err != nil {
		log.Error().Err(err).Msg("run failed")
		// Exit code policy: malformed input and config errors are the only
		// non-zero exits; the engine itself is total.
		os.Exit(2)
	}
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	list := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			list = append(list, v)
		}
	}
	return list
}
