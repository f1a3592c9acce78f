package convert

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	yaml "gopkg.in/yaml.v3"
)

// FileConfig mirrors Config for the optional -config file. Nested sections
// map one-to-one onto the dotted flag names.
type FileConfig struct {
	Inputs []string `yaml:"inputs" json:"inputs"`
	Output string   `yaml:"output" json:"output"`
	Format string   `yaml:"format" json:"format"`
	Grants bool     `yaml:"grants" json:"grants"`

	Dates struct {
		Full bool `yaml:"full" json:"full"`
	} `yaml:"dates" json:"dates"`

	Abstract struct {
		Sections    bool `yaml:"sections" json:"sections"`
		NLMCategory bool `yaml:"nlmCategory" json:"nlmCategory"`
	} `yaml:"abstract" json:"abstract"`

	Markers struct {
		Sub string `yaml:"sub" json:"sub"`
		Sup string `yaml:"sup" json:"sup"`
	} `yaml:"markers" json:"markers"`

	Workers int  `yaml:"workers" json:"workers"`
	Verbose bool `yaml:"verbose" json:"verbose"`
}

// LoadConfigFile reads YAML or JSON into FileConfig. Unknown extensions try
// YAML first, then JSON.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse yaml: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(b, &fc); err != nil {
			return fc, fmt.Errorf("parse json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(b, &fc); err != nil {
			if jerr := json.Unmarshal(b, &fc); jerr != nil {
				return fc, fmt.Errorf("parse config: %v (yaml) / %v (json)", err, jerr)
			}
		}
	}
	return fc, nil
}

// ApplyFileConfig overlays file values into cfg for any fields still at
// their flag defaults. Flags must already have been parsed; explicit flag
// values win over the file.
func ApplyFileConfig(cfg *Config, fc FileConfig) {
	if cfg == nil {
		return
	}
	if len(cfg.Inputs) == 0 && len(fc.Inputs) > 0 {
		cfg.Inputs = append([]string{}, fc.Inputs...)
	}
	if (cfg.Output == "" || cfg.Output == "-") && fc.Output != "" {
		cfg.Output = fc.Output
	}
	if (cfg.Format == "" || cfg.Format == FormatCSV) && fc.Format != "" {
		cfg.Format = fc.Format
	}
	if !cfg.Grants && fc.Grants {
		cfg.Grants = true
	}
	if !cfg.FullDates && fc.Dates.Full {
		cfg.FullDates = true
	}
	if !cfg.IncludeSections && fc.Abstract.Sections {
		cfg.IncludeSections = true
	}
	if !cfg.NLMCategory && fc.Abstract.NLMCategory {
		cfg.NLMCategory = true
	}
	if cfg.SubscriptMarkers == "" && fc.Markers.Sub != "" {
		cfg.SubscriptMarkers = fc.Markers.Sub
	}
	if cfg.SuperscriptMarkers == "" && fc.Markers.Sup != "" {
		cfg.SuperscriptMarkers = fc.Markers.Sup
	}
	if cfg.Workers == 0 && fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}
	if !cfg.Verbose && fc.Verbose {
		cfg.Verbose = true
	}
}
