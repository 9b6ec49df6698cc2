package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rxglitch/claimcheck/internal/refdata"
)

// Config holds all runtime configuration for a claimcheck run.
type Config struct {
	DataDir   string // reference-table directory; empty = embedded defaults
	FilePath  string // claims CSV for score/plan
	OutPath   string // snapshot destination for score
	OutFormat string // "csv" or "parquet"
	LogFormat string // "text" or "json"
	LogLevel  string // zerolog level name

	// serve
	ListenAddr   string
	SharedSecret string // empty = gate disabled (fails open)

	Overrides Overrides
}

// Overrides is the on-disk YAML structure for tuning the scoring tables
// without recompiling.
type Overrides struct {
	// Weights replaces individual entries of the denial-code weight table.
	Weights map[string]int `yaml:"weights"`
	// PayerRules replaces the payer tendency table entirely when non-empty.
	PayerRules []PayerRuleOverride `yaml:"payer_rules"`
}

// PayerRuleOverride mirrors one payer tendency row in the YAML file.
type PayerRuleOverride struct {
	Substring string `yaml:"substring"`
	Delta     int    `yaml:"delta"`
	Note      string `yaml:"note"`
}

// LoadFromFile reads a YAML overrides file and merges its values into Config.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	c.Overrides = ov
	return c.validateOverrides()
}

// validateOverrides rejects weights and payer rules that could not have
// come from a sane file.
func (c *Config) validateOverrides() error {
	for code, w := range c.Overrides.Weights {
		if strings.TrimSpace(code) == "" {
			return fmt.Errorf("weight override with empty code")
		}
		if w < 0 {
			return fmt.Errorf("weight override for %s is negative", code)
		}
	}
	for i, pr := range c.Overrides.PayerRules {
		if strings.TrimSpace(pr.Substring) == "" {
			return fmt.Errorf("payer rule %d has empty substring", i)
		}
	}
	return nil
}

// Apply pushes the overrides into a loaded catalog.
func (c *Config) Apply(cat *refdata.Catalog) {
	for code, w := range c.Overrides.Weights {
		cat.Weights[strings.ToUpper(strings.TrimSpace(code))] = w
	}
	if len(c.Overrides.PayerRules) > 0 {
		cat.PayerRules = cat.PayerRules[:0]
		for _, pr := range c.Overrides.PayerRules {
			cat.PayerRules = append(cat.PayerRules, refdata.PayerRule{
				Substring: strings.ToLower(strings.TrimSpace(pr.Substring)),
				Delta:     pr.Delta,
				Note:      pr.Note,
			})
		}
	}
}

// Validate checks the fields every command needs.
func (c *Config) Validate() error {
	switch c.OutFormat {
	case "", "csv", "parquet":
	default:
		return fmt.Errorf("unknown output format %q (want csv or parquet)", c.OutFormat)
	}
	if c.DataDir != "" {
		if _, err := os.Stat(c.DataDir); err != nil {
			return fmt.Errorf("data dir not accessible: %w", err)
		}
	}
	return nil
}

// ValidateWithFile additionally requires a readable claims file.
func (c *Config) ValidateWithFile() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("claims file not accessible: %w", err)
	}
	return nil
}
