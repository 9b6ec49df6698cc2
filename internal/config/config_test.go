package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/rxglitch/claimcheck/internal/refdata"
)

func writeYAML(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "claimcheck.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadFromFile(t *testing.T) {
	path := writeYAML(t, `
weights:
  co-15: 30
  CO-45: 5
payer_rules:
  - substring: " Acme "
    delta: -10
    note: strict reviewer
`)
	var cfg Config
	if err := cfg.LoadFromFile(path); err != nil {
		t.Fatal(err)
	}
	if cfg.Overrides.Weights["co-15"] != 30 {
		t.Errorf("weights = %v", cfg.Overrides.Weights)
	}
	if len(cfg.Overrides.PayerRules) != 1 || cfg.Overrides.PayerRules[0].Delta != -10 {
		t.Errorf("payer rules = %+v", cfg.Overrides.PayerRules)
	}
}

func TestLoadFromFile_Invalid(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"negative weight", "weights:\n  CO-15: -1\n", "negative"},
		{"empty weight code", "weights:\n  \" \": 5\n", "empty code"},
		{"empty substring", "payer_rules:\n  - substring: \"\"\n    delta: 3\n", "empty substring"},
		{"bad yaml", "weights: [not a map\n", "parse config file"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var cfg Config
			err := cfg.LoadFromFile(writeYAML(t, c.body))
			if err == nil || !strings.Contains(err.Error(), c.want) {
				t.Errorf("err = %v, want containing %q", err, c.want)
			}
		})
	}
}

func TestLoadFromFile_Missing(t *testing.T) {
	var cfg Config
	if err := cfg.LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing file accepted")
	}
}

func TestApply(t *testing.T) {
	cat := refdata.Load("", zerolog.Nop())
	cfg := Config{Overrides: Overrides{
		Weights: map[string]int{" co-15 ": 30, "CO-999": 40},
		PayerRules: []PayerRuleOverride{
			{Substring: " Acme ", Delta: -10, Note: "strict reviewer"},
		},
	}}
	cfg.Apply(cat)

	// weight keys are trimmed and upper-cased on merge
	if cat.Weight("CO-15") != 30 {
		t.Errorf("CO-15 weight = %d, want 30", cat.Weight("CO-15"))
	}
	if cat.Weight("CO-999") != 40 {
		t.Errorf("CO-999 weight = %d, want 40", cat.Weight("CO-999"))
	}
	// untouched entries keep their defaults
	if cat.Weight("CO-29") != 25 {
		t.Errorf("CO-29 weight = %d, want 25", cat.Weight("CO-29"))
	}

	// payer rules replace the table wholesale
	if len(cat.PayerRules) != 1 {
		t.Fatalf("payer rules = %+v, want the single override", cat.PayerRules)
	}
	if pr := cat.PayerRules[0]; pr.Substring != "acme" || pr.Delta != -10 {
		t.Errorf("payer rule = %+v", pr)
	}
}

func TestApply_NoPayerRulesKeepsTable(t *testing.T) {
	cat := refdata.Load("", zerolog.Nop())
	before := len(cat.PayerRules)
	cfg := Config{Overrides: Overrides{Weights: map[string]int{"CO-15": 1}}}
	cfg.Apply(cat)
	if len(cat.PayerRules) != before {
		t.Errorf("payer rules changed without an override: %d -> %d", before, len(cat.PayerRules))
	}
}

func TestValidate(t *testing.T) {
	for _, format := range []string{"", "csv", "parquet"} {
		cfg := Config{OutFormat: format}
		if err := cfg.Validate(); err != nil {
			t.Errorf("format %q rejected: %v", format, err)
		}
	}
	cfg := Config{OutFormat: "xlsx"}
	if err := cfg.Validate(); err == nil {
		t.Error("unknown format accepted")
	}
	cfg = Config{DataDir: filepath.Join(t.TempDir(), "missing")}
	if err := cfg.Validate(); err == nil {
		t.Error("missing data dir accepted")
	}
}

func TestValidateWithFile(t *testing.T) {
	var cfg Config
	if err := cfg.ValidateWithFile(); err == nil {
		t.Error("empty file path accepted")
	}

	path := filepath.Join(t.TempDir(), "claims.csv")
	if err := os.WriteFile(path, []byte("claim_id\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg = Config{FilePath: path}
	if err := cfg.ValidateWithFile(); err != nil {
		t.Errorf("readable file rejected: %v", err)
	}
}
