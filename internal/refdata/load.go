package refdata

import (
	"embed"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rxglitch/claimcheck/internal/model"
	"github.com/rxglitch/claimcheck/internal/normalize"
)

// Reference table file names, matching the original data directory layout.
const (
	ApprovedCombosFile = "cpt_dx_approved.csv"
	DenialCodesFile    = "denial_codes.csv"
	PayerRulesFile     = "payer_rules.csv"
)

//go:embed defaults/*.csv
var defaults embed.FS

// defaultWeights is the built-in denial-code weight table. A YAML config
// file may replace it wholesale (see config.Overrides).
var defaultWeights = map[string]int{
	"CO-29":  25,
	"CO-15":  20,
	"CO-11":  20,
	"CO-18":  15,
	"CO-222": 15,
	"CO-97":  15,
	"CO-45":  15,
	"CO-16":  10,
	"CO-167": 15,
}

// Load builds a Catalog from the reference CSVs in dir. When dir is empty
// the embedded defaults are used. A missing or unreadable table degrades to
// an empty one with a warning; the approval lookup then reports everything
// as unapproved rather than failing the run.
func Load(dir string, log zerolog.Logger) *Catalog {
	cat := &Catalog{
		ApprovedCombos: make(map[ComboKey]struct{}),
		DenialCodes:    make(map[string]model.DenialCode),
		Weights:        make(map[string]int, len(defaultWeights)),
	}
	for k, v := range defaultWeights {
		cat.Weights[k] = v
	}

	loadTable(dir, ApprovedCombosFile, log, func(rec map[string]string) {
		key := ComboKey{
			CPT:   normalize.NormalizeCode(rec["cpt_code"]),
			ICD10: normalize.NormalizeCode(rec["icd10_code"]),
		}
		if key.CPT != "" && key.ICD10 != "" {
			cat.ApprovedCombos[key] = struct{}{}
		}
	})

	loadTable(dir, DenialCodesFile, log, func(rec map[string]string) {
		code := normalize.NormalizeCode(rec["code"])
		if code == "" {
			return
		}
		cat.DenialCodes[code] = model.DenialCode{
			Code:          code,
			Reason:        strings.TrimSpace(rec["reason"]),
			PreventionTip: strings.TrimSpace(rec["prevention_tip"]),
			Category:      strings.TrimSpace(rec["denial_category"]),
		}
	})

	loadTable(dir, PayerRulesFile, log, func(rec map[string]string) {
		sub := normalize.NormalizePayer(rec["payer_substring"])
		if sub == "" {
			return
		}
		delta, err := strconv.Atoi(strings.TrimSpace(rec["score_delta"]))
		if err != nil {
			log.Warn().
				Str("payer_substring", sub).
				Str("score_delta", rec["score_delta"]).
				Msg("payer rule has non-numeric delta, skipped")
			return
		}
		cat.PayerRules = append(cat.PayerRules, PayerRule{
			Substring: sub,
			Delta:     delta,
			Note:      strings.TrimSpace(rec["tendency_note"]),
		})
	})

	log.Info().
		Int("approved_combos", len(cat.ApprovedCombos)).
		Int("denial_codes", len(cat.DenialCodes)).
		Int("payer_rules", len(cat.PayerRules)).
		Msg("reference catalog loaded")

	return cat
}

// loadTable opens one reference CSV (from dir, or the embedded defaults
// when dir is empty) and feeds each record to add as a header-keyed map.
func loadTable(dir, name string, log zerolog.Logger, add func(map[string]string)) {
	var (
		r   io.ReadCloser
		err error
	)
	if dir == "" {
		r, err = defaults.Open("defaults/" + name)
	} else {
		r, err = os.Open(filepath.Join(dir, name))
	}
	if err != nil {
		log.Warn().Err(err).Str("table", name).Msg("reference table missing, using empty table")
		return
	}
	defer r.Close()

	if err := readCSV(r, add); err != nil {
		log.Warn().Err(err).Str("table", name).Msg("reference table unreadable, using empty table")
	}
}

func readCSV(r io.Reader, add func(map[string]string)) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	for {
		rec, err := cr.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read record: %w", err)
		}
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(rec) {
				row[col] = rec[i]
			}
		}
		add(row)
	}
}
