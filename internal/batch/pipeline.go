package batch

import (
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rxglitch/claimcheck/internal/config"
	"github.com/rxglitch/claimcheck/internal/csvread"
	"github.com/rxglitch/claimcheck/internal/export"
	"github.com/rxglitch/claimcheck/internal/model"
	"github.com/rxglitch/claimcheck/internal/normalize"
	"github.com/rxglitch/claimcheck/internal/refdata"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full batch scoring pipeline: load references → read →
// classify → export. Individual bad rows degrade with warnings; only
// file-level problems fail a phase.
func Run(log zerolog.Logger, cfg *config.Config) ([]*model.ScoredClaim, *model.BatchSummary, error) {
	totalStart := time.Now()
	runID := uuid.New()
	log = log.With().Str("run_id", runID.String()).Logger()

	// Phase 1: reference tables.
	catalog := refdata.Load(cfg.DataDir, log)
	cfg.Apply(catalog)
	catalog.CheckTriggerMetadata(log, TriggerCodes)

	// Phase 2: read and normalize the claims file.
	readStart := time.Now()
	sha, err := normalize.FileHash(cfg.FilePath)
	if err != nil {
		return nil, nil, &PipelineError{Phase: "read", Err: err}
	}

	claims, rowsRead, err := readClaims(log, cfg.FilePath)
	if err != nil {
		return nil, nil, &PipelineError{Phase: "read", Err: err}
	}
	readDur := time.Since(readStart)
	log.Info().
		Int64("rows_read", rowsRead).
		Str("duration", readDur.String()).
		Msg("claims read")

	// Phase 3: classify and score.
	classifyStart := time.Now()
	scored := Classify(claims, catalog)
	SortByScore(scored)
	classifyDur := time.Since(classifyStart)

	summary := &model.BatchSummary{
		FilePath:         cfg.FilePath,
		FileSHA256:       sha,
		RunID:            runID.String(),
		RowsRead:         rowsRead,
		RowsScored:       int64(len(scored)),
		DurationRead:     readDur,
		DurationClassify: classifyDur,
	}
	for _, sc := range scored {
		switch sc.Status {
		case model.StatusPass:
			summary.CountPass++
		case model.StatusWarn:
			summary.CountWarn++
		case model.StatusDeny:
			summary.CountDeny++
		}
		if sc.Score < batchBaseline {
			summary.RowsFlagged++
		}
	}
	log.Info().
		Int64("pass", summary.CountPass).
		Int64("warn", summary.CountWarn).
		Int64("deny", summary.CountDeny).
		Str("duration", classifyDur.String()).
		Msg("classification complete")

	// Phase 4: snapshot of flagged claims.
	if cfg.OutPath != "" {
		exportStart := time.Now()
		flagged := make([]*model.ScoredClaim, 0, summary.RowsFlagged)
		for _, sc := range scored {
			if sc.Score < batchBaseline {
				flagged = append(flagged, sc)
			}
		}
		if err := export.WriteSnapshot(cfg.OutPath, cfg.OutFormat, flagged); err != nil {
			return nil, nil, &PipelineError{Phase: "export", Err: err}
		}
		summary.SnapshotPath = cfg.OutPath
		summary.DurationExport = time.Since(exportStart)
		log.Info().
			Int("rows", len(flagged)).
			Str("path", cfg.OutPath).
			Str("duration", summary.DurationExport.String()).
			Msg("flagged snapshot written")
	}

	summary.DurationTotal = time.Since(totalStart)
	log.Info().
		Int64("rows_scored", summary.RowsScored).
		Int64("rows_flagged", summary.RowsFlagged).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("scoring pipeline complete")

	return scored, summary, nil
}

// readClaims streams the claims file into normalized Claims, logging
// per-field parse warnings with their row numbers.
func readClaims(log zerolog.Logger, path string) ([]*model.Claim, int64, error) {
	reader, err := csvread.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer reader.Close()

	if err := csvread.ValidateHeader(reader.Columns()); err != nil {
		return nil, 0, err
	}

	var (
		claims  []*model.Claim
		rowsNum int64
	)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// a malformed row is local; keep the rest of the batch
			rowsNum++
			log.Warn().Err(err).Int64("row", rowsNum).Msg("claim row unreadable, skipped")
			continue
		}
		rowsNum++
		c := normalize.FromRow(row)
		for _, w := range c.Warnings {
			log.Warn().
				Int64("row", rowsNum).
				Str("claim_id", c.ClaimID).
				Str("field", w.Field).
				Str("value", w.Value).
				Msg(w.Msg)
		}
		claims = append(claims, c)
	}
	return claims, rowsNum, nil
}
