package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"aqcalc/internal/logging"
	"aqcalc/internal/qabbala"
	"aqcalc/internal/segment"
	"aqcalc/internal/textutil"
)

// ScoreFunc computes the value of one sanitized unit.
type ScoreFunc func(text string) (int, error)

// Pipeline composes sanitization, segmentation and scoring.
type Pipeline struct {
	segmenter *segment.Segmenter
	score     ScoreFunc
	logger    *slog.Logger
}

// Option customizes a Pipeline.
type Option func(*Pipeline)

// WithScorer replaces the AQ scorer.
func WithScorer(fn ScoreFunc) Option {
	return func(p *Pipeline) {
		if fn != nil {
			p.score = fn
		}
	}
}

// WithLogger sets the logger used for run summaries and unit failures.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logging.NewComponentLogger(logger, "pipeline")
	}
}

// New builds a pipeline over seg.
func New(seg *segment.Segmenter, opts ...Option) *Pipeline {
	p := &Pipeline{
		segmenter: seg,
		score:     qabbala.Score,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run scores text in mode. The run ID is taken from ctx when present and
// generated otherwise. The error is non-nil only when the text could not be
// segmented or ctx was cancelled; per-unit scoring failures are collected in
// ResultSet.Failures.
func (p *Pipeline) Run(ctx context.Context, text string, mode segment.Mode) (*ResultSet, error) {
	segments, err := p.segmenter.Split(textutil.SanitizeCell(text), mode)
	if err != nil {
		return nil, fmt.Errorf("segment input: %w", err)
	}
	return p.scoreAll(ctx, segments, mode)
}

// ScoreUnits scores each text as one unit, without segmentation. Results are
// reported in line mode.
func (p *Pipeline) ScoreUnits(ctx context.Context, texts []string) (*ResultSet, error) {
	return p.scoreAll(ctx, texts, segment.LineMode)
}

func (p *Pipeline) scoreAll(ctx context.Context, units []string, mode segment.Mode) (*ResultSet, error) {
	start := time.Now()
	runID, ok := logging.RunIDFromContext(ctx)
	if !ok {
		runID = uuid.NewString()
		ctx = logging.WithRunID(ctx, runID)
	}
	logger := logging.WithContext(ctx, p.logger).With(logging.String(logging.FieldMode, mode.String()))

	rs := &ResultSet{
		RunID: runID,
		Mode:  mode,
		Units: make([]Unit, 0, len(units)),
	}
	for i, raw := range units {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		display := textutil.SanitizeCell(raw)
		value, err := p.score(display)
		if err != nil {
			logger.Error("unit scoring failed",
				logging.Int("unit_index", i),
				logging.Error(err),
			)
			rs.Failures = append(rs.Failures, UnitFailure{
				Index: i,
				Text:  display,
				Error: err.Error(),
				err:   err,
			})
			continue
		}
		rs.Units = append(rs.Units, Unit{Text: display, Value: value})
	}

	logger.Debug("run complete",
		logging.Int("units", len(rs.Units)),
		logging.Int("failures", len(rs.Failures)),
		logging.Duration("elapsed", time.Since(start)),
	)
	return rs, nil
}
