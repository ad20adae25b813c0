package batch

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/povarna/algo-drills/internal/models"
	"github.com/rs/zerolog"
)

const (
	FormatJSONL   = "jsonl"
	FormatSummary = "summary"
)

// Summary aggregates a batch run. It is the whole output in summary format.
type Summary struct {
	Total         int                  `json:"total"`
	Succeeded     int                  `json:"succeeded"`
	Failed        int                  `json:"failed"`
	ByProblem     map[string]int       `json:"by_problem"`
	TotalDuration time.Duration        `json:"total_duration_ns"`
	Errors        []RecordErrorSummary `json:"errors,omitempty"`
}

type RecordErrorSummary struct {
	ID    string `json:"id"`
	Error string `json:"error"`
}

type Writer struct {
	w       io.Writer
	format  string
	enc     *json.Encoder
	summary Summary
	logger  *zerolog.Logger
}

func NewWriter(w io.Writer, format string, logger *zerolog.Logger) (*Writer, error) {
	if format != FormatJSONL && format != FormatSummary {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}

	return &Writer{
		w:       w,
		format:  format,
		enc:     json.NewEncoder(w),
		summary: Summary{ByProblem: make(map[string]int)},
		logger:  logger,
	}, nil
}

func (w *Writer) Write(result models.SolveResult) error {
	w.record(result)

	if w.format != FormatJSONL {
		return nil
	}
	if err := w.enc.Encode(result); err != nil {
		return fmt.Errorf("failed to write result %s: %w", result.ID, err)
	}
	return nil
}

func (w *Writer) record(result models.SolveResult) {
	w.summary.Total++
	w.summary.TotalDuration += result.Duration

	if result.Error != "" {
		w.summary.Failed++
		w.summary.Errors = append(w.summary.Errors, RecordErrorSummary{ID: result.ID, Error: result.Error})
		return
	}

	w.summary.Succeeded++
	w.summary.ByProblem[string(result.Problem)]++
}

// Summary returns the counts collected so far. Errors are sorted by ID.
func (w *Writer) Summary() Summary {
	s := w.summary
	s.Errors = slices.Clone(s.Errors)
	slices.SortFunc(s.Errors, func(a, b RecordErrorSummary) int {
		return strings.Compare(a.ID, b.ID)
	})
	return s
}

// Close flushes the summary in summary format. It does not close the
// underlying writer.
func (w *Writer) Close() error {
	if w.format != FormatSummary {
		return nil
	}

	enc := json.NewEncoder(w.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(w.Summary()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}

	w.logger.Debug().Int("total", w.summary.Total).Msg("summary written")
	return nil
}
