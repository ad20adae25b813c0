package batch

import (
	"context"

	"github.com/povarna/algo-drills/internal/models"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Executor runs a single solve request
type Executor interface {
	Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error)
}

type Processor struct {
	executor Executor
	workers  int
	logger   *zerolog.Logger
}

func NewProcessor(executor Executor, workers int, logger *zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{
		executor: executor,
		workers:  workers,
		logger:   logger,
	}
}

// Process solves every record with at most p.workers in flight. Records that
// failed to parse or solve still produce a result with Error set, so the
// output has one line per input record. Results arrive in completion order.
func (p *Processor) Process(ctx context.Context, records []InputRecord) <-chan models.SolveResult {
	out := make(chan models.SolveResult, p.workers)

	go func() {
		defer close(out)

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(p.workers)

		for _, record := range records {
			if gctx.Err() != nil {
				break
			}

			g.Go(func() error {
				result := p.solve(gctx, record)
				select {
				case out <- result:
					return nil
				case <-gctx.Done():
					return gctx.Err()
				}
			})
		}

		if err := g.Wait(); err != nil {
			p.logger.Warn().Err(err).Msg("batch processing stopped early")
		}
	}()

	return out
}

func (p *Processor) solve(ctx context.Context, record InputRecord) models.SolveResult {
	if record.Error != nil {
		return models.SolveResult{
			ID:      record.Request.RequestID,
			Problem: record.Request.Problem,
			Error:   record.Error.Error(),
		}
	}

	result, err := p.executor.Execute(ctx, record.Request)
	if err != nil {
		p.logger.Warn().
			Int("line", record.LineNumber).
			Str("request_id", record.Request.RequestID).
			Err(err).
			Msg("record failed")
		result.Error = err.Error()
	}
	return result
}
