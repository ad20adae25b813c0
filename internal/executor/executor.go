package executor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/algo-drills/internal/models"
	"github.com/povarna/algo-drills/internal/problems"
	"github.com/rs/zerolog"
)

var (
	ErrInvalidArgument = problems.ErrInvalidArgument
	ErrProblemNotFound = problems.ErrProblemNotFound
)

// Catalog resolves a problem name to its solver
type Catalog interface {
	Get(problem models.Problem) (problems.Solver, error)
}

// ResultStore keeps a history of solved requests
type ResultStore interface {
	SaveResult(ctx context.Context, result models.SolveResult) error
}

type Executor struct {
	catalog Catalog
	store   ResultStore
	logger  *zerolog.Logger
}

// NewExecutor wires the executor. A nil store disables the history.
func NewExecutor(catalog Catalog, store ResultStore, logger *zerolog.Logger) *Executor {
	return &Executor{
		catalog: catalog,
		store:   store,
		logger:  logger,
	}
}

func (e *Executor) Execute(ctx context.Context, req models.SolveRequest) (models.SolveResult, error) {
	id := req.RequestID
	if id == "" {
		id = uuid.NewString()
	}
	e.logger.Debug().Str("request_id", id).Str("problem", string(req.Problem)).Msg("starting solve")

	result := models.SolveResult{
		ID:      id,
		Problem: req.Problem,
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}

	if err := req.Validate(); err != nil {
		return result, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	solver, err := e.catalog.Get(req.Problem)
	if err != nil {
		e.logger.Warn().Err(err).Str("problem", string(req.Problem)).Msg("problem not available")
		return result, err
	}

	start := time.Now()
	answer, err := solver.Solve(req.Input)
	result.Duration = time.Since(start)
	result.SolvedAt = start.UTC()
	if err != nil {
		return result, fmt.Errorf("request %s: %w", id, err)
	}

	result.Answer = answer.Value
	result.Window = answer.Window

	if e.store != nil {
		if err := e.store.SaveResult(ctx, result); err != nil {
			// The answer is still valid without a history entry
			e.logger.Warn().Err(err).Str("request_id", id).Msg("failed to save result")
		}
	}

	e.logger.
		Info().
		Str("request_id", id).
		Str("problem", string(req.Problem)).
		Interface("answer", result.Answer).
		Dur("duration", result.Duration).
		Msg("solve complete")

	return result, nil
}
