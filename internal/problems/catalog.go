package problems

import (
	"fmt"

	"github.com/povarna/algo-drills/internal/config"
	"github.com/povarna/algo-drills/internal/models"
	"github.com/rs/zerolog"
)

// Catalog holds the enabled solvers, in config order
type Catalog struct {
	solvers map[models.Problem]Solver
	order   []models.Problem
}

func NewCatalog(cfg *config.CatalogConfig, logger *zerolog.Logger) (*Catalog, error) {
	if cfg == nil {
		return nil, fmt.Errorf("catalog config is nil")
	}

	c := &Catalog{
		solvers: make(map[models.Problem]Solver),
	}

	for _, problemCfg := range cfg.Problems {
		if !problemCfg.Enabled {
			logger.Info().
				Str("problem", problemCfg.Name).
				Msg("problem disabled in config, skipping")
			continue
		}

		solver, err := newSolver(problemCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create solver %s: %w", problemCfg.Name, err)
		}

		c.solvers[solver.Problem()] = solver
		c.order = append(c.order, solver.Problem())

		logger.Debug().
			Str("problem", problemCfg.Name).
			Int("max_input_length", problemCfg.MaxInputLength).
			Str("tokenize", problemCfg.Tokenize).
			Bool("normalize", problemCfg.Normalize).
			Msg("solver created")
	}

	if len(c.solvers) == 0 {
		return nil, fmt.Errorf("no enabled problems found in config")
	}

	logger.Info().
		Int("total_problems", len(c.solvers)).
		Msg("problem catalog built")

	return c, nil
}

func (c *Catalog) Get(problem models.Problem) (Solver, error) {
	solver, ok := c.solvers[problem]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProblemNotFound, problem)
	}
	return solver, nil
}

func (c *Catalog) List() []Solver {
	solvers := make([]Solver, 0, len(c.order))
	for _, p := range c.order {
		solvers = append(solvers, c.solvers[p])
	}
	return solvers
}
