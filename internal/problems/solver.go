package problems

import (
	"errors"
	"fmt"

	"github.com/povarna/algo-drills/internal/config"
	"github.com/povarna/algo-drills/internal/models"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrProblemNotFound = errors.New("problem not found")
)

// Answer is what a solver produces for one input. Window is only set by the
// solvers that scan text for a run of distinct tokens.
type Answer struct {
	Value  any
	Window *models.WindowReport
}

type Solver interface {
	Problem() models.Problem
	Description() string
	Solve(input models.Input) (Answer, error)
}

func newSolver(cfg config.ProblemConfig) (Solver, error) {
	switch models.Problem(cfg.Name) {
	case models.ProblemLongestSubstring:
		return &LongestSubstringSolver{cfg: cfg}, nil
	case models.ProblemContainerWithMostWater:
		return &ContainerSolver{cfg: cfg}, nil
	case models.ProblemLongestCommonPrefix:
		return &CommonPrefixSolver{cfg: cfg}, nil
	case models.ProblemValidPalindrome:
		return &PalindromeSolver{cfg: cfg}, nil
	case models.ProblemUniqueMarker:
		return &UniqueMarkerSolver{cfg: cfg}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrProblemNotFound, cfg.Name)
	}
}

func missing(problem models.Problem, field string) error {
	return fmt.Errorf("%w: %s requires %s", ErrInvalidArgument, problem, field)
}

// checkLength enforces max_input_length. A zero limit means no limit.
func checkLength(problem models.Problem, n int, limit int) error {
	if limit > 0 && n > limit {
		return fmt.Errorf("%w: %s input has %d tokens, limit is %d", ErrInvalidArgument, problem, n, limit)
	}
	return nil
}

// tokenizeMode picks the request mode over the configured one
func tokenizeMode(input models.Input, cfg config.ProblemConfig) models.Tokenize {
	if input.Tokenize != "" {
		return input.Tokenize
	}
	return models.Tokenize(cfg.Tokenize)
}

func normalize(s string, input models.Input, cfg config.ProblemConfig) string {
	enabled := cfg.Normalize
	if input.Normalize != nil {
		enabled = *input.Normalize
	}
	if !enabled {
		return s
	}
	return norm.NFC.String(s)
}
