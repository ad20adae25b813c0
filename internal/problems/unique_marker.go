package problems

import (
	"fmt"

	aoc2022day06 "github.com/povarna/algo-drills/aoc/2022/day06"
	"github.com/povarna/algo-drills/internal/config"
	"github.com/povarna/algo-drills/internal/models"
)

// UniqueMarkerSolver finds where the first run of window_size distinct
// tokens ends. The answer is -1 when the text has no such run.
type UniqueMarkerSolver struct {
	cfg config.ProblemConfig
}

func (s *UniqueMarkerSolver) Problem() models.Problem {
	return models.ProblemUniqueMarker
}

func (s *UniqueMarkerSolver) Description() string {
	return s.cfg.Description
}

func (s *UniqueMarkerSolver) Solve(input models.Input) (Answer, error) {
	if input.Text == nil {
		return Answer{}, missing(s.Problem(), "text")
	}

	size := aoc2022day06.PacketMarkerSize
	if input.WindowSize != nil {
		size = *input.WindowSize
	}
	if size <= 0 {
		return Answer{}, fmt.Errorf("%w: window_size must be positive, got %d", ErrInvalidArgument, size)
	}

	text := normalize(*input.Text, input, s.cfg)

	switch mode := tokenizeMode(input, s.cfg); mode {
	case models.TokenizeRune:
		return findMarker(s.Problem(), []rune(text), size, s.cfg.MaxInputLength, func(r []rune) string { return string(r) })
	case models.TokenizeByte:
		return findMarker(s.Problem(), []byte(text), size, s.cfg.MaxInputLength, func(b []byte) string { return string(b) })
	default:
		return Answer{}, fmt.Errorf("%w: unknown tokenize mode %q", ErrInvalidArgument, mode)
	}
}

func findMarker[T comparable](problem models.Problem, tokens []T, size int, limit int, render func([]T) string) (Answer, error) {
	if err := checkLength(problem, len(tokens), limit); err != nil {
		return Answer{}, err
	}

	end := aoc2022day06.MarkerEnd(tokens, size)
	if end < 0 {
		return Answer{Value: -1}, nil
	}

	return Answer{
		Value: end,
		Window: &models.WindowReport{
			Left:      end - size,
			Right:     end - 1,
			Length:    size,
			Substring: render(tokens[end-size : end]),
		},
	}, nil
}
