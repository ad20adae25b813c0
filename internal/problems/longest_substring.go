package problems

import (
	"fmt"

	"github.com/povarna/algo-drills/internal/config"
	"github.com/povarna/algo-drills/internal/models"
	longestsubstring "github.com/povarna/algo-drills/leetcode/0003_longest_substring"
)

// LongestSubstringSolver reports the longest run of text without a repeated
// token, tokenizing by rune or by byte.
type LongestSubstringSolver struct {
	cfg config.ProblemConfig
}

func (s *LongestSubstringSolver) Problem() models.Problem {
	return models.ProblemLongestSubstring
}

func (s *LongestSubstringSolver) Description() string {
	return s.cfg.Description
}

func (s *LongestSubstringSolver) Solve(input models.Input) (Answer, error) {
	if input.Text == nil {
		return Answer{}, missing(s.Problem(), "text")
	}

	text := normalize(*input.Text, input, s.cfg)

	switch mode := tokenizeMode(input, s.cfg); mode {
	case models.TokenizeRune:
		return scan(s.Problem(), []rune(text), s.cfg.MaxInputLength, func(r []rune) string { return string(r) })
	case models.TokenizeByte:
		return scan(s.Problem(), []byte(text), s.cfg.MaxInputLength, func(b []byte) string { return string(b) })
	default:
		return Answer{}, fmt.Errorf("%w: unknown tokenize mode %q", ErrInvalidArgument, mode)
	}
}

func scan[T comparable](problem models.Problem, tokens []T, limit int, render func([]T) string) (Answer, error) {
	if err := checkLength(problem, len(tokens), limit); err != nil {
		return Answer{}, err
	}

	w := longestsubstring.LongestUniqueWindow(tokens)

	return Answer{
		Value: w.Length,
		Window: &models.WindowReport{
			Left:      w.Left,
			Right:     w.Right,
			Length:    w.Length,
			Substring: render(longestsubstring.Slice(tokens, w)),
		},
	}, nil
}
