package problems

import (
	"github.com/povarna/algo-drills/internal/config"
	"github.com/povarna/algo-drills/internal/models"
	longestcommonprefix "github.com/povarna/algo-drills/leetcode/0014_longest_common_prefix"
)

type CommonPrefixSolver struct {
	cfg config.ProblemConfig
}

func (s *CommonPrefixSolver) Problem() models.Problem {
	return models.ProblemLongestCommonPrefix
}

func (s *CommonPrefixSolver) Description() string {
	return s.cfg.Description
}

func (s *CommonPrefixSolver) Solve(input models.Input) (Answer, error) {
	if input.Words == nil {
		return Answer{}, missing(s.Problem(), "words")
	}
	if err := checkLength(s.Problem(), len(input.Words), s.cfg.MaxInputLength); err != nil {
		return Answer{}, err
	}

	// The prefix is compared byte by byte, so composed and decomposed forms
	// of the same letter only match after normalization.
	words := make([]string, len(input.Words))
	for i, w := range input.Words {
		words[i] = normalize(w, input, s.cfg)
	}

	return Answer{Value: longestcommonprefix.LongestCommonPrefix(words)}, nil
}
