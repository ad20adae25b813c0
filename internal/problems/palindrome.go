package problems

import (
	"unicode/utf8"

	"github.com/povarna/algo-drills/internal/config"
	"github.com/povarna/algo-drills/internal/models"
	validpalindrome "github.com/povarna/algo-drills/leetcode/0125_valid_palindrome"
)

type PalindromeSolver struct {
	cfg config.ProblemConfig
}

func (s *PalindromeSolver) Problem() models.Problem {
	return models.ProblemValidPalindrome
}

func (s *PalindromeSolver) Description() string {
	return s.cfg.Description
}

func (s *PalindromeSolver) Solve(input models.Input) (Answer, error) {
	if input.Text == nil {
		return Answer{}, missing(s.Problem(), "text")
	}

	text := normalize(*input.Text, input, s.cfg)
	if err := checkLength(s.Problem(), utf8.RuneCountInString(text), s.cfg.MaxInputLength); err != nil {
		return Answer{}, err
	}

	return Answer{Value: validpalindrome.IsPalindrome(text)}, nil
}
