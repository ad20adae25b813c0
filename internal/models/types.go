package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Problem string

const (
	ProblemLongestSubstring       Problem = "longest-substring"
	ProblemContainerWithMostWater Problem = "container-with-most-water"
	ProblemLongestCommonPrefix    Problem = "longest-common-prefix"
	ProblemValidPalindrome        Problem = "valid-palindrome"
	ProblemUniqueMarker           Problem = "unique-marker"
)

// Problems lists every problem the catalog knows how to solve.
var Problems = []Problem{
	ProblemLongestSubstring,
	ProblemContainerWithMostWater,
	ProblemLongestCommonPrefix,
	ProblemValidPalindrome,
	ProblemUniqueMarker,
}

func (p Problem) Valid() bool {
	for _, known := range Problems {
		if p == known {
			return true
		}
	}
	return false
}

type Tokenize string

const (
	TokenizeRune Tokenize = "rune"
	TokenizeByte Tokenize = "byte"
)

func (t Tokenize) Valid() bool {
	return t == TokenizeRune || t == TokenizeByte
}

// Input carries the arguments of every problem. A nil field means the
// caller did not send it, which is different from sending an empty value.
// Slices use omitzero so an empty list survives encoding while a nil one is
// still left out.
type Input struct {
	Text       *string  `json:"text,omitempty" jsonschema:"text to scan (longest-substring, valid-palindrome, unique-marker)"`
	Words      []string `json:"words,omitzero" jsonschema:"words to compare (longest-common-prefix)"`
	Heights    []int    `json:"heights,omitzero" jsonschema:"line heights (container-with-most-water)" validate:"omitempty,dive,gte=0"`
	WindowSize *int     `json:"window_size,omitempty" jsonschema:"marker length for unique-marker, 4 when absent" validate:"omitempty,gt=0"`
	Tokenize   Tokenize `json:"tokenize,omitempty" jsonschema:"token unit for longest-substring and unique-marker: rune or byte" validate:"omitempty,oneof=rune byte"`
	Normalize  *bool    `json:"normalize,omitempty" jsonschema:"apply Unicode NFC normalization before solving"`
}

// Input message
type SolveRequest struct {
	RequestID string  `json:"request_id" validate:"max=128"`
	Problem   Problem `json:"problem" validate:"required"`
	Input     Input   `json:"input"`
}

// Validate checks the request shape. Problem specific rules live with the solvers.
func (r SolveRequest) Validate() error {
	return validate.Struct(r)
}

type WindowReport struct {
	Left      int    `json:"left"`
	Right     int    `json:"right"`
	Length    int    `json:"length"`
	Substring string `json:"substring"`
}

// Final output, also stored in the history table and published to the result stream
type SolveResult struct {
	ID       string        `json:"id"`
	Problem  Problem       `json:"problem"`
	Answer   any           `json:"answer"`
	Window   *WindowReport `json:"window,omitempty"`
	Error    string        `json:"error,omitempty"`
	Duration time.Duration `json:"duration_ns"`
	SolvedAt time.Time     `json:"solved_at"`
}

func Text(s string) *string {
	return &s
}

func Bool(b bool) *bool {
	return &b
}

func Int(n int) *int {
	return &n
}
