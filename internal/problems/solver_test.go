package problems

import (
	"errors"
	"testing"

	"github.com/povarna/algo-drills/internal/config"
	"github.com/povarna/algo-drills/internal/models"
)

func TestLongestSubstringSolver(t *testing.T) {
	solver := &LongestSubstringSolver{cfg: config.ProblemConfig{Tokenize: "rune", MaxInputLength: 16}}

	// "é" written as e + combining acute accent
	decomposed := "e\u0301e\u0301"

	tests := []struct {
		name          string
		input         models.Input
		wantValue     int
		wantSubstring string
		wantErr       error
	}{
		{
			name:          "Example 1",
			input:         models.Input{Text: models.Text("abcabcbb")},
			wantValue:     3,
			wantSubstring: "abc",
		},
		{
			name:          "Example 2",
			input:         models.Input{Text: models.Text("bbbbb")},
			wantValue:     1,
			wantSubstring: "b",
		},
		{
			name:          "Example 3",
			input:         models.Input{Text: models.Text("pwwkew")},
			wantValue:     3,
			wantSubstring: "wke",
		},
		{
			name:          "empty text is valid",
			input:         models.Input{Text: models.Text("")},
			wantValue:     0,
			wantSubstring: "",
		},
		{
			name:          "byte tokens",
			input:         models.Input{Text: models.Text("héllo"), Tokenize: models.TokenizeByte},
			wantValue:     4,
			wantSubstring: "hél",
		},
		{
			name:          "decomposed text without normalization",
			input:         models.Input{Text: models.Text(decomposed)},
			wantValue:     2,
			wantSubstring: "e\u0301",
		},
		{
			name:          "decomposed text with normalization",
			input:         models.Input{Text: models.Text(decomposed), Normalize: models.Bool(true)},
			wantValue:     1,
			wantSubstring: "\u00e9",
		},
		{
			name:    "missing text",
			input:   models.Input{},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "unknown tokenize mode",
			input:   models.Input{Text: models.Text("abc"), Tokenize: "word"},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "too long",
			input:   models.Input{Text: models.Text("abcdefghijklmnopq")},
			wantErr: ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := solver.Solve(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Solve() error = %v; want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Solve() unexpected error: %v", err)
			}

			if answer.Value != tt.wantValue {
				t.Errorf("Value = %v; want %d", answer.Value, tt.wantValue)
			}
			if answer.Window == nil {
				t.Fatal("Expected a window report")
			}
			if answer.Window.Substring != tt.wantSubstring {
				t.Errorf("Substring = %q; want %q", answer.Window.Substring, tt.wantSubstring)
			}
			if answer.Window.Length != tt.wantValue {
				t.Errorf("Window.Length = %d; want %d", answer.Window.Length, tt.wantValue)
			}
		})
	}
}

func TestLongestSubstringSolver_ConfigDefaults(t *testing.T) {
	solver := &LongestSubstringSolver{cfg: config.ProblemConfig{Tokenize: "byte", Normalize: true}}

	answer, err := solver.Solve(models.Input{Text: models.Text("héllo")})
	if err != nil {
		t.Fatalf("Solve() unexpected error: %v", err)
	}
	if answer.Value != 4 {
		t.Errorf("Expected byte tokenization from config, got %v", answer.Value)
	}

	// The request overrides the configured mode
	answer, err = solver.Solve(models.Input{Text: models.Text("héllo"), Tokenize: models.TokenizeRune})
	if err != nil {
		t.Fatalf("Solve() unexpected error: %v", err)
	}
	if answer.Value != 3 {
		t.Errorf("Expected rune tokenization from request, got %v", answer.Value)
	}
}

func TestContainerSolver(t *testing.T) {
	solver := &ContainerSolver{cfg: config.ProblemConfig{MaxInputLength: 10}}

	tests := []struct {
		name      string
		heights   []int
		wantValue int
		wantErr   error
	}{
		{name: "Example 1", heights: []int{1, 8, 6, 2, 5, 4, 8, 3, 7}, wantValue: 49},
		{name: "Example 2", heights: []int{1, 1}, wantValue: 1},
		{name: "Example 3", heights: []int{1, 2, 1}, wantValue: 2},
		{name: "empty list", heights: []int{}, wantValue: 0},
		{name: "missing heights", heights: nil, wantErr: ErrInvalidArgument},
		{name: "negative height", heights: []int{1, -2}, wantErr: ErrInvalidArgument},
		{name: "too many lines", heights: make([]int, 11), wantErr: ErrInvalidArgument},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := solver.Solve(models.Input{Heights: tt.heights})
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Solve() error = %v; want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Solve() unexpected error: %v", err)
			}
			if answer.Value != tt.wantValue {
				t.Errorf("Value = %v; want %d", answer.Value, tt.wantValue)
			}
		})
	}
}

func TestCommonPrefixSolver(t *testing.T) {
	solver := &CommonPrefixSolver{}

	answer, err := solver.Solve(models.Input{Words: []string{"flower", "flow", "flight"}})
	if err != nil {
		t.Fatalf("Solve() unexpected error: %v", err)
	}
	if answer.Value != "fl" {
		t.Errorf("Value = %v; want fl", answer.Value)
	}

	answer, err = solver.Solve(models.Input{Words: []string{"dog", "racecar", "car"}})
	if err != nil {
		t.Fatalf("Solve() unexpected error: %v", err)
	}
	if answer.Value != "" {
		t.Errorf("Value = %v; want empty prefix", answer.Value)
	}

	// Same word, one composed and one decomposed
	words := []string{"caf\u00e9s", "cafe\u0301"}
	answer, err = solver.Solve(models.Input{Words: words, Normalize: models.Bool(true)})
	if err != nil {
		t.Fatalf("Solve() unexpected error: %v", err)
	}
	if answer.Value != "caf\u00e9" {
		t.Errorf("Value = %q; want café", answer.Value)
	}

	if _, err := solver.Solve(models.Input{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for missing words, got %v", err)
	}
}

func TestPalindromeSolver(t *testing.T) {
	solver := &PalindromeSolver{cfg: config.ProblemConfig{MaxInputLength: 40}}

	tests := []struct {
		text string
		want bool
	}{
		{text: "A man, a plan, a canal: Panama", want: true},
		{text: "abccba", want: true},
		{text: "abcdcba", want: true},
		{text: " ", want: true},
		{text: "race a car", want: false},
		{text: "not a palindrome", want: false},
	}

	for _, tt := range tests {
		answer, err := solver.Solve(models.Input{Text: models.Text(tt.text)})
		if err != nil {
			t.Fatalf("Solve(%q) unexpected error: %v", tt.text, err)
		}
		if answer.Value != tt.want {
			t.Errorf("Solve(%q) = %v; want %v", tt.text, answer.Value, tt.want)
		}
	}

	if _, err := solver.Solve(models.Input{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for missing text, got %v", err)
	}
	long := "abcdefghijklmnopqrstuvwxyzabcdefghijklmnop"
	if _, err := solver.Solve(models.Input{Text: models.Text(long)}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Expected ErrInvalidArgument for long text, got %v", err)
	}
}

func TestUniqueMarkerSolver(t *testing.T) {
	solver := &UniqueMarkerSolver{cfg: config.ProblemConfig{Tokenize: "rune", MaxInputLength: 64}}

	tests := []struct {
		name          string
		input         models.Input
		wantValue     int
		wantSubstring string
		wantErr       error
	}{
		{
			name:          "packet marker by default",
			input:         models.Input{Text: models.Text("bvwbjplbgvbhsrlpgdmjqwftvncz")},
			wantValue:     5,
			wantSubstring: "vwbj",
		},
		{
			name:          "message marker",
			input:         models.Input{Text: models.Text("mjqjpqmgbljsphdztnvjfqwrcgsmlb"), WindowSize: models.Int(14)},
			wantValue:     19,
			wantSubstring: "qmgbljsphdztnv",
		},
		{
			name:      "no marker",
			input:     models.Input{Text: models.Text("aaaa")},
			wantValue: -1,
		},
		{
			name:    "missing text",
			input:   models.Input{WindowSize: models.Int(4)},
			wantErr: ErrInvalidArgument,
		},
		{
			name:    "zero window",
			input:   models.Input{Text: models.Text("abcd"), WindowSize: models.Int(0)},
			wantErr: ErrInvalidArgument,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, err := solver.Solve(tt.input)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Solve() error = %v; want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Solve() unexpected error: %v", err)
			}

			if answer.Value != tt.wantValue {
				t.Errorf("Value = %v; want %d", answer.Value, tt.wantValue)
			}
			if tt.wantValue < 0 {
				if answer.Window != nil {
					t.Errorf("Expected no window, got %+v", answer.Window)
				}
				return
			}
			if answer.Window == nil || answer.Window.Substring != tt.wantSubstring {
				t.Errorf("Window = %+v; want substring %q", answer.Window, tt.wantSubstring)
			}
		})
	}
}
