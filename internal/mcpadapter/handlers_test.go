package mcpadapter

import (
	"context"
	"errors"
	"testing"

	"github.com/povarna/algo-drills/internal/config"
	"github.com/povarna/algo-drills/internal/executor"
	"github.com/povarna/algo-drills/internal/models"
	"github.com/povarna/algo-drills/internal/problems"
	"github.com/rs/zerolog"
)

func newTestExecutor(t *testing.T) *executor.Executor {
	t.Helper()

	logger := zerolog.Nop()
	catalog, err := problems.NewCatalog(config.Default(), &logger)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	return executor.NewExecutor(catalog, nil, &logger)
}

func TestSolveHandler(t *testing.T) {
	handler := NewSolveHandler(newTestExecutor(t))

	_, out, err := handler(context.Background(), nil, SolveInput{
		RequestID: "mcp-001",
		Problem:   "longest-common-prefix",
		Input:     models.Input{Words: []string{"flower", "flow", "flight"}},
	})
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	if out.ID != "mcp-001" {
		t.Errorf("expected ID mcp-001, got %s", out.ID)
	}
	if out.Answer != "fl" {
		t.Errorf("expected answer fl, got %v", out.Answer)
	}
}

func TestSolveHandler_UnknownProblem(t *testing.T) {
	handler := NewSolveHandler(newTestExecutor(t))

	_, _, err := handler(context.Background(), nil, SolveInput{Problem: "two-sum"})
	if !errors.Is(err, executor.ErrProblemNotFound) {
		t.Errorf("expected ErrProblemNotFound, got %v", err)
	}
}

func TestLongestUniqueHandler(t *testing.T) {
	handler := NewLongestUniqueHandler(newTestExecutor(t))

	tests := []struct {
		input LongestUniqueInput
		want  LongestUniqueOutput
	}{
		{
			input: LongestUniqueInput{Text: "abcabcbb"},
			want:  LongestUniqueOutput{Length: 3, Left: 0, Right: 2, Substring: "abc"},
		},
		{
			input: LongestUniqueInput{Text: "pwwkew"},
			want:  LongestUniqueOutput{Length: 3, Left: 2, Right: 4, Substring: "wke"},
		},
		{
			input: LongestUniqueInput{Text: ""},
			want:  LongestUniqueOutput{Length: 0, Left: 0, Right: -1, Substring: ""},
		},
		{
			input: LongestUniqueInput{Text: "héllo", Tokenize: "byte"},
			want:  LongestUniqueOutput{Length: 4, Left: 0, Right: 3, Substring: "hél"},
		},
	}

	for _, tt := range tests {
		_, out, err := handler(context.Background(), nil, tt.input)
		if err != nil {
			t.Fatalf("handler(%+v) returned error: %v", tt.input, err)
		}
		if out != tt.want {
			t.Errorf("handler(%+v) = %+v; want %+v", tt.input, out, tt.want)
		}
	}

	_, _, err := handler(context.Background(), nil, LongestUniqueInput{Text: "abc", Tokenize: "word"})
	if !errors.Is(err, executor.ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestLongestUniqueHandler_NormalizeOverridesConfig(t *testing.T) {
	logger := zerolog.Nop()
	cfg := &config.CatalogConfig{Problems: []config.ProblemConfig{
		{Name: string(models.ProblemLongestSubstring), Enabled: true, Tokenize: "rune", Normalize: true},
	}}
	catalog, err := problems.NewCatalog(cfg, &logger)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	handler := NewLongestUniqueHandler(executor.NewExecutor(catalog, nil, &logger))

	// "é" written as e + combining acute accent, twice
	decomposed := "e\u0301e\u0301"

	tests := []struct {
		name       string
		normalize  *bool
		wantLength int
	}{
		{name: "config default normalizes", normalize: nil, wantLength: 1},
		{name: "explicit true", normalize: models.Bool(true), wantLength: 1},
		{name: "explicit false keeps raw characters", normalize: models.Bool(false), wantLength: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, out, err := handler(context.Background(), nil, LongestUniqueInput{Text: decomposed, Normalize: tt.normalize})
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if out.Length != tt.wantLength {
				t.Errorf("Length = %d; want %d", out.Length, tt.wantLength)
			}
		})
	}
}
