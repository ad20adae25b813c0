package main

import (
	"context"
	"fmt"
	"io"
	"reflect"

	"github.com/povarna/algo-drills/internal/executor"
	"github.com/povarna/algo-drills/internal/models"
)

type example struct {
	problem models.Problem
	input   models.Input
	want    any
}

var examples = []example{
	{problem: models.ProblemLongestSubstring, input: models.Input{Text: models.Text("abcabcbb")}, want: 3},
	{problem: models.ProblemLongestSubstring, input: models.Input{Text: models.Text("bbbbb")}, want: 1},
	{problem: models.ProblemLongestSubstring, input: models.Input{Text: models.Text("pwwkew")}, want: 3},
	{problem: models.ProblemContainerWithMostWater, input: models.Input{Heights: []int{1, 8, 6, 2, 5, 4, 8, 3, 7}}, want: 49},
	{problem: models.ProblemContainerWithMostWater, input: models.Input{Heights: []int{1, 1}}, want: 1},
	{problem: models.ProblemContainerWithMostWater, input: models.Input{Heights: []int{1, 2, 1}}, want: 2},
	{problem: models.ProblemLongestCommonPrefix, input: models.Input{Words: []string{"flower", "flow", "flight"}}, want: "fl"},
	{problem: models.ProblemLongestCommonPrefix, input: models.Input{Words: []string{"dog", "racecar", "car"}}, want: ""},
	{problem: models.ProblemValidPalindrome, input: models.Input{Text: models.Text("A man, a plan, a canal: Panama")}, want: true},
	{problem: models.ProblemValidPalindrome, input: models.Input{Text: models.Text("abccba")}, want: true},
	{problem: models.ProblemValidPalindrome, input: models.Input{Text: models.Text("abcdcba")}, want: true},
	{problem: models.ProblemValidPalindrome, input: models.Input{Text: models.Text(" ")}, want: true},
	{problem: models.ProblemValidPalindrome, input: models.Input{Text: models.Text("race a car")}, want: false},
	{problem: models.ProblemValidPalindrome, input: models.Input{Text: models.Text("not a palindrome")}, want: false},
	{problem: models.ProblemUniqueMarker, input: models.Input{Text: models.Text("mjqjpqmgbljsphdztnvjfqwrcgsmlb")}, want: 7},
	{problem: models.ProblemUniqueMarker, input: models.Input{Text: models.Text("mjqjpqmgbljsphdztnvjfqwrcgsmlb"), WindowSize: models.Int(14)}, want: 19},
}

// runExamples prints one line per example and returns how many failed.
// Problems disabled in the catalog are reported as skipped.
func runExamples(ctx context.Context, w io.Writer, exec *executor.Executor) int {
	failed := 0

	for i, ex := range examples {
		result, err := exec.Execute(ctx, models.SolveRequest{
			RequestID: fmt.Sprintf("example-%d", i+1),
			Problem:   ex.problem,
			Input:     ex.input,
		})

		switch {
		case err != nil:
			fmt.Fprintf(w, "SKIP %-26s %s\n", ex.problem, err)
		case !reflect.DeepEqual(result.Answer, ex.want):
			failed++
			fmt.Fprintf(w, "FAIL %-26s %s = %v; want %v\n", ex.problem, describe(ex.input), result.Answer, ex.want)
		default:
			fmt.Fprintf(w, "ok   %-26s %s = %v\n", ex.problem, describe(ex.input), result.Answer)
		}
	}

	return failed
}

func describe(input models.Input) string {
	switch {
	case input.Text != nil:
		return fmt.Sprintf("%q", *input.Text)
	case input.Words != nil:
		return fmt.Sprintf("%q", input.Words)
	default:
		return fmt.Sprintf("%v", input.Heights)
	}
}
