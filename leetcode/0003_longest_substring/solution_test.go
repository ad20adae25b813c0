package longestsubstring

import (
	"math/rand/v2"
	"slices"
	"testing"
)

func TestLengthOfLongestSubstring(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected int
	}{
		{name: "Example 1", input: "abcabcbb", expected: 3},
		{name: "Example 2", input: "bbbbb", expected: 1},
		{name: "Example 3", input: "pwwkew", expected: 3},
		{name: "empty", input: "", expected: 0},
		{name: "single character", input: "a", expected: 1},
		{name: "no repeats", input: "abcdef", expected: 6},
		{name: "repeat at the edges", input: "abba", expected: 2},
		{name: "duplicate far behind", input: "dvdf", expected: 3},
		{name: "space counts as a token", input: "a b c", expected: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := LengthOfLongestSubstring(tc.input)
			if result != tc.expected {
				t.Errorf("LengthOfLongestSubstring(%q) = %d; want %d", tc.input, result, tc.expected)
			}
		})
	}
}

func TestLongestSubstring(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{input: "abcabcbb", expected: "abc"},
		{input: "bbbbb", expected: "b"},
		{input: "pwwkew", expected: "wke"},
		{input: "", expected: ""},
		{input: "héllo wörld", expected: "o wörld"},
	}

	for _, tc := range testCases {
		result := LongestSubstring(tc.input)
		if result != tc.expected {
			t.Errorf("LongestSubstring(%q) = %q; want %q", tc.input, result, tc.expected)
		}
	}
}

func TestLongestUniqueWindow(t *testing.T) {
	w := LongestUniqueWindow([]rune("pwwkew"))
	if w != (Window{Left: 2, Right: 4, Length: 3}) {
		t.Errorf("LongestUniqueWindow(pwwkew) = %+v; want {Left:2 Right:4 Length:3}", w)
	}

	empty := LongestUniqueWindow[int](nil)
	if empty != (Window{Left: 0, Right: -1, Length: 0}) {
		t.Errorf("LongestUniqueWindow(nil) = %+v; want empty range", empty)
	}
	if got := Slice[int](nil, empty); len(got) != 0 {
		t.Errorf("Slice(nil, empty) = %v; want no tokens", got)
	}
}

func TestRunesAndBytes(t *testing.T) {
	// é is two bytes, and they differ from each other and from the ASCII letters
	if got := LengthOfLongestSubstring("héllo"); got != 3 {
		t.Errorf("LengthOfLongestSubstring(héllo) = %d; want 3", got)
	}
	if got := LengthOfLongestSubstringBytes("héllo"); got != 4 {
		t.Errorf("LengthOfLongestSubstringBytes(héllo) = %d; want 4", got)
	}

	for _, s := range []string{"abcabcbb", "bbbbb", "pwwkew", "", "a", "tmmzuxt"} {
		if LengthOfLongestSubstring(s) != LengthOfLongestSubstringBytes(s) {
			t.Errorf("rune and byte scans disagree on ASCII input %q", s)
		}
	}
}

func TestLongestUniqueRunGeneric(t *testing.T) {
	testCases := []struct {
		tokens   []int
		expected int
	}{
		{tokens: nil, expected: 0},
		{tokens: []int{}, expected: 0},
		{tokens: []int{7, 7, 7, 7}, expected: 1},
		{tokens: []int{1, 2, 3, 1, 2, 3, 4}, expected: 4},
		{tokens: []int{1, 2, 3, 4, 5}, expected: 5},
	}

	for _, tc := range testCases {
		result := LongestUniqueRun(tc.tokens)
		if result != tc.expected {
			t.Errorf("LongestUniqueRun(%v) = %d; want %d", tc.tokens, result, tc.expected)
		}
	}
}

func TestRepeatedTokenIsAlwaysOne(t *testing.T) {
	for n := 1; n <= 50; n++ {
		tokens := slices.Repeat([]string{"x"}, n)
		if got := LongestUniqueRun(tokens); got != 1 {
			t.Fatalf("LongestUniqueRun(%d repeated tokens) = %d; want 1", n, got)
		}
	}
}

func TestAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 17))

	for i := 0; i < 500; i++ {
		tokens := randomTokens(rng, rng.IntN(40), "abcdefg")
		expected := bruteForce(tokens)

		result := LongestUniqueRun(tokens)
		if result != expected {
			t.Fatalf("LongestUniqueRun(%q) = %d; want %d", string(tokens), result, expected)
		}
		if result < 0 || result > len(tokens) {
			t.Fatalf("LongestUniqueRun(%q) = %d; out of [0, %d]", string(tokens), result, len(tokens))
		}
		if again := LongestUniqueRun(tokens); again != result {
			t.Fatalf("LongestUniqueRun(%q) changed between runs: %d then %d", string(tokens), result, again)
		}

		w := LongestUniqueWindow(tokens)
		if w.Length != result || w.Length != w.Right-w.Left+1 {
			t.Fatalf("LongestUniqueWindow(%q) = %+v; inconsistent with length %d", string(tokens), w, result)
		}
		if !distinct(Slice(tokens, w)) {
			t.Fatalf("LongestUniqueWindow(%q) = %+v covers a repeated token", string(tokens), w)
		}
	}
}

func TestDistinctTokensGiveFullLength(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 8))
	alphabet := []rune("abcdefghijklmnopqrstuvwxyz0123456789")

	for i := 0; i < 100; i++ {
		perm := rng.Perm(len(alphabet))[:rng.IntN(len(alphabet)+1)]
		tokens := make([]rune, len(perm))
		for j, p := range perm {
			tokens[j] = alphabet[p]
		}

		if got := LongestUniqueRun(tokens); got != len(tokens) {
			t.Fatalf("LongestUniqueRun(%q) = %d; want %d", string(tokens), got, len(tokens))
		}
	}
}

func TestAppendingFreshTokenNeverShrinks(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 29))
	alphabet := "abcdef"

	for i := 0; i < 300; i++ {
		tokens := randomTokens(rng, 1+rng.IntN(30), alphabet)
		before := LongestUniqueWindow(tokens)
		window := Slice(tokens, before)

		for _, c := range alphabet {
			if slices.Contains(window, c) {
				continue
			}
			extended := append(slices.Clone(tokens), c)
			if after := LongestUniqueRun(extended); after < before.Length {
				t.Fatalf("appending %q to %q shrank the result from %d to %d", c, string(tokens), before.Length, after)
			}
		}
	}
}

func randomTokens(rng *rand.Rand, n int, alphabet string) []rune {
	letters := []rune(alphabet)
	tokens := make([]rune, n)
	for i := range tokens {
		tokens[i] = letters[rng.IntN(len(letters))]
	}
	return tokens
}

func bruteForce(tokens []rune) int {
	best := 0
	for i := range tokens {
		for j := i; j < len(tokens); j++ {
			if !distinct(tokens[i : j+1]) {
				break
			}
			best = max(best, j-i+1)
		}
	}
	return best
}

func distinct[T comparable](tokens []T) bool {
	seen := make(map[T]bool, len(tokens))
	for _, token := range tokens {
		if seen[token] {
			return false
		}
		seen[token] = true
	}
	return true
}
