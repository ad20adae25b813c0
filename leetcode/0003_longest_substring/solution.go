package longestsubstring

// Window is the inclusive token range [Left, Right] of a run without repeats.
// An empty run is reported as Left 0, Right -1.
type Window struct {
	Left   int `json:"left"`
	Right  int `json:"right"`
	Length int `json:"length"`
}

// LongestUniqueRun returns the length of the longest contiguous run of
// tokens in which no token appears twice.
func LongestUniqueRun[T comparable](tokens []T) int {
	return LongestUniqueWindow(tokens).Length
}

// LongestUniqueWindow runs the same scan as LongestUniqueRun and reports the
// first window that reaches the maximum length.
func LongestUniqueWindow[T comparable](tokens []T) Window {
	seen := make(map[T]struct{})
	best := Window{Left: 0, Right: -1}
	l := 0

	for r, token := range tokens {
		// seen holds exactly tokens[l:r]. If token is in it, the duplicate
		// sits somewhere in [l, r-1], so the loop stops before l reaches r.
		for l < r {
			if _, dup := seen[token]; !dup {
				break
			}
			delete(seen, tokens[l])
			l++
		}
		seen[token] = struct{}{}

		if r-l+1 > best.Length {
			best = Window{Left: l, Right: r, Length: r - l + 1}
		}
	}

	return best
}

// Slice returns the tokens covered by w.
func Slice[T any](tokens []T, w Window) []T {
	if w.Length == 0 {
		return tokens[:0]
	}
	return tokens[w.Left : w.Right+1]
}

// LengthOfLongestSubstring treats every Unicode code point of s as a token.
func LengthOfLongestSubstring(s string) int {
	return LongestUniqueRun([]rune(s))
}

// LengthOfLongestSubstringBytes treats every byte of s as a token.
func LengthOfLongestSubstringBytes(s string) int {
	return LongestUniqueRun([]byte(s))
}

// LongestSubstring returns the first longest substring of s without a
// repeated code point.
func LongestSubstring(s string) string {
	runes := []rune(s)
	return string(Slice(runes, LongestUniqueWindow(runes)))
}
