package validpalindrome

import (
	"unicode"

	"golang.org/x/text/cases"
)

// IsPalindrome reports whether s reads the same in both directions once case
// is folded and everything except letters and digits is dropped.
func IsPalindrome(s string) bool {
	folded := cases.Fold().String(s)

	chars := make([]rune, 0, len(folded))
	for _, c := range folded {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			chars = append(chars, c)
		}
	}

	for i, j := 0, len(chars)-1; i < j; i, j = i+1, j-1 {
		if chars[i] != chars[j] {
			return false
		}
	}

	return true
}
