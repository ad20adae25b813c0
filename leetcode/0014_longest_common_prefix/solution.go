package longestcommonprefix

// LongestCommonPrefix scans the first word column by column and stops at the
// first position where any other word ends or differs.
func LongestCommonPrefix(words []string) string {
	if len(words) == 0 {
		return ""
	}

	first := words[0]
	for i := 0; i < len(first); i++ {
		for _, word := range words[1:] {
			if i == len(word) || word[i] != first[i] {
				return first[:i]
			}
		}
	}

	return first
}
