package aoc2022day06

const (
	PacketMarkerSize  = 4
	MessageMarkerSize = 14
)

// MarkerEnd returns how many tokens have been read when the last size tokens
// are all distinct for the first time, or -1 if that never happens.
// size must be positive.
func MarkerEnd[T comparable](tokens []T, size int) int {
	if size <= 0 || size > len(tokens) {
		return -1
	}

	counts := make(map[T]int, size)
	// number of token values held more than once in the current window
	dups := 0

	for r, token := range tokens {
		counts[token]++
		if counts[token] == 2 {
			dups++
		}

		if r >= size {
			old := tokens[r-size]
			counts[old]--
			if counts[old] == 1 {
				dups--
			}
		}

		if r >= size-1 && dups == 0 {
			return r + 1
		}
	}

	return -1
}

func StartOfPacket(s string) int {
	return MarkerEnd([]rune(s), PacketMarkerSize)
}

func StartOfMessage(s string) int {
	return MarkerEnd([]rune(s), MessageMarkerSize)
}
