package containerwithmostwater

// MaxArea returns the most water two of the vertical lines can hold together
// with the x-axis. Fewer than two lines hold nothing.
func MaxArea(heights []int) int {
	l, r := 0, len(heights)-1
	res := 0

	for l < r {
		area := min(heights[l], heights[r]) * (r - l)
		res = max(res, area)

		// Moving the taller side can only shrink the width without raising the
		// limiting height.
		if heights[l] < heights[r] {
			l += 1
		} else {
			r -= 1
		}
	}

	return res
}
