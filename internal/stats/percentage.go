package stats

import "math"

// Percentage round(part/total*100)，total 为 0 时返回 0
func Percentage(part, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
