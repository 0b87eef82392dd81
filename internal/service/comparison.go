package service

import "math"

// GrowthRate computes the percentage change of cur versus the same period one
// year prior. A missing record counts as 0, which the zero rules absorb:
//
//   - prev > 0:  (cur-prev)/prev * 100
//   - prev == 0, cur > 0:  100
//   - prev == 0, cur == 0: 0
//   - prev < 0:  -100 when cur == 0, else (cur-prev)/|prev| * 100
func GrowthRate(cur, prev float64) float64 {
	switch {
	case prev > 0:
		return (cur - prev) / prev * 100
	case prev == 0 && cur > 0:
		return 100
	case prev == 0 && cur == 0:
		return 0
	default:
		if cur == 0 {
			return -100
		}
		return (cur - prev) / math.Abs(prev) * 100
	}
}
