package geometry

import "math"

// ClampedRatio returns value/total clamped to [0, 1]. Non-positive values
// yield 0. A zero or NaN total is treated as 1.
func ClampedRatio(value, total float64) float64 {
	if total == 0 || math.IsNaN(total) {
		total = 1
	}
	if !(value > 0) {
		return 0
	}
	r := value / total
	switch {
	case math.IsNaN(r), r < 0:
		return 0
	case r > 1:
		return 1
	}
	return r
}

// Round4 rounds v to 4 decimal digits, half away from zero.
func Round4(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*1e4) / 1e4
}

// processElement measures how far rect reaches past the bottom and top
// viewport edges, with offsetHeight widening both edges outward.
func processElement(rect Rect, viewportHeight, offsetHeight float64, inverse bool) (below, above, combined float64) {
	below = ClampedRatio((viewportHeight+offsetHeight)-rect.Top, rect.Height)
	above = ClampedRatio(rect.Bottom+offsetHeight, rect.Height)
	combined = below * above
	if inverse {
		combined = 1 - combined
	}
	return
}

// Transition returns the bottom and top edge ratios of rect and the fraction
// of it that has entered the viewport.
func Transition(rect Rect, viewportHeight float64) (below, above, entered float64) {
	return processElement(rect, viewportHeight, 0, false)
}

// Outside uses the element's own height as a margin around the viewport and
// returns the edge ratios and the fraction still outside that margin.
func Outside(rect Rect, viewportHeight float64) (below, above, outside float64) {
	return processElement(rect, viewportHeight, rect.Height, true)
}
