package geometry

import (
	"math"

	"github.com/JackWithOneEye/innerer/internal/direction"
)

type ViewportResult struct {
	Status                 Status  `json:"status"`
	PercentageInTransition float64 `json:"percentageInTransition"`
	PercentageInPosition   float64 `json:"percentageInPosition"`
	PercentageOutside      float64 `json:"percentageOutside"`
}

type CenterStatus string

const (
	BelowCenter CenterStatus = "below_center"
	AboveCenter CenterStatus = "above_center"
)

type CenteredResult struct {
	Status     CenterStatus `json:"status"`
	Percentage float64      `json:"percentage"`
}

// Classify computes the viewport status of rect for one tick.
func Classify(rect Rect, viewportHeight float64, dir direction.Direction) ViewportResult {
	belowTransition, aboveTransition, inTransition := Transition(rect, viewportHeight)

	// ceil gates the position term: any overlap switches it on
	inPosition := math.Ceil(inTransition) * (1 - ClampedRatio(viewportHeight-rect.Top, viewportHeight))

	outerBelow, outerAbove, inOuter := Outside(rect, viewportHeight)

	return ViewportResult{
		Status:                 DeriveStatus(outerBelow, outerAbove, belowTransition, aboveTransition, dir),
		PercentageInTransition: Round4(inTransition),
		PercentageInPosition:   Round4(inPosition),
		PercentageOutside:      Round4(inOuter),
	}
}

// Center reports how close the midpoint of rect is to the vertical center of
// the viewport. Percentage is 1 when the midpoint sits exactly on it.
func Center(rect Rect, viewportHeight float64) CenteredResult {
	center := viewportHeight / 2
	mid := rect.Top + rect.Height/2
	belowCenter := ClampedRatio(viewportHeight-mid, center)
	aboveCenter := ClampedRatio(mid, center)

	status := AboveCenter
	if belowCenter < 1 {
		status = BelowCenter
	}
	return CenteredResult{
		Status:     status,
		Percentage: Round4(belowCenter * aboveCenter),
	}
}
