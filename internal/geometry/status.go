package geometry

import "github.com/JackWithOneEye/innerer/internal/direction"

type Status string

const (
	StatusBottomOuter        Status = "bottom-outer"
	StatusTopOuter           Status = "top-outer"
	StatusBottomOuterProcess Status = "bottom-outer-process"
	StatusTopOuterProcess    Status = "top-outer-process"
	StatusBottomLeaving      Status = "bottom-leaving"
	StatusBottomEntering     Status = "bottom-entering"
	StatusTopEntering        Status = "top-entering"
	StatusTopLeaving         Status = "top-leaving"
	StatusEntered            Status = "entered"
	// StatusUndetermined is reported when no band matches, e.g. an element
	// whose edge sits exactly on a viewport edge.
	StatusUndetermined Status = "undetermined"
)

func (s Status) String() string {
	return string(s)
}

func inOpenUnit(v float64) bool {
	return v > 0 && v < 1
}

// DeriveStatus picks the lifecycle status from the outer and transition
// ratios. Bands are checked in order and the first match wins.
func DeriveStatus(outerBelow, outerAbove, belowTransition, aboveTransition float64, dir direction.Direction) Status {
	switch {
	case outerBelow == 0:
		return StatusBottomOuter
	case outerAbove == 0:
		return StatusTopOuter
	case inOpenUnit(outerBelow):
		return StatusBottomOuterProcess
	case inOpenUnit(outerAbove):
		return StatusTopOuterProcess
	case inOpenUnit(belowTransition):
		if dir == direction.Down {
			return StatusBottomLeaving
		}
		return StatusBottomEntering
	case inOpenUnit(aboveTransition):
		if dir == direction.Down {
			return StatusTopEntering
		}
		return StatusTopLeaving
	case belowTransition == 1 && aboveTransition == 1:
		return StatusEntered
	}
	return StatusUndetermined
}
