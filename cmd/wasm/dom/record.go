package dom

import "github.com/JackWithOneEye/innerer/internal/session"

// RecordObject converts r into the plain object handed to the page callback.
// Only types accepted by js.ValueOf are used.
func RecordObject(r session.Record) map[string]any {
	return map[string]any{
		"tag":       r.Tag,
		"top":       r.Top,
		"right":     r.Right,
		"bottom":    r.Bottom,
		"left":      r.Left,
		"width":     r.Width,
		"height":    r.Height,
		"direction": r.Direction.String(),
		"viewport": map[string]any{
			"status":                 string(r.Viewport.Status),
			"percentageInTransition": r.Viewport.PercentageInTransition,
			"percentageInPosition":   r.Viewport.PercentageInPosition,
			"percentageOutside":      r.Viewport.PercentageOutside,
		},
		"centered": map[string]any{
			"status":     string(r.Centered.Status),
			"percentage": r.Centered.Percentage,
		},
	}
}
