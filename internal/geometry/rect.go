// Package geometry classifies the vertical position of an element rectangle
// relative to the viewport.
package geometry

// Rect is an element bounding box in pixels relative to the top-left corner
// of the visible viewport. Top and Bottom are negative above the viewport and
// exceed the viewport height below it.
type Rect struct {
	Top    float64 `json:"top"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Left   float64 `json:"left"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRect builds a Rect from its top-left corner and size.
func NewRect(left, top, width, height float64) Rect {
	return Rect{
		Top:    top,
		Right:  left + width,
		Bottom: top + height,
		Left:   left,
		Width:  width,
		Height: height,
	}
}

// Offset returns rect moved vertically by dy.
func (r Rect) Offset(dy float64) Rect {
	r.Top += dy
	r.Bottom += dy
	return r
}
