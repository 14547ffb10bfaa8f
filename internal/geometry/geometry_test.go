package geometry

import (
	"math"
	"testing"

	"github.com/JackWithOneEye/innerer/internal/direction"
	"github.com/stretchr/testify/assert"
)

const vh = 800.0

func rectAt(top, height float64) Rect {
	return NewRect(0, top, 300, height)
}

func TestClampedRatio(t *testing.T) {
	tests := []struct {
		name         string
		value, total float64
		want         float64
	}{
		{"half", 50, 100, 0.5},
		{"saturates high", 250, 100, 1},
		{"negative value", -20, 100, 0},
		{"zero value", 0, 100, 0},
		{"zero total falls back to one", 0.25, 0, 0.25},
		{"zero total saturates", 40, 0, 1},
		{"nan total", 0.5, math.NaN(), 0.5},
		{"negative total", 50, -100, 0},
		{"nan value", math.NaN(), 100, 0},
		{"infinite total", 50, math.Inf(1), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampedRatio(tt.value, tt.total))
		})
	}
}

func TestClampedRatioIdempotent(t *testing.T) {
	for _, x := range []float64{-30, 0, 12.5, 50, 100, 900} {
		first := ClampedRatio(x, 100)
		assert.Equal(t, first, ClampedRatio(first*100, 100), "x=%v", x)
	}
}

func TestRound4(t *testing.T) {
	assert.Equal(t, 0.1235, Round4(0.12346))
	assert.Equal(t, -0.1235, Round4(-0.12346))
	assert.Equal(t, 0.3333, Round4(1.0/3))
	assert.Equal(t, 0.0, Round4(math.NaN()))
}

func TestClassifyBottomOuter(t *testing.T) {
	r := Classify(Rect{Top: 2000, Bottom: 2100, Height: 100}, vh, direction.Down)
	assert.Equal(t, StatusBottomOuter, r.Status)
	assert.Equal(t, 0.0, r.PercentageInTransition)
	assert.Equal(t, 0.0, r.PercentageInPosition)
	assert.Equal(t, 1.0, r.PercentageOutside)
}

func TestClassifyTopOuter(t *testing.T) {
	r := Classify(rectAt(-500, 100), vh, direction.Up)
	assert.Equal(t, StatusTopOuter, r.Status)
	assert.Equal(t, 1.0, r.PercentageOutside)
}

func TestClassifyFillsViewport(t *testing.T) {
	r := Classify(rectAt(0, vh), vh, direction.Stop)
	assert.Equal(t, StatusEntered, r.Status)
	assert.Equal(t, 1.0, r.PercentageInTransition)
	assert.Equal(t, 0.0, r.PercentageOutside)
	// top edge sits on the viewport top
	assert.Equal(t, 0.0, r.PercentageInPosition)
}

func TestClassifyBands(t *testing.T) {
	tests := []struct {
		name string
		top  float64
		dir  direction.Direction
		want Status
	}{
		// margin below the viewport, half way in
		{"bottom outer process", 850, direction.Down, StatusBottomOuterProcess},
		{"top outer process", -150, direction.Up, StatusTopOuterProcess},
		{"bottom leaving", 750, direction.Down, StatusBottomLeaving},
		{"bottom entering", 750, direction.Up, StatusBottomEntering},
		{"bottom entering on stop", 750, direction.Stop, StatusBottomEntering},
		{"top entering", -50, direction.Down, StatusTopEntering},
		{"top leaving", -50, direction.Up, StatusTopLeaving},
		{"entered", 300, direction.Down, StatusEntered},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Classify(rectAt(tt.top, 100), vh, tt.dir)
			assert.Equal(t, tt.want, r.Status)
		})
	}
}

func TestClassifyPercentages(t *testing.T) {
	r := Classify(rectAt(750, 100), vh, direction.Down)
	assert.Equal(t, 0.5, r.PercentageInTransition)
	assert.Equal(t, 0.0, r.PercentageOutside)
	assert.InDelta(t, 0.9375, r.PercentageInPosition, 1e-9)

	r = Classify(rectAt(850, 100), vh, direction.Down)
	assert.Equal(t, 0.0, r.PercentageInTransition)
	assert.Equal(t, 0.0, r.PercentageInPosition)
	assert.Equal(t, 0.5, r.PercentageOutside)
}

func TestClassifyEdgeIsUndetermined(t *testing.T) {
	r := Classify(rectAt(vh, 100), vh, direction.Down)
	assert.Equal(t, StatusUndetermined, r.Status)

	r = Classify(rectAt(-100, 100), vh, direction.Down)
	assert.Equal(t, StatusUndetermined, r.Status)
}

func TestClassifyZeroHeight(t *testing.T) {
	assert.NotPanics(t, func() {
		r := Classify(rectAt(100, 0), vh, direction.Down)
		assert.Equal(t, StatusEntered, r.Status)

		r = Classify(rectAt(900, 0), vh, direction.Down)
		assert.Equal(t, StatusBottomOuter, r.Status)
	})
}

func TestClassifyMalformed(t *testing.T) {
	for _, h := range []float64{-50, math.NaN(), math.Inf(1)} {
		assert.NotPanics(t, func() {
			r := Classify(rectAt(100, h), vh, direction.Down)
			assert.NotEmpty(t, r.Status)
			for _, p := range []float64{r.PercentageInTransition, r.PercentageInPosition, r.PercentageOutside} {
				assert.GreaterOrEqual(t, p, 0.0)
				assert.LessOrEqual(t, p, 1.0)
			}
		}, "height=%v", h)
	}
}

func TestClassifyDeterministic(t *testing.T) {
	rect := rectAt(123.456, 78.9)
	assert.Equal(t, Classify(rect, vh, direction.Up), Classify(rect, vh, direction.Up))
	assert.Equal(t, Center(rect, vh), Center(rect, vh))
}

func TestCenter(t *testing.T) {
	r := Center(rectAt(350, 100), vh)
	assert.Equal(t, AboveCenter, r.Status)
	assert.Equal(t, 1.0, r.Percentage)

	r = Center(rectAt(550, 100), vh)
	assert.Equal(t, BelowCenter, r.Status)
	assert.Equal(t, 0.5, r.Percentage)

	r = Center(rectAt(150, 100), vh)
	assert.Equal(t, AboveCenter, r.Status)
	assert.Equal(t, 0.5, r.Percentage)

	r = Center(rectAt(2000, 100), vh)
	assert.Equal(t, BelowCenter, r.Status)
	assert.Equal(t, 0.0, r.Percentage)
}

func TestDeriveStatusOrder(t *testing.T) {
	// outer bands win over transitions
	assert.Equal(t, StatusBottomOuter, DeriveStatus(0, 0, 0.5, 0.5, direction.Down))
	assert.Equal(t, StatusTopOuter, DeriveStatus(1, 0, 0.5, 0.5, direction.Down))
	assert.Equal(t, StatusBottomOuterProcess, DeriveStatus(0.3, 0.3, 0.5, 0.5, direction.Down))
	assert.Equal(t, StatusBottomLeaving, DeriveStatus(1, 1, 0.5, 0.5, direction.Down))
	assert.Equal(t, StatusUndetermined, DeriveStatus(1, 1, 0, 1, direction.Down))
}

func TestRectOffset(t *testing.T) {
	r := NewRect(10, 100, 200, 50).Offset(-30)
	assert.Equal(t, Rect{Top: 70, Right: 210, Bottom: 120, Left: 10, Width: 200, Height: 50}, r)
}
