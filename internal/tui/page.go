package tui

import (
	"github.com/JackWithOneEye/innerer/internal/geometry"
	"github.com/JackWithOneEye/innerer/internal/session"
)

// block is a tracked element on the virtual page; one row is one pixel.
type block struct {
	tag    string
	top    float64
	height float64
}

type page struct {
	blocks []block
	height float64
}

// gap rows between blocks
const blockGap = 6

func newPage(tags []string, heights []float64) page {
	p := page{}
	top := float64(blockGap)
	for i, tag := range tags {
		h := heights[i%len(heights)]
		p.blocks = append(p.blocks, block{tag: tag, top: top, height: h})
		top += h + blockGap
	}
	p.height = top
	return p
}

func defaultPage() page {
	return newPage(
		[]string{"header", "hero", "feature-a", "feature-b", "quote", "gallery", "pricing", "faq", "footer"},
		[]float64{4, 12, 8, 8, 3, 20, 10, 16, 5},
	)
}

// elements returns the rectangles of all blocks relative to a viewport
// scrolled to offset.
func (p page) elements(offset, width float64) []session.Element {
	els := make([]session.Element, len(p.blocks))
	for i, b := range p.blocks {
		els[i] = session.Element{
			Tag:  b.tag,
			Rect: geometry.NewRect(0, b.top-offset, width, b.height),
		}
	}
	return els
}

// blockAt returns the index of the block covering document row y, or -1.
func (p page) blockAt(y float64) int {
	for i, b := range p.blocks {
		if y >= b.top && y < b.top+b.height {
			return i
		}
	}
	return -1
}

func (p page) maxOffset(viewportHeight float64) float64 {
	return max(0, p.height-viewportHeight)
}
