// Package session drives one tracking session: it advances the scroll
// direction once per tick and classifies every tracked element.
package session

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/JackWithOneEye/innerer/internal/direction"
	"github.com/JackWithOneEye/innerer/internal/geometry"
	"github.com/JackWithOneEye/innerer/internal/lrucache"
)

var (
	ErrNotMounted      = errors.New("session not mounted")
	ErrInvalidViewport = errors.New("viewport height must be positive")
)

type Element struct {
	Tag  string
	Rect geometry.Rect
}

// Frame is everything read from the host on one tick.
type Frame struct {
	ViewportHeight float64
	ScrollOffset   float64
	Elements       []Element
}

type Record struct {
	Tag       string                  `json:"tag"`
	Top       float64                 `json:"top"`
	Right     float64                 `json:"right"`
	Bottom    float64                 `json:"bottom"`
	Left      float64                 `json:"left"`
	Width     float64                 `json:"width"`
	Height    float64                 `json:"height"`
	Direction direction.Direction     `json:"direction"`
	Viewport  geometry.ViewportResult `json:"viewport"`
	Centered  geometry.CenteredResult `json:"centered"`
}

type cacheKey struct {
	rect           geometry.Rect
	viewportHeight float64
	dir            direction.Direction
}

type classification struct {
	viewport geometry.ViewportResult
	centered geometry.CenteredResult
}

type Option func(*Session)

func WithConvention(c direction.Convention) Option {
	return func(s *Session) {
		s.convention = c
	}
}

// WithCacheSize memoizes classifications. Sizes below 1 disable the cache.
func WithCacheSize(size int) Option {
	return func(s *Session) {
		s.cacheSize = size
	}
}

type Session struct {
	mu         sync.Mutex
	convention direction.Convention
	cacheSize  int
	tracker    *direction.Tracker
	cache      lrucache.LruCache[cacheKey, classification]
}

func New(opts ...Option) *Session {
	s := &Session{convention: direction.DefaultConvention}
	for _, opt := range opts {
		opt(s)
	}
	s.tracker = direction.NewTracker(s.convention)
	if s.cacheSize > 0 {
		s.cache = lrucache.NewLruCache[cacheKey, classification](s.cacheSize)
	}
	return s
}

// Mount stores the first scroll offset. No direction is derived from it.
func (s *Session) Mount(offset float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.Init(offset)
}

func (s *Session) Unmount() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tracker.Reset()
}

func (s *Session) Mounted() bool {
	return s.tracker.Initialized()
}

// Tick advances the direction and emits one record per element, in order.
// Ticks are serialized; emit runs while the session is locked.
func (s *Session) Tick(f Frame, emit func(Record)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir, err := s.advance(f)
	if err != nil {
		return err
	}
	for _, el := range f.Elements {
		emit(s.record(el, f.ViewportHeight, dir))
	}
	return nil
}

// Records advances the direction immediately and returns a single-use
// sequence that classifies elements as it is consumed. The elements are
// copied, so f may be reused once Records returns. Only the first range over
// the sequence yields records, even across goroutines.
func (s *Session) Records(f Frame) (iter.Seq[Record], error) {
	s.mu.Lock()
	dir, err := s.advance(f)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	elements := slices.Clone(f.Elements)
	viewportHeight := f.ViewportHeight
	var consumed atomic.Bool
	return func(yield func(Record) bool) {
		if consumed.Swap(true) {
			return
		}
		for _, el := range elements {
			if !yield(s.record(el, viewportHeight, dir)) {
				return
			}
		}
	}, nil
}

func (s *Session) advance(f Frame) (direction.Direction, error) {
	if !(f.ViewportHeight > 0) || math.IsInf(f.ViewportHeight, 1) {
		return direction.Stop, fmt.Errorf("%w: %v", ErrInvalidViewport, f.ViewportHeight)
	}
	dir, err := s.tracker.Advance(f.ScrollOffset)
	if errors.Is(err, direction.ErrNotInitialized) {
		return dir, ErrNotMounted
	}
	return dir, err
}

func (s *Session) record(el Element, viewportHeight float64, dir direction.Direction) Record {
	c := s.classify(el.Rect, viewportHeight, dir)
	return Record{
		Tag:       el.Tag,
		Top:       finite(el.Rect.Top),
		Right:     finite(el.Rect.Right),
		Bottom:    finite(el.Rect.Bottom),
		Left:      finite(el.Rect.Left),
		Width:     finite(el.Rect.Width),
		Height:    finite(el.Rect.Height),
		Direction: dir,
		Viewport:  c.viewport,
		Centered:  c.centered,
	}
}

func (s *Session) classify(rect geometry.Rect, viewportHeight float64, dir direction.Direction) classification {
	key := cacheKey{rect: rect, viewportHeight: viewportHeight, dir: dir}
	// NaN keys never match and could not be evicted from the map
	cacheable := s.cache != nil && !hasNaN(rect)
	if cacheable {
		if c, ok := s.cache.Get(key); ok {
			return c
		}
	}
	c := classification{
		viewport: geometry.Classify(rect, viewportHeight, dir),
		centered: geometry.Center(rect, viewportHeight),
	}
	if cacheable {
		s.cache.Add(key, c)
	}
	return c
}

// finite reports non-finite geometry as 0 so every record stays encodable.
func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func hasNaN(r geometry.Rect) bool {
	for _, v := range [...]float64{r.Top, r.Right, r.Bottom, r.Left, r.Width, r.Height} {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
