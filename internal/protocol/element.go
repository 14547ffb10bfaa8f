package protocol

import (
	"encoding/binary"
	"errors"
	"math"

	"github.com/JackWithOneEye/innerer/internal/geometry"
	"github.com/JackWithOneEye/innerer/internal/session"
)

const (
	bytesPerFloat   = 8
	bytesPerRect    = 6 * bytesPerFloat
	maxTagLength    = math.MaxUint16
	maxElementCount = math.MaxUint16
)

var errShort = errors.New("too short")

func putFloat(dest []byte, v float64) {
	binary.BigEndian.PutUint64(dest, math.Float64bits(v))
}

func getFloat(src []byte) float64 {
	return math.Float64frombits(binary.BigEndian.Uint64(src))
}

func elementSize(el session.Element) int {
	return 2 + min(len(el.Tag), maxTagLength) + bytesPerRect
}

func encodeElement(el session.Element, dest []byte) int {
	tag := el.Tag
	if len(tag) > maxTagLength {
		tag = tag[:maxTagLength]
	}
	binary.BigEndian.PutUint16(dest, uint16(len(tag)))
	i := 2
	i += copy(dest[i:], tag)

	r := el.Rect
	for _, v := range [...]float64{r.Top, r.Right, r.Bottom, r.Left, r.Width, r.Height} {
		putFloat(dest[i:], v)
		i += bytesPerFloat
	}
	return i
}

func decodeElement(src []byte) (session.Element, int, error) {
	if len(src) < 2 {
		return session.Element{}, 0, errShort
	}
	tagLen := int(binary.BigEndian.Uint16(src))
	i := 2
	if len(src) < i+tagLen+bytesPerRect {
		return session.Element{}, 0, errShort
	}
	tag := string(src[i : i+tagLen])
	i += tagLen

	var f [6]float64
	for j := range f {
		f[j] = getFloat(src[i:])
		i += bytesPerFloat
	}
	return session.Element{
		Tag: tag,
		Rect: geometry.Rect{
			Top:    f[0],
			Right:  f[1],
			Bottom: f[2],
			Left:   f[3],
			Width:  f[4],
			Height: f[5],
		},
	}, i, nil
}
