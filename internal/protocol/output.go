package protocol

import (
	"encoding/json"

	"github.com/JackWithOneEye/innerer/internal/session"
)

// Output is sent to the client once per tick.
type Output struct {
	Records []session.Record `json:"records"`
	Error   string           `json:"error,omitempty"`
}

func (o *Output) Encode() ([]byte, error) {
	return json.Marshal(o)
}

func (o *Output) Decode(b []byte) error {
	return json.Unmarshal(b, o)
}
