package realtime

import (
	"encoding/json"

	"alertstream/internal/errors"
)

const (
	handshakeType    = "connected"
	handshakeMessage = "SSE Connection established"
)

var (
	heartbeatFrame = []byte(": heartbeat\n\n")
	dataPrefix     = []byte("data: ")
	frameEnd       = []byte("\n\n")
)

// Handshake is the first event written to every new push connection.
type Handshake struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// EncodeEvent renders v as a single "data:" frame. JSON encoding never emits raw
// newlines, so the payload always fits on one data line.
func EncodeEvent(v any) ([]byte, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode event")
	}

	frame := make([]byte, 0, len(dataPrefix)+len(payload)+len(frameEnd))
	frame = append(frame, dataPrefix...)
	frame = append(frame, payload...)
	frame = append(frame, frameEnd...)

	return frame, nil
}

func handshakeFrame() []byte {
	frame, _ := EncodeEvent(Handshake{Type: handshakeType, Message: handshakeMessage})

	return frame
}
