package messages

import "encoding/json"

// Message types
const (
	MessageTypeSpinResult = "spin_result"
)

// Message represents a generic message for serialization/deserialization.
type Message struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// SpinResult is the payload broadcast to feed subscribers when a spin
// resolves.
type SpinResult struct {
	ID          string   `json:"id"`
	Labels      []string `json:"labels"`
	Winner      string   `json:"winner"`
	WinnerIndex int      `json:"winner_index"`
	Rotation    float64  `json:"rotation"`
	Timestamp   int64    `json:"timestamp"`
}

// NewSpinResultMessage wraps a SpinResult in a Message envelope.
func NewSpinResultMessage(result *SpinResult) (*Message, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return &Message{
		Type:    MessageTypeSpinResult,
		Payload: payload,
	}, nil
}
