package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeDeserializeMessage(t *testing.T) {
	result := &SpinResult{
		ID:          "3b40a7a5-61d7-4dd7-9a9c-0f6e36f5e27b",
		Labels:      []string{"A", "B", "C", "D"},
		Winner:      "C",
		WinnerIndex: 2,
		Rotation:    65.188,
		Timestamp:   1700000000000,
	}

	msg, err := NewSpinResultMessage(result)
	require.NoError(t, err)
	assert.Equal(t, MessageTypeSpinResult, msg.Type)

	b, err := SerializeMessage(msg)
	require.NoError(t, err)

	got, err := DeserializeMessage(b)
	require.NoError(t, err)
	assert.Equal(t, msg.Type, got.Type)
	assert.JSONEq(t, string(msg.Payload), string(got.Payload))
}
