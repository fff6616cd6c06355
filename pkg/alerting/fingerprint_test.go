package alerting

import (
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestComputeFingerprint(t *testing.T) {
	a := ComputeFingerprint("inst-1", "critical", "self_harm")
	b := ComputeFingerprint("inst-1", "critical", "self_harm")
	assert.Equal(t, a, b, "same inputs produce the same fingerprint")

	c := ComputeFingerprint("inst-2", "critical", "self_harm")
	assert.NotEqual(t, a, c, "different instance changes the fingerprint")

	d := ComputeFingerprint("inst-1", "warning", "self_harm")
	assert.NotEqual(t, a, d, "different level changes the fingerprint")
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "lowercase", input: "CRITICAL Signal", expected: "critical signal"},
		{name: "collapse whitespace", input: "critical   signal\t\tfired", expected: "critical signal fired"},
		{name: "trim", input: "  hello  ", expected: "hello"},
		{name: "empty string", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeText(tt.input))
		})
	}
}

func TestCollectMessageText(t *testing.T) {
	tests := []struct {
		name     string
		msg      goslack.Message
		expected string
	}{
		{
			name:     "text only",
			msg:      goslack.Message{Msg: goslack.Msg{Text: "fingerprint: abc123"}},
			expected: "fingerprint: abc123",
		},
		{
			name: "text with attachment text",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Text:        "alert",
					Attachments: []goslack.Attachment{{Text: "crisis fired"}},
				},
			},
			expected: "alert crisis fired",
		},
		{
			name:     "empty message",
			msg:      goslack.Message{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, collectMessageText(tt.msg))
		})
	}
}
