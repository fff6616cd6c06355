package alerting

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strings"

	goslack "github.com/slack-go/slack"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// ComputeFingerprint derives a stable dedup key for a crisis signal from
// its routing fields only — never from user text, so the fingerprint
// itself can safely appear in a Slack message. Signals with the same
// instance, level, and category thread onto the same alert.
func ComputeFingerprint(instanceID, level, category string) string {
	h := sha256.New()
	h.Write([]byte(instanceID))
	h.Write([]byte{0})
	h.Write([]byte(level))
	h.Write([]byte{0})
	h.Write([]byte(category))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

func normalizeText(s string) string {
	s = strings.ToLower(s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

func collectMessageText(msg goslack.Message) string {
	var parts []string
	if msg.Text != "" {
		parts = append(parts, msg.Text)
	}
	for _, att := range msg.Attachments {
		if att.Text != "" {
			parts = append(parts, att.Text)
		}
		if att.Fallback != "" {
			parts = append(parts, att.Fallback)
		}
	}
	return strings.Join(parts, " ")
}
