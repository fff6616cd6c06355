package axiom

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// GenesisHash computes the SHA-256 of the constitution document, after
// normalizing it to LF line endings, so genesis hash validity never
// depends on the checkout's line-ending convention.
func GenesisHash(constitutionText string) string {
	normalized := normalizeLF(constitutionText)
	sum := sha256.Sum256([]byte(normalized))
	return hex.EncodeToString(sum[:])
}

func normalizeLF(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return text
}

// VerifyGenesis compares a computed hash against a published constant. A
// mismatch means the instance must enter bootstrap mode: a conforming
// pipeline refuses non-informational requests until resolved.
func VerifyGenesis(constitutionText, publishedHash string) bool {
	return GenesisHash(constitutionText) == publishedHash
}
