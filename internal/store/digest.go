package store

import (
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/text/unicode/norm"

	"github.com/roach88/swaycmd/internal/sway"
)

// DomainBatch prefixes batch digests. The version suffix allows changing
// the normalization later.
const DomainBatch = "swaycmd/batch/v1"

// Digest identifies a payload up to Unicode normalization and whitespace:
// SHA256(DomainBatch + 0x00 + NormalizeWhitespace(NFC(payload))).
//
// Rendered lists keep empty positions for omitted arguments, so two
// payloads that differ only in spacing share a digest.
func Digest(payload string) string {
	canonical := sway.NormalizeWhitespace(norm.NFC.String(payload))

	h := sha256.New()
	h.Write([]byte(DomainBatch))
	h.Write([]byte{0x00})
	h.Write([]byte(canonical))
	return hex.EncodeToString(h.Sum(nil))
}
