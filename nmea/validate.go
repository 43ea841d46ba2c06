package nmea

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Protocol constants from NMEA 0183. MaxLength excludes the CR/LF
// terminator, which is never part of the in-memory sentence value.
const (
	Begin             = '$'
	FieldDelimiter    = ','
	ChecksumDelimiter = '*'
	MaxLength         = 82

	talkerCodeLength   = 2
	sentenceCodeLength = 3
	addressLength      = talkerCodeLength + sentenceCodeLength
)

// Validate checks the structure of a raw line: start marker, length bound,
// address field shape, body charset and, when a checksum section is present,
// its format and value. Checksum hex digits are accepted in either case. Ids
// and fields are not resolved here.
func Validate(raw string) error {
	if raw == "" || raw[0] != Begin {
		return &InvalidSentenceError{Data: raw, Reason: "missing start marker"}
	}
	if len(raw) > MaxLength {
		return &InvalidSentenceError{Data: raw, Reason: fmt.Sprintf("line exceeds %d characters", MaxLength)}
	}
	if len(raw) < 1+addressLength {
		return &InvalidSentenceError{Data: raw, Reason: "truncated address field"}
	}
	for i := 1; i <= addressLength; i++ {
		if c := raw[i]; c < 'A' || c > 'Z' {
			return &InvalidSentenceError{Data: raw, Reason: "malformed address field"}
		}
	}
	if len(raw) > 1+addressLength {
		if c := raw[1+addressLength]; c != FieldDelimiter && c != ChecksumDelimiter {
			return &InvalidSentenceError{Data: raw, Reason: "malformed address field"}
		}
	}

	star := strings.LastIndexByte(raw, ChecksumDelimiter)
	if star != -1 {
		if len(raw) != star+3 {
			return &InvalidSentenceError{Data: raw, Reason: "checksum section must be two hex digits"}
		}
		want, err := hex.DecodeString(raw[star+1:])
		if err != nil {
			return &InvalidSentenceError{Data: raw, Reason: "checksum section must be two hex digits"}
		}
		if got := Checksum(raw[1:star]); got != want[0] {
			return &InvalidSentenceError{Data: raw, Reason: fmt.Sprintf("checksum mismatch, calculated %02X", got)}
		}
	}

	body := raw[1:]
	if star != -1 {
		body = raw[1:star]
	}
	for i := 0; i < len(body); i++ {
		if c := body[i]; c < 0x20 || c > 0x7e || c == Begin || c == ChecksumDelimiter {
			return &InvalidSentenceError{Data: raw, Reason: "reserved or unprintable character in body"}
		}
	}
	return nil
}
