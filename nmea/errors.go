package nmea

import (
	"errors"
	"fmt"
)

// ErrNotAvailable reports a data field that is syntactically present but
// empty, or a trailing field the sentence does not carry at all. It is
// recoverable: probing with Has first avoids it entirely.
var ErrNotAvailable = errors.New("nmea: data not available")

// InvalidSentenceError reports a structural violation in a raw line: bad
// start marker, over-long line, malformed address field or checksum section,
// or a checksum mismatch. The line is unusable.
type InvalidSentenceError struct {
	Data   string
	Reason string
}

func (e *InvalidSentenceError) Error() string {
	return fmt.Sprintf("nmea: invalid sentence [%s]: %s", e.Data, e.Reason)
}

// UnsupportedIDError reports a talker or sentence code outside the known
// vocabulary. Callers over a stream typically skip the line and continue.
type UnsupportedIDError struct {
	Kind string // "talker" or "sentence"
	Code string
}

func (e *UnsupportedIDError) Error() string {
	return fmt.Sprintf("nmea: unsupported %s id [%s]", e.Kind, e.Code)
}

// FieldError reports a data field whose text could not convert to the
// requested form. Err carries the underlying conversion failure, when any.
type FieldError struct {
	Index int
	Value string
	Want  string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("nmea: field %d [%s]: %v", e.Index, e.Value, e.Err)
	}
	return fmt.Sprintf("nmea: field %d [%s]: expected %s", e.Index, e.Value, e.Want)
}

func (e *FieldError) Unwrap() error { return e.Err }
