package nmea

import (
	"strconv"
	"strings"
)

// Sentence is one parsed NMEA 0183 sentence: resolved talker and sentence
// ids plus the ordered data fields between the address field and the
// checksum. Index 0 is the first data field after the address field. The
// value is immutable; derive a changed sentence through a Builder.
type Sentence struct {
	talker TalkerID
	id     SentenceID
	fields []string
}

// Parse validates a raw line, resolves its ids and tokenizes its data
// fields. A trailing CR/LF terminator is stripped first. Unknown talker or
// sentence codes are rejected before tokenization.
func Parse(raw string) (Sentence, error) {
	raw = strings.TrimRight(raw, "\r\n")
	if err := Validate(raw); err != nil {
		return Sentence{}, err
	}
	talker, err := ParseTalkerID(raw[1 : 1+talkerCodeLength])
	if err != nil {
		return Sentence{}, err
	}
	id, err := ParseSentenceID(raw[1+talkerCodeLength : 1+addressLength])
	if err != nil {
		return Sentence{}, err
	}
	return Sentence{talker: talker, id: id, fields: tokenize(raw)}, nil
}

// tokenize strips the address field and checksum suffix and splits what
// remains on the field delimiter. Empty entries survive: an empty field is
// explicit "no data", not absence of a slot.
func tokenize(raw string) []string {
	body := raw[1+addressLength:]
	if star := strings.IndexByte(body, ChecksumDelimiter); star != -1 {
		body = body[:star]
	}
	if body == "" {
		return nil
	}
	// body begins with the delimiter separating it from the address field
	return strings.Split(body[1:], ",")
}

// TalkerID returns the originating device class.
func (s Sentence) TalkerID() TalkerID { return s.talker }

// ID returns the sentence type.
func (s Sentence) ID() SentenceID { return s.id }

// FieldCount returns the number of data fields, excluding the address field
// and checksum.
func (s Sentence) FieldCount() int { return len(s.fields) }

// Fields returns a copy of the data fields.
func (s Sentence) Fields() []string {
	return append([]string(nil), s.fields...)
}

// Field returns the raw text of the data field at the given index. An empty
// field, or an index past the fields the sentence carries, yields
// ErrNotAvailable.
func (s Sentence) Field(index int) (string, error) {
	if index < 0 || index >= len(s.fields) || s.fields[index] == "" {
		return "", ErrNotAvailable
	}
	return s.fields[index], nil
}

// Has reports whether Field would succeed for the given index. It never
// errors.
func (s Sentence) Has(index int) bool {
	_, err := s.Field(index)
	return err == nil
}

// Char returns a single-character field.
func (s Sentence) Char(index int) (byte, error) {
	v, err := s.Field(index)
	if err != nil {
		return 0, err
	}
	if len(v) != 1 {
		return 0, &FieldError{Index: index, Value: v, Want: "single character"}
	}
	return v[0], nil
}

// Int returns a strict base-10 integer field.
func (s Sentence) Int(index int) (int, error) {
	v, err := s.Field(index)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, &FieldError{Index: index, Value: v, Want: "integer", Err: err}
	}
	return n, nil
}

// Float returns a strict decimal field.
func (s Sentence) Float(index int) (float64, error) {
	v, err := s.Field(index)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, &FieldError{Index: index, Value: v, Want: "decimal number", Err: err}
	}
	return f, nil
}

// String renders the sentence as a transmittable line with a freshly
// computed checksum, without the CR/LF terminator.
func (s Sentence) String() string {
	var sb strings.Builder
	sb.Grow(MaxLength)
	sb.WriteByte(Begin)
	sb.WriteString(string(s.talker))
	sb.WriteString(string(s.id))
	for _, f := range s.fields {
		sb.WriteByte(FieldDelimiter)
		sb.WriteString(f)
	}
	return AppendChecksum(sb.String())
}

// Equal reports whether two sentences serialize to the same line.
func (s Sentence) Equal(o Sentence) bool {
	return s.String() == o.String()
}
