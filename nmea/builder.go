package nmea

import (
	"fmt"
	"strconv"
)

// Builder assembles a new Sentence or derives one from an existing value.
// Setters write raw field slots without validation; Sentence serializes the
// result, appends the checksum and re-validates the whole structure, so a
// malformed edit surfaces at finalization instead of producing a bad line.
type Builder struct {
	talker TalkerID
	id     SentenceID
	fields []string
}

// NewBuilder starts a blank sentence with the given ids and a fixed number
// of data fields, all empty. Both codes must be in the vocabulary.
func NewBuilder(talker TalkerID, id SentenceID, fieldCount int) (*Builder, error) {
	if fieldCount < 1 {
		return nil, fmt.Errorf("nmea: sentence needs at least one data field")
	}
	if _, err := ParseTalkerID(string(talker)); err != nil {
		return nil, err
	}
	if _, err := ParseSentenceID(string(id)); err != nil {
		return nil, err
	}
	return &Builder{talker: talker, id: id, fields: make([]string, fieldCount)}, nil
}

// Edit starts a builder from an existing sentence. The source sentence is
// not touched.
func Edit(s Sentence) *Builder {
	return &Builder{talker: s.talker, id: s.id, fields: s.Fields()}
}

// SetField writes raw text into a field slot. An empty value clears the
// slot, so subsequent reads of it report no data.
func (b *Builder) SetField(index int, value string) error {
	if index < 0 || index >= len(b.fields) {
		return fmt.Errorf("nmea: field index %d out of range [0,%d)", index, len(b.fields))
	}
	b.fields[index] = value
	return nil
}

// SetChar writes a single-character field.
func (b *Builder) SetChar(index int, value byte) error {
	return b.SetField(index, string(rune(value)))
}

// SetInt writes an integer field.
func (b *Builder) SetInt(index int, value int) error {
	return b.SetField(index, strconv.Itoa(value))
}

// SetFloat writes a decimal field in the shortest exact form.
func (b *Builder) SetFloat(index int, value float64) error {
	return b.SetField(index, strconv.FormatFloat(value, 'f', -1, 64))
}

// Sentence finalizes the builder into an immutable Sentence. Fields that
// would corrupt the line (embedded delimiters, reserved or unprintable
// characters) and an over-length serialized form are rejected here.
func (b *Builder) Sentence() (Sentence, error) {
	for i, f := range b.fields {
		for j := 0; j < len(f); j++ {
			c := f[j]
			if c < 0x20 || c > 0x7e || c == Begin || c == FieldDelimiter || c == ChecksumDelimiter {
				return Sentence{}, &FieldError{Index: i, Value: f, Want: "printable text without reserved characters"}
			}
		}
	}
	s := Sentence{talker: b.talker, id: b.id, fields: append([]string(nil), b.fields...)}
	if err := Validate(s.String()); err != nil {
		return Sentence{}, err
	}
	return s, nil
}
