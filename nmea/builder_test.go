package nmea

import (
	"errors"
	"testing"
)

func TestBuilder_BlankSentence(t *testing.T) {
	b, err := NewBuilder(TalkerGP, SentenceGLL, 6)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	s, err := b.Sentence()
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if s.FieldCount() != 6 {
		t.Fatalf("expected 6 fields, got %d", s.FieldCount())
	}
	for i := 0; i < 6; i++ {
		if s.Has(i) {
			t.Fatalf("blank field %d reports data", i)
		}
	}
	if err := Validate(s.String()); err != nil {
		t.Fatalf("blank sentence serializes invalid: %v", err)
	}
}

func TestBuilder_RejectsUnknownIdsAndBadSize(t *testing.T) {
	if _, err := NewBuilder(TalkerID("ZZ"), SentenceGLL, 6); err == nil {
		t.Fatalf("expected unknown talker error")
	}
	if _, err := NewBuilder(TalkerGP, SentenceID("XYZ"), 6); err == nil {
		t.Fatalf("expected unknown sentence error")
	}
	if _, err := NewBuilder(TalkerGP, SentenceGLL, 0); err == nil {
		t.Fatalf("expected field count error")
	}
}

func TestBuilder_TypedSettersRoundTrip(t *testing.T) {
	b, err := NewBuilder(TalkerGP, SentenceGLL, 6)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := b.SetField(0, "4916.45"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if err := b.SetChar(1, 'N'); err != nil {
		t.Fatalf("SetChar: %v", err)
	}
	if err := b.SetFloat(2, 12311.12); err != nil {
		t.Fatalf("SetFloat: %v", err)
	}
	if err := b.SetChar(3, 'W'); err != nil {
		t.Fatalf("SetChar: %v", err)
	}
	if err := b.SetInt(4, 225444); err != nil {
		t.Fatalf("SetInt: %v", err)
	}
	if err := b.SetChar(5, 'A'); err != nil {
		t.Fatalf("SetChar: %v", err)
	}

	s, err := b.Sentence()
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	again, err := Parse(s.String())
	if err != nil {
		t.Fatalf("re-parse: %v", err)
	}
	if !s.Equal(again) {
		t.Fatalf("builder output does not round trip: %q", s.String())
	}
	if v, err := again.Int(4); err != nil || v != 225444 {
		t.Fatalf("Int(4): got %d, %v", v, err)
	}
	if c, err := again.Char(1); err != nil || c != 'N' {
		t.Fatalf("Char(1): got %q, %v", c, err)
	}
}

func TestBuilder_SetFieldIndexValidation(t *testing.T) {
	b, err := NewBuilder(TalkerGP, SentenceGLL, 6)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := b.SetField(-1, "x"); err == nil {
		t.Fatalf("expected error for negative index")
	}
	if err := b.SetField(6, "x"); err == nil {
		t.Fatalf("expected error for index past field count")
	}
}

func TestBuilder_EmptyValueClearsSlot(t *testing.T) {
	b, err := NewBuilder(TalkerGP, SentenceGLL, 6)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := b.SetField(0, "data"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if err := b.SetField(0, ""); err != nil {
		t.Fatalf("clear: %v", err)
	}
	s, err := b.Sentence()
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if _, err := s.Field(0); !errors.Is(err, ErrNotAvailable) {
		t.Fatalf("cleared field: expected ErrNotAvailable, got %v", err)
	}
}

func TestBuilder_FinalizeRejectsCorruptingFields(t *testing.T) {
	for _, bad := range []string{"a,b", "a*b", "a$b", "a\rb"} {
		b, err := NewBuilder(TalkerGP, SentenceGLL, 2)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if err := b.SetField(0, bad); err != nil {
			t.Fatalf("SetField: %v", err)
		}
		if _, err := b.Sentence(); err == nil {
			t.Fatalf("%q: expected finalize error", bad)
		}
	}
}

func TestBuilder_FinalizeRejectsOverlongResult(t *testing.T) {
	b, err := NewBuilder(TalkerGP, SentenceGLL, 3)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for i := 0; i < 3; i++ {
		if err := b.SetField(i, "0123456789012345678901234567890123456789"); err != nil {
			t.Fatalf("SetField: %v", err)
		}
	}
	if _, err := b.Sentence(); err == nil {
		t.Fatalf("expected length error")
	}
}

func TestEdit_DerivesWithoutMutatingSource(t *testing.T) {
	src, err := Parse(exampleRMC)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	b := Edit(src)
	if err := b.SetChar(1, 'V'); err != nil {
		t.Fatalf("SetChar: %v", err)
	}
	derived, err := b.Sentence()
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if c, _ := derived.Char(1); c != 'V' {
		t.Fatalf("expected derived status V, got %q", c)
	}
	if c, _ := src.Char(1); c != 'A' {
		t.Fatalf("source sentence mutated: %q", c)
	}
	if src.Equal(derived) {
		t.Fatalf("derived sentence should differ from source")
	}
}
