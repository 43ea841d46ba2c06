package nmea

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_AcceptsChecksummedSentence(t *testing.T) {
	if err := Validate("$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestValidate_AcceptsLowercaseChecksumHex(t *testing.T) {
	if err := Validate("$GPRMC,120044,A,6011.552,N,02501.941,E,000.0,360.0,160705,006.1,E*7c"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if err := Validate("$GPGLL,4916.45,N,12311.12,W,225444,A*3a"); err == nil {
		t.Fatalf("expected mismatch for wrong lowercase checksum")
	}
}

func TestValidate_AcceptsMissingChecksumSection(t *testing.T) {
	// The checksum section is optional; only its format is mandatory when
	// present.
	if err := Validate("$GPGLL,4916.45,N,12311.12,W,225444,A"); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
}

func TestValidate_RejectsMissingStartMarker(t *testing.T) {
	err := Validate("GPRMC,120044,A*00")
	var ise *InvalidSentenceError
	if !errors.As(err, &ise) {
		t.Fatalf("expected InvalidSentenceError, got %v", err)
	}
}

func TestValidate_RejectsOverlongLine(t *testing.T) {
	raw := "$GPRMC," + strings.Repeat("9", 80)
	if len(raw) <= MaxLength {
		t.Fatalf("fixture too short: %d", len(raw))
	}
	if err := Validate(raw); err == nil {
		t.Fatalf("expected error for %d character line", len(raw))
	}
}

func TestValidate_RejectsMalformedAddressField(t *testing.T) {
	for _, raw := range []string{
		"$gprmc,120044,A",
		"$GPR1C,120044,A",
		"$GPRM",
		"$GPRMCX,120044,A",
	} {
		var ise *InvalidSentenceError
		if err := Validate(raw); !errors.As(err, &ise) {
			t.Fatalf("%q: expected InvalidSentenceError, got %v", raw, err)
		}
	}
}

func TestValidate_RejectsMalformedChecksumSection(t *testing.T) {
	for _, raw := range []string{
		"$GPGLL,4916.45,N,12311.12,W,225444,A*3",
		"$GPGLL,4916.45,N,12311.12,W,225444,A*312",
		"$GPGLL,4916.45,N,12311.12,W,225444,A*ZZ",
	} {
		if err := Validate(raw); err == nil {
			t.Fatalf("%q: expected error", raw)
		}
	}
}

func TestValidate_RejectsChecksumMismatch(t *testing.T) {
	good := line("GPRMC,120044,A,6011.552,N,02501.941,E,000.0,360.0,160705,006.1,E,A")
	bad := good[:len(good)-2] + "00"
	err := Validate(bad)
	var ise *InvalidSentenceError
	if !errors.As(err, &ise) {
		t.Fatalf("expected InvalidSentenceError, got %v", err)
	}
	if !strings.Contains(ise.Reason, "mismatch") {
		t.Fatalf("unexpected reason %q", ise.Reason)
	}
}

func TestValidate_RejectsReservedCharactersInBody(t *testing.T) {
	for _, raw := range []string{
		"$GPGLL,4916.45,N,$,W",
		"$GPGLL,4916.45,N,\x07,W",
	} {
		if err := Validate(raw); err == nil {
			t.Fatalf("%q: expected error", raw)
		}
	}
}
