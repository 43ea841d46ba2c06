package rmc

// Package rmc decodes the RMC sentence (Recommended Minimum Specific GNSS
// Data): position, UTC date and time, speed and course over ground,
// magnetic variation and fix status in one line.
//
//	$GPRMC,120044,A,6011.552,N,02501.941,E,000.0,360.0,160705,006.1,E,A*11

import (
	"fmt"
	"time"

	"marine-nmea/nmea"
)

// Data field layout after the address field (NMEA 0183 v2.3).
const (
	fieldTime          = iota // hhmmss[.sss]
	fieldStatus               // A=valid, V=invalid
	fieldLatitude             // ddmm.mmmm
	fieldLatHemisphere        // N/S
	fieldLongitude            // dddmm.mmmm
	fieldLonHemisphere        // E/W
	fieldSpeed                // knots
	fieldCourse               // degrees true
	fieldDate                 // ddmmyy
	fieldVariation            // degrees, magnitude
	fieldVarHemisphere        // E/W
	fieldMode                 // v2.3 and later only

	// FieldCount is the full v2.3 schema size.
	FieldCount = 12
)

// RMC wraps a parsed sentence with the RMC field schema. Getters are pure
// reads over the tokenized fields, recomputed on every call; a sentence
// shorter than the schema fails lazily on the first access past its fields.
type RMC struct {
	s nmea.Sentence
}

var (
	_ nmea.PositionSource = RMC{}
	_ nmea.ClockSource    = RMC{}
	_ nmea.VelocitySource = RMC{}
)

// From wraps an already-parsed sentence, rejecting any other sentence type.
func From(s nmea.Sentence) (RMC, error) {
	if s.ID() != nmea.SentenceRMC {
		return RMC{}, fmt.Errorf("rmc: sentence type mismatch [%s]", s.ID())
	}
	return RMC{s: s}, nil
}

// Parse decodes a raw line.
func Parse(raw string) (RMC, error) {
	s, err := nmea.Parse(raw)
	if err != nil {
		return RMC{}, err
	}
	return From(s)
}

// NewBuilder starts a blank RMC sentence for the given talker, sized to the
// full v2.3 schema.
func NewBuilder(talker nmea.TalkerID) (*nmea.Builder, error) {
	return nmea.NewBuilder(talker, nmea.SentenceRMC, FieldCount)
}

// Sentence returns the underlying sentence value.
func (r RMC) Sentence() nmea.Sentence { return r.s }

// UTCTime returns the raw time-of-day field, e.g. "120044".
func (r RMC) UTCTime() (string, error) {
	return r.s.Field(fieldTime)
}

// Time returns the decomposed UTC time of day. Fractional seconds from the
// source field are preserved in Second.
func (r RMC) Time() (nmea.Time, error) {
	v, err := r.s.Field(fieldTime)
	if err != nil {
		return nmea.Time{}, err
	}
	t, err := nmea.ParseTime(v)
	if err != nil {
		return nmea.Time{}, &nmea.FieldError{Index: fieldTime, Value: v, Err: err}
	}
	return t, nil
}

// Date returns the UTC date. The two-digit source year maps to 2000+YY.
func (r RMC) Date() (nmea.Date, error) {
	v, err := r.s.Field(fieldDate)
	if err != nil {
		return nmea.Date{}, err
	}
	d, err := nmea.ParseDate(v)
	if err != nil {
		return nmea.Date{}, &nmea.FieldError{Index: fieldDate, Value: v, Err: err}
	}
	return d, nil
}

// Timestamp combines the date and time fields into one absolute UTC
// instant. Fractional seconds are dropped here; Time keeps them.
func (r RMC) Timestamp() (time.Time, error) {
	d, err := r.Date()
	if err != nil {
		return time.Time{}, err
	}
	t, err := r.Time()
	if err != nil {
		return time.Time{}, err
	}
	return d.UTC(t), nil
}

// Status returns the data validity flag.
func (r RMC) Status() (nmea.DataStatus, error) {
	c, err := r.s.Char(fieldStatus)
	if err != nil {
		return 0, err
	}
	st, err := nmea.ParseDataStatus(c)
	if err != nil {
		return 0, &nmea.FieldError{Index: fieldStatus, Value: string(rune(c)), Err: err}
	}
	return st, nil
}

// Position returns latitude and longitude magnitudes in decimal degrees
// with their hemisphere markers. Combining magnitude and hemisphere into a
// signed value is left to the caller; Position.Decimal does it.
func (r RMC) Position() (nmea.Position, error) {
	latRaw, err := r.s.Field(fieldLatitude)
	if err != nil {
		return nmea.Position{}, err
	}
	lat, err := nmea.ParseLatitude(latRaw)
	if err != nil {
		return nmea.Position{}, &nmea.FieldError{Index: fieldLatitude, Value: latRaw, Err: err}
	}
	latHemi, err := r.hemisphere(fieldLatHemisphere, nmea.North, nmea.South)
	if err != nil {
		return nmea.Position{}, err
	}
	lonRaw, err := r.s.Field(fieldLongitude)
	if err != nil {
		return nmea.Position{}, err
	}
	lon, err := nmea.ParseLongitude(lonRaw)
	if err != nil {
		return nmea.Position{}, &nmea.FieldError{Index: fieldLongitude, Value: lonRaw, Err: err}
	}
	lonHemi, err := r.hemisphere(fieldLonHemisphere, nmea.East, nmea.West)
	if err != nil {
		return nmea.Position{}, err
	}
	return nmea.Position{
		Latitude:      lat,
		Longitude:     lon,
		LatHemisphere: latHemi,
		LonHemisphere: lonHemi,
	}, nil
}

// Speed returns speed over ground in knots.
func (r RMC) Speed() (float64, error) {
	return r.s.Float(fieldSpeed)
}

// Course returns course over ground in degrees true.
func (r RMC) Course() (float64, error) {
	return r.s.Float(fieldCourse)
}

// VariationDirection returns the hemisphere of the magnetic variation,
// East or West.
func (r RMC) VariationDirection() (nmea.Direction, error) {
	return r.hemisphere(fieldVarHemisphere, nmea.East, nmea.West)
}

// Variation returns the signed magnetic variation in degrees: negative for
// East, positive for West. Easterly variation subtracts from a true
// heading.
func (r RMC) Variation() (float64, error) {
	mag, err := r.s.Float(fieldVariation)
	if err != nil {
		return 0, err
	}
	if mag < 0 {
		raw, _ := r.s.Field(fieldVariation)
		return 0, &nmea.FieldError{Index: fieldVariation, Value: raw, Want: "non-negative magnitude"}
	}
	dir, err := r.VariationDirection()
	if err != nil {
		return 0, err
	}
	if dir == nmea.East {
		return -mag, nil
	}
	return mag, nil
}

// Mode returns the fix mode indicator. Sentences from revisions before
// v2.3 do not carry the field at all; those report ErrNotAvailable, as
// does an empty field.
func (r RMC) Mode() (nmea.FixMode, error) {
	c, err := r.s.Char(fieldMode)
	if err != nil {
		return 0, err
	}
	m, err := nmea.ParseFixMode(c)
	if err != nil {
		return 0, &nmea.FieldError{Index: fieldMode, Value: string(rune(c)), Err: err}
	}
	return m, nil
}

func (r RMC) hemisphere(index int, a, b nmea.Direction) (nmea.Direction, error) {
	c, err := r.s.Char(index)
	if err != nil {
		return 0, err
	}
	d, err := nmea.ParseDirection(c)
	if err != nil {
		return 0, &nmea.FieldError{Index: index, Value: string(rune(c)), Err: err}
	}
	if d != a && d != b {
		return 0, &nmea.FieldError{Index: index, Value: string(rune(c)), Want: a.String() + " or " + b.String()}
	}
	return d, nil
}
