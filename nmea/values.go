package nmea

import (
	"fmt"
	"strconv"
	"time"
)

// Direction is a compass or hemisphere marker.
type Direction byte

const (
	North Direction = 'N'
	South Direction = 'S'
	East  Direction = 'E'
	West  Direction = 'W'
)

func (d Direction) String() string { return string(rune(d)) }

// ParseDirection maps a hemisphere character to its Direction.
func ParseDirection(c byte) (Direction, error) {
	switch Direction(c) {
	case North, South, East, West:
		return Direction(c), nil
	}
	return 0, fmt.Errorf("not a direction: [%c]", c)
}

// DataStatus is the validity flag many sentence types carry: active means
// the data is usable, void is a receiver warning.
type DataStatus byte

const (
	StatusActive DataStatus = 'A'
	StatusVoid   DataStatus = 'V'
)

// Valid reports whether the status marks the data as usable.
func (s DataStatus) Valid() bool { return s == StatusActive }

func (s DataStatus) String() string {
	if s == StatusActive {
		return "active"
	}
	return "void"
}

// ParseDataStatus maps a status character to its DataStatus.
func ParseDataStatus(c byte) (DataStatus, error) {
	switch DataStatus(c) {
	case StatusActive, StatusVoid:
		return DataStatus(c), nil
	}
	return 0, fmt.Errorf("not a data status: [%c]", c)
}

// FixMode is the positioning mode indicator added to fix sentences in NMEA
// 0183 v2.3.
type FixMode byte

const (
	ModeAutonomous   FixMode = 'A'
	ModeDifferential FixMode = 'D'
	ModeEstimated    FixMode = 'E'
	ModeManual       FixMode = 'M'
	ModeSimulated    FixMode = 'S'
	ModeNotValid     FixMode = 'N'
)

func (m FixMode) String() string {
	switch m {
	case ModeAutonomous:
		return "autonomous"
	case ModeDifferential:
		return "differential"
	case ModeEstimated:
		return "estimated"
	case ModeManual:
		return "manual"
	case ModeSimulated:
		return "simulated"
	case ModeNotValid:
		return "not valid"
	}
	return fmt.Sprintf("unknown(%c)", byte(m))
}

// ParseFixMode maps a mode character to its FixMode.
func ParseFixMode(c byte) (FixMode, error) {
	switch FixMode(c) {
	case ModeAutonomous, ModeDifferential, ModeEstimated, ModeManual, ModeSimulated, ModeNotValid:
		return FixMode(c), nil
	}
	return 0, fmt.Errorf("not a fix mode: [%c]", c)
}

// Position is a geographic point. Latitude and Longitude are magnitudes in
// decimal degrees, always non-negative; the hemisphere fields carry the
// sign semantics separately.
type Position struct {
	Latitude      float64
	Longitude     float64
	LatHemisphere Direction // North or South
	LonHemisphere Direction // East or West
}

// Decimal returns signed decimal degrees, negative for the southern and
// western hemispheres.
func (p Position) Decimal() (lat, lon float64) {
	lat, lon = p.Latitude, p.Longitude
	if p.LatHemisphere == South {
		lat = -lat
	}
	if p.LonHemisphere == West {
		lon = -lon
	}
	return lat, lon
}

// Time is a UTC time of day. Second keeps any fractional part present in
// the source field.
type Time struct {
	Hour   int
	Minute int
	Second float64
}

// ParseTime decodes the fixed six-digit HHMMSS form, optionally with
// fractional seconds appended (HHMMSS.sss).
func ParseTime(s string) (Time, error) {
	if len(s) < 6 || !allDigits(s[:6]) {
		return Time{}, fmt.Errorf("not an HHMMSS time: [%s]", s)
	}
	if len(s) > 6 && (s[6] != '.' || len(s) == 7 || !allDigits(s[7:])) {
		return Time{}, fmt.Errorf("not an HHMMSS time: [%s]", s)
	}
	h, _ := strconv.Atoi(s[0:2])
	m, _ := strconv.Atoi(s[2:4])
	sec, _ := strconv.ParseFloat(s[4:], 64)
	if h > 23 || m > 59 || sec >= 60 {
		return Time{}, fmt.Errorf("time out of range: [%s]", s)
	}
	return Time{Hour: h, Minute: m, Second: sec}, nil
}

// Date is a UTC calendar date. Year is the full year: two-digit source
// years map to 2000+YY unconditionally, the protocol has no pivot for
// pre-2000 dates.
type Date struct {
	Day   int
	Month int
	Year  int
}

// ParseDate decodes the fixed six-digit DDMMYY form.
func ParseDate(s string) (Date, error) {
	if len(s) != 6 || !allDigits(s) {
		return Date{}, fmt.Errorf("not a DDMMYY date: [%s]", s)
	}
	d, _ := strconv.Atoi(s[0:2])
	m, _ := strconv.Atoi(s[2:4])
	y, _ := strconv.Atoi(s[4:6])
	if d < 1 || d > 31 || m < 1 || m > 12 {
		return Date{}, fmt.Errorf("date out of range: [%s]", s)
	}
	return Date{Day: d, Month: m, Year: 2000 + y}, nil
}

// UTC combines the date with a time of day into one absolute instant.
// Fractional seconds are dropped; read them from the Time value instead.
func (d Date) UTC(t Time) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, t.Hour, t.Minute, int(t.Second), 0, time.UTC)
}

// ParseLatitude decodes the DDMM.MMMM latitude form into non-negative
// decimal degrees (degrees plus minutes over sixty). The hemisphere sign is
// applied by the caller.
func ParseLatitude(s string) (float64, error) {
	return parseCoordinate(s, 2, 90)
}

// ParseLongitude decodes the DDDMM.MMMM longitude form.
func ParseLongitude(s string) (float64, error) {
	return parseCoordinate(s, 3, 180)
}

func parseCoordinate(s string, degDigits, degMax int) (float64, error) {
	if len(s) < degDigits+2 || !allDigits(s[:degDigits]) {
		return 0, fmt.Errorf("not a coordinate: [%s]", s)
	}
	deg, _ := strconv.Atoi(s[:degDigits])
	min, err := strconv.ParseFloat(s[degDigits:], 64)
	if err != nil || min < 0 || min >= 60 {
		return 0, fmt.Errorf("not a coordinate: [%s]", s)
	}
	dec := float64(deg) + min/60
	if dec > float64(degMax) {
		return 0, fmt.Errorf("coordinate out of range: [%s]", s)
	}
	return dec, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}
