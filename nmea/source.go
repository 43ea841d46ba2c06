package nmea

import "time"

// Capability interfaces implemented by concrete sentence decoders. A
// consumer that only needs, say, a position accepts any PositionSource
// without knowing which sentence type stands behind it.

// PositionSource yields a geographic position.
type PositionSource interface {
	Position() (Position, error)
}

// ClockSource yields an absolute UTC instant.
type ClockSource interface {
	Timestamp() (time.Time, error)
}

// VelocitySource yields speed over ground in knots and course over ground
// in degrees true.
type VelocitySource interface {
	Speed() (float64, error)
	Course() (float64, error)
}
