package nmea

// Package nmea implements the NMEA 0183 sentence layer:
// - Validate raw lines: start marker, length bound, address field, XOR checksum
// - Tokenize the body into positional data fields, preserving empty ones
// - Resolve talker and sentence ids against a closed, extensible vocabulary
// - Typed positional field access and checked sentence construction
//
// Semantic decoding of individual sentence types builds on top of this
// package; see the rmc package for the position/time/velocity exemplar.
