package nmea

import "fmt"

// Checksum XORs every byte of the payload. The payload of a transmitted
// sentence is everything strictly between '$' and '*'.
func Checksum(payload string) byte {
	var sum byte
	for i := 0; i < len(payload); i++ {
		sum ^= payload[i]
	}
	return sum
}

// AppendChecksum appends the checksum delimiter and two uppercase hex digits
// to a sentence that does not yet carry a checksum section. A leading '$' is
// excluded from the calculation.
func AppendChecksum(s string) string {
	payload := s
	if len(payload) > 0 && payload[0] == Begin {
		payload = payload[1:]
	}
	return fmt.Sprintf("%s%c%02X", s, ChecksumDelimiter, Checksum(payload))
}
