package nmea

import (
	"fmt"
	"sync"
)

// SentenceID is the three-letter sentence type code; it implies a fixed
// field schema, enforced by the concrete decoder for the type.
type SentenceID string

// Built-in sentence vocabulary.
const (
	SentenceAAM SentenceID = "AAM" // waypoint arrival alarm
	SentenceALM SentenceID = "ALM" // almanac data
	SentenceAPA SentenceID = "APA" // autopilot sentence A
	SentenceAPB SentenceID = "APB" // autopilot sentence B
	SentenceBOD SentenceID = "BOD" // bearing origin to destination
	SentenceBWC SentenceID = "BWC" // bearing using great circle route
	SentenceDTM SentenceID = "DTM" // datum reference
	SentenceGGA SentenceID = "GGA" // fix data
	SentenceGLL SentenceID = "GLL" // geographic position
	SentenceGRS SentenceID = "GRS" // range residuals
	SentenceGSA SentenceID = "GSA" // overall satellite data
	SentenceGST SentenceID = "GST" // pseudorange noise statistics
	SentenceGSV SentenceID = "GSV" // satellites in view
	SentenceMSK SentenceID = "MSK" // beacon receiver control
	SentenceMSS SentenceID = "MSS" // beacon receiver status
	SentenceRMA SentenceID = "RMA" // recommended minimum Loran data
	SentenceRMB SentenceID = "RMB" // recommended navigation data
	SentenceRMC SentenceID = "RMC" // recommended minimum GNSS data
	SentenceRTE SentenceID = "RTE" // route
	SentenceSTN SentenceID = "STN" // multiple data id
	SentenceTRF SentenceID = "TRF" // transit fix data
	SentenceVBW SentenceID = "VBW" // dual ground/water speed
	SentenceVTG SentenceID = "VTG" // track and speed over ground
	SentenceWCV SentenceID = "WCV" // waypoint closure velocity
	SentenceWPL SentenceID = "WPL" // waypoint location
	SentenceXTC SentenceID = "XTC" // cross track error
	SentenceXTE SentenceID = "XTE" // measured cross track error
	SentenceZDA SentenceID = "ZDA" // date and time
	SentenceZTG SentenceID = "ZTG" // UTC and time to destination
)

var (
	sentenceMu sync.RWMutex
	sentences  = map[SentenceID]string{
		SentenceAAM: "Waypoint arrival alarm",
		SentenceALM: "Almanac data",
		SentenceAPA: "Autopilot sentence A",
		SentenceAPB: "Autopilot sentence B",
		SentenceBOD: "Bearing origin to destination",
		SentenceBWC: "Bearing using great circle route",
		SentenceDTM: "Datum reference",
		SentenceGGA: "Global positioning system fix data",
		SentenceGLL: "Geographic position",
		SentenceGRS: "Range residuals",
		SentenceGSA: "Overall satellite data",
		SentenceGST: "Pseudorange noise statistics",
		SentenceGSV: "Satellites in view",
		SentenceMSK: "Beacon receiver control",
		SentenceMSS: "Beacon receiver status",
		SentenceRMA: "Recommended minimum Loran data",
		SentenceRMB: "Recommended navigation data",
		SentenceRMC: "Recommended minimum GNSS data",
		SentenceRTE: "Route",
		SentenceSTN: "Multiple data id",
		SentenceTRF: "Transit fix data",
		SentenceVBW: "Dual ground/water speed",
		SentenceVTG: "Track and speed over ground",
		SentenceWCV: "Waypoint closure velocity",
		SentenceWPL: "Waypoint location",
		SentenceXTC: "Cross track error",
		SentenceXTE: "Measured cross track error",
		SentenceZDA: "Date and time",
		SentenceZTG: "UTC and time to destination",
	}
)

// ParseSentenceID maps a three-letter code to its SentenceID, rejecting
// codes outside the known vocabulary.
func ParseSentenceID(code string) (SentenceID, error) {
	sentenceMu.RLock()
	_, ok := sentences[SentenceID(code)]
	sentenceMu.RUnlock()
	if !ok {
		return "", &UnsupportedIDError{Kind: "sentence", Code: code}
	}
	return SentenceID(code), nil
}

// RegisterSentence admits an additional sentence type code. Re-registering
// a code updates its name. Meant to run during program initialization,
// before any parsing.
func RegisterSentence(code, name string) error {
	if len(code) != sentenceCodeLength || !isUpperAlpha(code) {
		return fmt.Errorf("nmea: sentence code must be %d uppercase letters, got [%s]", sentenceCodeLength, code)
	}
	sentenceMu.Lock()
	sentences[SentenceID(code)] = name
	sentenceMu.Unlock()
	return nil
}

func (id SentenceID) String() string { return string(id) }

// Name returns the human-readable sentence type name, or an empty string
// for an unregistered code.
func (id SentenceID) Name() string {
	sentenceMu.RLock()
	defer sentenceMu.RUnlock()
	return sentences[id]
}
