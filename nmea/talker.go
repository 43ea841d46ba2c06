package nmea

import (
	"fmt"
	"sync"
)

// TalkerID is the two-letter device-class code opening the address field,
// e.g. GP for a GPS receiver.
type TalkerID string

// Built-in talker vocabulary.
const (
	TalkerAG TalkerID = "AG" // autopilot, general
	TalkerAP TalkerID = "AP" // autopilot, magnetic
	TalkerCC TalkerID = "CC" // computer, programmed calculator
	TalkerCD TalkerID = "CD" // digital selective calling (DSC)
	TalkerCM TalkerID = "CM" // computer, memory data
	TalkerCS TalkerID = "CS" // satellite communications
	TalkerCT TalkerID = "CT" // radio-telephone, MF/HF
	TalkerCV TalkerID = "CV" // radio-telephone, VHF
	TalkerCX TalkerID = "CX" // scanning receiver
	TalkerDE TalkerID = "DE" // DECCA navigation
	TalkerDF TalkerID = "DF" // direction finder
	TalkerEC TalkerID = "EC" // electronic chart display (ECDIS)
	TalkerEP TalkerID = "EP" // emergency position indicating beacon (EPIRB)
	TalkerER TalkerID = "ER" // engine room monitoring systems
	TalkerGA TalkerID = "GA" // Galileo receiver
	TalkerGB TalkerID = "GB" // BeiDou receiver
	TalkerGL TalkerID = "GL" // GLONASS receiver
	TalkerGN TalkerID = "GN" // combined GNSS receiver
	TalkerGP TalkerID = "GP" // GPS receiver
	TalkerHC TalkerID = "HC" // heading, magnetic compass
	TalkerHE TalkerID = "HE" // heading, north-seeking gyro
	TalkerHN TalkerID = "HN" // heading, non-north-seeking gyro
	TalkerII TalkerID = "II" // integrated instrumentation
	TalkerIN TalkerID = "IN" // integrated navigation
	TalkerLC TalkerID = "LC" // Loran-C
	TalkerRA TalkerID = "RA" // radar and/or ARPA
	TalkerSD TalkerID = "SD" // depth sounder
	TalkerSN TalkerID = "SN" // electronic positioning system
	TalkerSS TalkerID = "SS" // scanning sounder
	TalkerTI TalkerID = "TI" // turn rate indicator
	TalkerVD TalkerID = "VD" // velocity sensor, doppler
	TalkerVM TalkerID = "VM" // velocity sensor, magnetic log
	TalkerVW TalkerID = "VW" // velocity sensor, mechanical log
	TalkerWI TalkerID = "WI" // weather instruments
	TalkerYX TalkerID = "YX" // transducer
	TalkerZA TalkerID = "ZA" // timekeeper, atomic clock
	TalkerZC TalkerID = "ZC" // timekeeper, chronometer
	TalkerZQ TalkerID = "ZQ" // timekeeper, quartz
	TalkerZV TalkerID = "ZV" // timekeeper, radio update
)

var (
	talkerMu sync.RWMutex
	talkers  = map[TalkerID]string{
		TalkerAG: "Autopilot (general)",
		TalkerAP: "Autopilot (magnetic)",
		TalkerCC: "Programmed calculator",
		TalkerCD: "Digital selective calling",
		TalkerCM: "Computer memory data",
		TalkerCS: "Satellite communications",
		TalkerCT: "Radio-telephone (MF/HF)",
		TalkerCV: "Radio-telephone (VHF)",
		TalkerCX: "Scanning receiver",
		TalkerDE: "DECCA navigation",
		TalkerDF: "Direction finder",
		TalkerEC: "Electronic chart display",
		TalkerEP: "Emergency position indicating beacon",
		TalkerER: "Engine room monitoring",
		TalkerGA: "Galileo receiver",
		TalkerGB: "BeiDou receiver",
		TalkerGL: "GLONASS receiver",
		TalkerGN: "Combined GNSS receiver",
		TalkerGP: "GPS receiver",
		TalkerHC: "Magnetic compass",
		TalkerHE: "North-seeking gyro",
		TalkerHN: "Non-north-seeking gyro",
		TalkerII: "Integrated instrumentation",
		TalkerIN: "Integrated navigation",
		TalkerLC: "Loran-C",
		TalkerRA: "Radar / ARPA",
		TalkerSD: "Depth sounder",
		TalkerSN: "Electronic positioning system",
		TalkerSS: "Scanning sounder",
		TalkerTI: "Turn rate indicator",
		TalkerVD: "Doppler velocity sensor",
		TalkerVM: "Magnetic speed log",
		TalkerVW: "Mechanical speed log",
		TalkerWI: "Weather instruments",
		TalkerYX: "Transducer",
		TalkerZA: "Atomic clock",
		TalkerZC: "Chronometer",
		TalkerZQ: "Quartz clock",
		TalkerZV: "Radio update clock",
	}
)

// ParseTalkerID maps a two-letter code to its TalkerID, rejecting codes
// outside the known vocabulary.
func ParseTalkerID(code string) (TalkerID, error) {
	talkerMu.RLock()
	_, ok := talkers[TalkerID(code)]
	talkerMu.RUnlock()
	if !ok {
		return "", &UnsupportedIDError{Kind: "talker", Code: code}
	}
	return TalkerID(code), nil
}

// RegisterTalker admits an additional talker code for device classes the
// built-in vocabulary does not carry. Re-registering a code updates its
// name. Meant to run during program initialization, before any parsing.
func RegisterTalker(code, name string) error {
	if len(code) != talkerCodeLength || !isUpperAlpha(code) {
		return fmt.Errorf("nmea: talker code must be %d uppercase letters, got [%s]", talkerCodeLength, code)
	}
	talkerMu.Lock()
	talkers[TalkerID(code)] = name
	talkerMu.Unlock()
	return nil
}

func (t TalkerID) String() string { return string(t) }

// Name returns the human-readable device-class name, or an empty string for
// an unregistered code.
func (t TalkerID) Name() string {
	talkerMu.RLock()
	defer talkerMu.RUnlock()
	return talkers[t]
}

func isUpperAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
