package nmea

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Vocabulary is the on-disk form of a talker/sentence code extension file:
//
//	talkers:
//	  - code: XQ
//	    name: Experimental transceiver
//	sentences:
//	  - code: QQQ
//	    name: Vendor position report
type Vocabulary struct {
	Talkers   []VocabularyEntry `yaml:"talkers"`
	Sentences []VocabularyEntry `yaml:"sentences"`
}

type VocabularyEntry struct {
	Code string `yaml:"code"`
	Name string `yaml:"name"`
}

// LoadVocabulary reads a YAML vocabulary file and registers every code in
// it, extending the built-in closed sets. Meant to run during program
// initialization, before any parsing.
func LoadVocabulary(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var v Vocabulary
	if err := yaml.Unmarshal(b, &v); err != nil {
		return fmt.Errorf("nmea: vocabulary %s: %w", path, err)
	}
	return v.Register()
}

// Register applies every entry of the vocabulary to the running process.
func (v Vocabulary) Register() error {
	for _, e := range v.Talkers {
		if err := RegisterTalker(e.Code, e.Name); err != nil {
			return err
		}
	}
	for _, e := range v.Sentences {
		if err := RegisterSentence(e.Code, e.Name); err != nil {
			return err
		}
	}
	return nil
}
