package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"github.com/dom/ep-app-api/internal/domain"
)

//go:embed vocabulary.json
var defaultVocabulary []byte

// LoadVocabulary reads the seizure and contact type tables from path, or the
// built-in set when path is empty.
func LoadVocabulary(path string) (domain.Vocabulary, error) {
	data := defaultVocabulary
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return domain.Vocabulary{}, fmt.Errorf("failed to read vocabulary file: %w", err)
		}
	}

	var vocab domain.Vocabulary
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&vocab); err != nil {
		return domain.Vocabulary{}, fmt.Errorf("failed to decode vocabulary: %w", err)
	}
	if err := vocab.Validate(); err != nil {
		return domain.Vocabulary{}, fmt.Errorf("invalid vocabulary: %w", err)
	}
	return vocab, nil
}
