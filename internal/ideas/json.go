package ideas

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// LoadJSON reads ideas from a JSON file. Accepted shapes:
// a bare array of ideas, or {"center": "...", "ideas": [...]}.
// Entries without a phrase are skipped; a missing id defaults to the phrase.
func LoadJSON(path string) (Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Set{}, err
	}
	return ParseJSON(b, filepath.Base(path))
}

// ParseJSON parses JSON idea data. fallbackCenter is used when the
// document carries no center label of its own.
func ParseJSON(b []byte, fallbackCenter string) (Set, error) {
	s := strings.TrimSpace(string(b))
	if s == "" {
		return Set{}, errors.New("empty json")
	}
	var set Set
	if strings.HasPrefix(s, "[") {
		if err := json.Unmarshal(b, &set.Ideas); err != nil {
			return Set{}, err
		}
	} else {
		if err := json.Unmarshal(b, &set); err != nil {
			return Set{}, err
		}
	}
	if set.Center == "" {
		set.Center = strings.TrimSuffix(fallbackCenter, filepath.Ext(fallbackCenter))
	}
	set.Ideas = normalize(set.Ideas)
	if len(set.Ideas) == 0 {
		return Set{}, errors.New("json: no ideas parsed")
	}
	return set, nil
}

func normalize(in []Idea) []Idea {
	out := in[:0]
	for _, id := range in {
		id.Phrase = strings.TrimSpace(id.Phrase)
		if id.Phrase == "" {
			continue
		}
		if strings.TrimSpace(id.ID) == "" {
			id.ID = id.Phrase
		}
		out = append(out, id)
	}
	return out
}
