package ideas

import (
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// LoadCSV reads ideas from a CSV with a header row.
// Column detection: id, phrase|idea|label|title, category|tag,
// description|desc (case-insensitive). Only phrase is required;
// rows without one are skipped.
func LoadCSV(path string) (Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return Set{}, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	recs, err := r.ReadAll()
	if err != nil {
		return Set{}, err
	}
	if len(recs) == 0 {
		return Set{}, errors.New("empty csv")
	}
	idxID, idxPhrase, idxCat, idxDesc := -1, -1, -1, -1
	for i, h := range recs[0] {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "id":
			if idxID == -1 {
				idxID = i
			}
		case "phrase", "idea", "label", "title":
			if idxPhrase == -1 {
				idxPhrase = i
			}
		case "category", "tag":
			if idxCat == -1 {
				idxCat = i
			}
		case "description", "desc":
			if idxDesc == -1 {
				idxDesc = i
			}
		}
	}
	if idxPhrase == -1 {
		return Set{}, errors.New("csv: phrase column not found")
	}
	cell := func(row []string, idx int) string {
		if idx < 0 || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}
	var out []Idea
	for _, row := range recs[1:] {
		p := cell(row, idxPhrase)
		if p == "" {
			continue
		}
		id := cell(row, idxID)
		if id == "" {
			id = p
		}
		out = append(out, Idea{
			ID:          id,
			Phrase:      p,
			Category:    cell(row, idxCat),
			Description: cell(row, idxDesc),
		})
	}
	if len(out) == 0 {
		return Set{}, errors.New("csv: no ideas parsed")
	}
	base := filepath.Base(path)
	return Set{
		Center: strings.TrimSuffix(base, filepath.Ext(base)),
		Ideas:  out,
	}, nil
}
