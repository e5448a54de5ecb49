package ideas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, data string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o644))
	return p
}

func TestParseJSONArray(t *testing.T) {
	set, err := ParseJSON([]byte(`[
		{"id":"a","phrase":"alpha","category":"c1","description":"d1"},
		{"phrase":"beta"},
		{"id":"x","phrase":"  "}
	]`), "brainstorm.json")
	require.NoError(t, err)
	assert.Equal(t, "brainstorm", set.Center, "center falls back to the file name")
	require.Len(t, set.Ideas, 2, "blank phrases are skipped")
	assert.Equal(t, "a", set.Ideas[0].ID)
	assert.Equal(t, "beta", set.Ideas[1].ID, "missing id defaults to the phrase")
}

func TestParseJSONObject(t *testing.T) {
	set, err := ParseJSON([]byte(`{"center":"energy","ideas":[{"phrase":"solar"},{"phrase":"wind"}]}`), "x.json")
	require.NoError(t, err)
	assert.Equal(t, "energy", set.Center)
	assert.Len(t, set.Ideas, 2)
}

func TestParseJSONErrors(t *testing.T) {
	_, err := ParseJSON([]byte("  "), "x.json")
	assert.Error(t, err)
	_, err = ParseJSON([]byte(`{"center":"c","ideas":[]}`), "x.json")
	assert.Error(t, err)
	_, err = ParseJSON([]byte(`{nope`), "x.json")
	assert.Error(t, err)
}

func TestLoadCSV(t *testing.T) {
	p := writeTemp(t, "garden.csv", "ID,Phrase,Category,Description\n1,compost,soil,rot well\n2,drip lines,water,\n,,x,y\n")
	set, err := LoadCSV(p)
	require.NoError(t, err)
	assert.Equal(t, "garden", set.Center)
	require.Len(t, set.Ideas, 2)
	assert.Equal(t, Idea{ID: "1", Phrase: "compost", Category: "soil", Description: "rot well"}, set.Ideas[0])
}

func TestLoadCSVHeaderAliases(t *testing.T) {
	p := writeTemp(t, "x.csv", "title,tag,desc\nrobots,tech,metal friends\n")
	set, err := LoadCSV(p)
	require.NoError(t, err)
	require.Len(t, set.Ideas, 1)
	assert.Equal(t, "robots", set.Ideas[0].ID, "id defaults to the phrase")
	assert.Equal(t, "tech", set.Ideas[0].Category)
	assert.Equal(t, "metal friends", set.Ideas[0].Description)
}

func TestLoadCSVErrors(t *testing.T) {
	_, err := LoadCSV(writeTemp(t, "x.csv", "a,b\n1,2\n"))
	assert.Error(t, err, "no phrase column")
	_, err = LoadCSV(writeTemp(t, "y.csv", "phrase\n\n"))
	assert.Error(t, err, "no rows parsed")
}

func TestDemoWellFormed(t *testing.T) {
	set := Demo()
	assert.NotEmpty(t, set.Center)
	require.NotEmpty(t, set.Ideas)
	seen := map[string]bool{}
	for _, id := range set.Ideas {
		assert.NotEmpty(t, id.Phrase)
		assert.False(t, seen[id.ID], "demo ids must be unique: %s", id.ID)
		seen[id.ID] = true
	}
}
