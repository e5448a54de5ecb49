package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"ideaglobe/internal/ideas"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext == ".json" || ext == ".csv" {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no idea files in current directory"
	}
}

// loadPath loads a JSON or CSV idea file and replaces the whole set.
func (m *Model) loadPath(p string) {
	var set ideas.Set
	var err error
	switch ext := strings.ToLower(filepath.Ext(p)); ext {
	case ".json":
		set, err = ideas.LoadJSON(p)
	case ".csv":
		set, err = ideas.LoadCSV(p)
	default:
		m.status = "unsupported file: " + ext
		return
	}
	if err != nil {
		m.status = "load error: " + err.Error()
		return
	}
	m.selPath = p
	m.applySet(set)
	m.status = fmt.Sprintf("loaded: %s  center=%q ideas=%d", filepath.Base(p), set.Center, len(set.Ideas))
}
