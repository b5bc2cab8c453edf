package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/vovakirdan/jumpforge/internal/pattern"
)

// Loaded is one document read back from disk. Err is set when the file
// could not be read or decoded; Pattern is only meaningful when Err is nil.
type Loaded struct {
	Slug     string
	Path     string
	Document Document
	Pattern  pattern.Pattern
	Err      error
}

// Loader reads exported documents.
type Loader struct {
	Root string
	Grid pattern.Grid
}

// NewLoader creates a loader rooted at root.
func NewLoader(root string, g pattern.Grid) *Loader {
	return &Loader{Root: root, Grid: g}
}

// LoadAll recursively loads every .json file under Root.
// Per-file failures are reported in Loaded.Err rather than aborting the walk.
// Results are sorted by slug for deterministic ordering.
func (l *Loader) LoadAll() ([]Loaded, error) {
	var loaded []Loaded

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.ToLower(filepath.Ext(path)) != ".json" {
			return nil
		}

		loaded = append(loaded, l.LoadFile(path))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("export: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(loaded, func(i, j int) bool {
		if loaded[i].Slug != loaded[j].Slug {
			return loaded[i].Slug < loaded[j].Slug
		}
		return loaded[i].Path < loaded[j].Path
	})

	return loaded, nil
}

// LoadFile loads and decodes a single document.
func (l *Loader) LoadFile(path string) Loaded {
	out := Loaded{
		Slug: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)),
		Path: path,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		out.Err = fmt.Errorf("export: reading file %s: %w", path, err)
		return out
	}
	if err := json.Unmarshal(data, &out.Document); err != nil {
		out.Err = fmt.Errorf("export: parsing file %s: %w", path, err)
		return out
	}

	p, err := Decode(out.Document, l.Grid)
	if err != nil {
		out.Err = fmt.Errorf("decoding file %s: %w", path, err)
		return out
	}
	out.Pattern = p
	return out
}
