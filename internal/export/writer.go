package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Writer stores documents as {Dir}/{slug}.json.
type Writer struct {
	Dir string
}

// NewWriter creates a writer for dir. The directory is created on first
// write.
func NewWriter(dir string) *Writer {
	return &Writer{Dir: dir}
}

// Marshal renders a document exactly as Write stores it: two-space indented
// JSON followed by a newline.
func Marshal(doc Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("export: marshal %q: %w", doc.Name, err)
	}
	return append(data, '\n'), nil
}

// Write stores doc under slug, replacing any previous file. The file is
// written to a temporary name first and renamed into place, so readers never
// see a partial document. Returns the final path.
func (w *Writer) Write(slug string, doc Document) (string, error) {
	data, err := Marshal(doc)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return "", fmt.Errorf("export: create dir %s: %w", w.Dir, err)
	}

	path := filepath.Join(w.Dir, slug+".json")
	tmp, err := os.CreateTemp(w.Dir, "."+slug+"-*.tmp")
	if err != nil {
		return "", fmt.Errorf("export: create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("export: close %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("export: chmod %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("export: rename into %s: %w", path, err)
	}
	return path, nil
}
