package index

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Write serializes skills as two-space indented JSON and writes the result
// to path, replacing any existing file. The parent directory is created if
// it does not exist. Non-ASCII and HTML-significant characters are written
// literally so the output stays readable in the docs repository.
func Write(skills []Skill, path string) error {
	if skills == nil {
		skills = []Skill{}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create output directory for %s", path)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(skills); err != nil {
		return errors.Wrap(err, "failed to serialize skills index")
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	return nil
}

// DefaultOutputPath returns the conventional location of the index relative
// to the scanned root, docs/skills.json.
func DefaultOutputPath(root string) string {
	return filepath.Join(root, "docs", "skills.json")
}
