package index

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// InferTitle returns a human-readable title for the markdown file at path.
// The first line whose trimmed form starts with "# " wins. A missing file or
// a file without a level-1 heading falls back to a title derived from the
// file name. Any other read failure is returned as an error.
func InferTitle(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return titleFromFilename(path), nil
		}
		return "", errors.Wrapf(err, "failed to read %s", path)
	}

	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# ")), nil
		}
	}

	return titleFromFilename(path), nil
}

// titleFromFilename derives a title from the file stem: hyphens become
// spaces and each word is capitalized, so "my-skill-name.md" becomes
// "My Skill Name".
func titleFromFilename(path string) string {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	words := strings.Split(strings.ReplaceAll(stem, "-", " "), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		runes := []rune(word)
		words[i] = string(unicode.ToUpper(runes[0])) + strings.ToLower(string(runes[1:]))
	}

	return strings.Join(words, " ")
}
