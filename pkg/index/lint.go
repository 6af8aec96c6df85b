package index

import (
	"bytes"
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/docsforge/skillindex/pkg/logger"
)

// Problem describes one descriptor that failed strict validation.
type Problem struct {
	Folder string
	Err    error
}

// Lint runs a strict pass over the same tree Build scans. Unlike the
// tolerant build path, every descriptor must carry frontmatter that parses
// as real YAML with non-empty name and description fields. The returned
// slice is ordered by folder name; an empty slice means the tree is clean.
func (b *Builder) Lint(ctx context.Context, root string) ([]Problem, error) {
	log := logger.G(ctx)

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read root directory %s", root)
	}

	problems := []Problem{}
	for _, entry := range entries {
		dirPath := filepath.Join(root, entry.Name())

		info, err := os.Stat(dirPath)
		if err != nil || !info.IsDir() {
			continue
		}
		if _, ok := b.reserved[entry.Name()]; ok {
			continue
		}

		descriptor := filepath.Join(dirPath, SkillFileName)
		if _, err := os.Stat(descriptor); os.IsNotExist(err) {
			continue
		}

		if err := lintDescriptor(descriptor); err != nil {
			log.WithField("folder", entry.Name()).WithError(err).Debug("descriptor failed validation")
			problems = append(problems, Problem{Folder: entry.Name(), Err: err})
		}
	}

	return problems, nil
}

// lintDescriptor validates a single SKILL.md with a real YAML frontmatter
// parser and checks the required fields.
func lintDescriptor(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "failed to read descriptor")
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()

	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return errors.Wrap(err, "failed to parse markdown")
	}

	metaData, err := meta.TryGet(pctx)
	if err != nil {
		return errors.Wrap(err, "frontmatter is not valid YAML")
	}
	if metaData == nil {
		return errors.New("missing frontmatter")
	}

	name, _ := metaData["name"].(string)
	description, _ := metaData["description"].(string)

	if name == "" {
		return errors.New("name is required in frontmatter")
	}
	if description == "" {
		return errors.New("description is required in frontmatter")
	}

	return nil
}
