package index

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/docsforge/skillindex/pkg/frontmatter"
	"github.com/docsforge/skillindex/pkg/logger"
)

// ReservedDirs are the directory names that are never treated as skill
// packages, no matter what they contain.
var ReservedDirs = []string{"docs", "scripts", "template", ".git", "__pycache__"}

// DefaultReferencePattern matches the reference documents collected from a
// package's references subdirectory.
const DefaultReferencePattern = "*.md"

// Builder scans a root directory for skill packages and assembles the index
type Builder struct {
	reserved   map[string]struct{}
	refPattern string
}

// Option is a function that configures a Builder
type Option func(*Builder) error

// WithReservedDirs replaces the default reserved directory skip-set
func WithReservedDirs(names ...string) Option {
	return func(b *Builder) error {
		b.reserved = make(map[string]struct{}, len(names))
		for _, name := range names {
			b.reserved[name] = struct{}{}
		}
		return nil
	}
}

// WithReferencePattern sets the glob pattern used to select reference
// documents inside a package's references subdirectory
func WithReferencePattern(pattern string) Option {
	return func(b *Builder) error {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("invalid reference pattern %q", pattern)
		}
		b.refPattern = pattern
		return nil
	}
}

// New creates a Builder with the default reserved set and reference pattern,
// then applies any options
func New(opts ...Option) (*Builder, error) {
	b := &Builder{refPattern: DefaultReferencePattern}
	if err := WithReservedDirs(ReservedDirs...)(b); err != nil {
		return nil, err
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// Build walks the immediate subdirectories of root in lexicographic order
// and returns one Skill per directory that contains a SKILL.md descriptor.
// Reserved directories and directories without a descriptor are skipped
// silently. The result is deterministic for a given file system snapshot.
func (b *Builder) Build(ctx context.Context, root string) ([]Skill, error) {
	log := logger.G(ctx)

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read root directory %s", root)
	}

	skills := []Skill{}
	for _, entry := range entries {
		dirPath := filepath.Join(root, entry.Name())

		// Stat rather than entry.IsDir so symlinked package dirs work
		info, err := os.Stat(dirPath)
		if err != nil || !info.IsDir() {
			continue
		}

		if _, ok := b.reserved[entry.Name()]; ok {
			log.WithField("dir", entry.Name()).Debug("skipping reserved directory")
			continue
		}

		skill, found, err := b.loadSkill(dirPath, entry.Name())
		if err != nil {
			return nil, err
		}
		if !found {
			log.WithField("dir", entry.Name()).Debug("no descriptor, skipping")
			continue
		}

		log.WithField("folder", skill.Folder).WithField("name", skill.Name).Debug("indexed skill")
		skills = append(skills, skill)
	}

	return skills, nil
}

// loadSkill reads a package directory's descriptor and assembles its record.
// The second return value is false when the directory has no descriptor.
func (b *Builder) loadSkill(dir, folder string) (Skill, bool, error) {
	raw, err := os.ReadFile(filepath.Join(dir, SkillFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return Skill{}, false, nil
		}
		return Skill{}, false, errors.Wrapf(err, "failed to read descriptor in %s", dir)
	}

	meta, _ := frontmatter.Parse(string(raw))

	references, err := b.collectReferences(dir)
	if err != nil {
		return Skill{}, false, err
	}

	return Skill{
		Name:        lookupOrDefault(meta, "name", folder),
		Folder:      folder,
		Description: strings.TrimSpace(lookupOrDefault(meta, "description", "")),
		References:  references,
	}, true, nil
}

// collectReferences lists the markdown documents directly inside the
// package's references subdirectory, sorted by file name. A missing
// subdirectory yields an empty list.
func (b *Builder) collectReferences(dir string) ([]Reference, error) {
	refDir := filepath.Join(dir, ReferencesDirName)

	entries, err := os.ReadDir(refDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Reference{}, nil
		}
		return nil, errors.Wrapf(err, "failed to read references directory %s", refDir)
	}

	references := []Reference{}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		matched, err := doublestar.Match(b.refPattern, entry.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "failed to match reference pattern %q", b.refPattern)
		}
		if !matched {
			continue
		}

		title, err := InferTitle(filepath.Join(refDir, entry.Name()))
		if err != nil {
			return nil, err
		}

		references = append(references, Reference{
			Title: title,
			File:  ReferencesDirName + "/" + entry.Name(),
		})
	}

	return references, nil
}

// lookupOrDefault returns the mapping value for key, or fallback when the
// key is absent or set to the empty string.
func lookupOrDefault(meta map[string]string, key, fallback string) string {
	if value, ok := meta[key]; ok && value != "" {
		return value
	}
	return fallback
}
