package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSkill(t *testing.T, root, folder, content string) string {
	t.Helper()
	dir := filepath.Join(root, folder)
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, SkillFileName), []byte(content), 0o644))
	return dir
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		builder, err := New()
		require.NoError(t, err)
		assert.Equal(t, DefaultReferencePattern, builder.refPattern)
		assert.Contains(t, builder.reserved, "docs")
		assert.Contains(t, builder.reserved, ".git")
	})

	t.Run("custom reserved dirs", func(t *testing.T) {
		builder, err := New(WithReservedDirs("node_modules"))
		require.NoError(t, err)
		assert.Contains(t, builder.reserved, "node_modules")
		assert.NotContains(t, builder.reserved, "docs")
	})

	t.Run("invalid reference pattern", func(t *testing.T) {
		_, err := New(WithReferencePattern("[oops"))
		assert.Error(t, err)
	})
}

func TestBuild(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	aDir := writeSkill(t, tmpDir, "a", `---
name: Alpha
description: desc
---

# Alpha

Body.
`)
	refDir := filepath.Join(aDir, ReferencesDirName)
	require.NoError(t, os.MkdirAll(refDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(refDir, "one.md"), []byte("# First Reference\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(refDir, "two.md"), []byte("no heading here\n"), 0o644))

	// Reserved directory with a descriptor must still be skipped.
	writeSkill(t, tmpDir, "docs", "---\nname: Sneaky\n---\n")

	// Directory without a descriptor is excluded even with other markdown.
	otherDir := filepath.Join(tmpDir, "not-a-skill")
	require.NoError(t, os.MkdirAll(otherDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(otherDir, "README.md"), []byte("# Not A Skill\n"), 0o644))

	// Plain files in the root are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "stray.md"), []byte("# Stray\n"), 0o644))

	builder, err := New()
	require.NoError(t, err)

	skills, err := builder.Build(ctx, tmpDir)
	require.NoError(t, err)
	require.Len(t, skills, 1)

	alpha := skills[0]
	assert.Equal(t, "Alpha", alpha.Name)
	assert.Equal(t, "a", alpha.Folder)
	assert.Equal(t, "desc", alpha.Description)
	assert.Equal(t, []Reference{
		{Title: "First Reference", File: "references/one.md"},
		{Title: "Two", File: "references/two.md"},
	}, alpha.References)
}

func TestBuild_LexicographicOrder(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	for _, folder := range []string{"zeta", "alpha", "mid"} {
		writeSkill(t, tmpDir, folder, "---\ndescription: d\n---\n")
	}

	builder, err := New()
	require.NoError(t, err)

	skills, err := builder.Build(ctx, tmpDir)
	require.NoError(t, err)
	require.Len(t, skills, 3)
	assert.Equal(t, "alpha", skills[0].Folder)
	assert.Equal(t, "mid", skills[1].Folder)
	assert.Equal(t, "zeta", skills[2].Folder)
}

func TestBuild_NameDefaultsToFolder(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	writeSkill(t, tmpDir, "my-skill", "# No frontmatter at all\n")
	writeSkill(t, tmpDir, "empty-name", "---\nname:\ndescription: set\n---\n")

	builder, err := New()
	require.NoError(t, err)

	skills, err := builder.Build(ctx, tmpDir)
	require.NoError(t, err)
	require.Len(t, skills, 2)

	assert.Equal(t, "empty-name", skills[0].Name)
	assert.Equal(t, "set", skills[0].Description)
	assert.Equal(t, "my-skill", skills[1].Name)
	assert.Equal(t, "", skills[1].Description)
	assert.Equal(t, []Reference{}, skills[1].References)
}

func TestBuild_ReferencePattern(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	dir := writeSkill(t, tmpDir, "a", "---\nname: Alpha\n---\n")
	refDir := filepath.Join(dir, ReferencesDirName)
	require.NoError(t, os.MkdirAll(refDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(refDir, "guide.md"), []byte("# Guide\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(refDir, "notes.txt"), []byte("# Notes\n"), 0o644))

	// Nested directories inside references are not descended into.
	require.NoError(t, os.MkdirAll(filepath.Join(refDir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(refDir, "nested", "deep.md"), []byte("# Deep\n"), 0o644))

	builder, err := New()
	require.NoError(t, err)

	skills, err := builder.Build(ctx, tmpDir)
	require.NoError(t, err)
	require.Len(t, skills, 1)
	assert.Equal(t, []Reference{{Title: "Guide", File: "references/guide.md"}}, skills[0].References)

	wide, err := New(WithReferencePattern("*"))
	require.NoError(t, err)

	skills, err = wide.Build(ctx, tmpDir)
	require.NoError(t, err)
	require.Len(t, skills[0].References, 2)
	assert.Equal(t, "references/notes.txt", skills[0].References[1].File)
}

func TestBuild_MissingRoot(t *testing.T) {
	builder, err := New()
	require.NoError(t, err)

	_, err = builder.Build(context.Background(), filepath.Join(t.TempDir(), "does-not-exist"))
	assert.Error(t, err)
}

func TestBuild_Deterministic(t *testing.T) {
	ctx := context.Background()
	tmpDir := t.TempDir()

	dir := writeSkill(t, tmpDir, "a", "---\nname: Alpha\ndescription: desc\n---\n")
	refDir := filepath.Join(dir, ReferencesDirName)
	require.NoError(t, os.MkdirAll(refDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(refDir, "one.md"), []byte("# One\n"), 0o644))

	builder, err := New()
	require.NoError(t, err)

	first, err := builder.Build(ctx, tmpDir)
	require.NoError(t, err)
	second, err := builder.Build(ctx, tmpDir)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestLookupOrDefault(t *testing.T) {
	meta := map[string]string{"name": "Alpha", "empty": ""}
	assert.Equal(t, "Alpha", lookupOrDefault(meta, "name", "fallback"))
	assert.Equal(t, "fallback", lookupOrDefault(meta, "missing", "fallback"))
	assert.Equal(t, "fallback", lookupOrDefault(meta, "empty", "fallback"))
}
