// Package index builds the consolidated skills index consumed by the
// documentation website. Skills are packaged as directories containing a
// SKILL.md descriptor with frontmatter plus an optional references/
// subdirectory of markdown documents. The index is rebuilt from scratch on
// every run and is fully deterministic for a given file system snapshot.
package index

// SkillFileName is the fixed descriptor file name that marks a directory
// as a skill package.
const SkillFileName = "SKILL.md"

// ReferencesDirName is the subdirectory holding a package's reference
// documents.
const ReferencesDirName = "references"

// Reference is one auxiliary document inside a package's references
// subdirectory. File is always a forward-slash path relative to the
// package directory.
type Reference struct {
	Title string `json:"title"`
	File  string `json:"file"`
}

// Skill is the unit emitted into the index. Folder is the literal directory
// name and is never defaulted away; Name falls back to Folder when the
// descriptor has no name of its own.
type Skill struct {
	Name        string      `json:"name"`
	Folder      string      `json:"folder"`
	Description string      `json:"description"`
	References  []Reference `json:"references"`
}
