package frontmatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("document without frontmatter", func(t *testing.T) {
		text := "# Just a heading\n\nSome body text.\n"
		meta, body := Parse(text)
		assert.Empty(t, meta)
		assert.Equal(t, text, body)
	})

	t.Run("well-formed frontmatter", func(t *testing.T) {
		text := `---
name: "Foo"
description: A skill that does things
---
Body text`
		meta, body := Parse(text)
		assert.Equal(t, map[string]string{
			"name":        "Foo",
			"description": "A skill that does things",
		}, meta)
		assert.Equal(t, "Body text", body)
	})

	t.Run("unterminated frontmatter returns original text", func(t *testing.T) {
		text := "---\nname: Foo\nno closing delimiter here"
		meta, body := Parse(text)
		assert.Empty(t, meta)
		assert.Equal(t, text, body)
	})

	t.Run("lines without a colon are skipped", func(t *testing.T) {
		text := "---\nname: Foo\nthis line has no separator\nversion: 2\n---\nbody"
		meta, body := Parse(text)
		assert.Equal(t, map[string]string{"name": "Foo", "version": "2"}, meta)
		assert.Equal(t, "body", body)
	})

	t.Run("keys and values are trimmed", func(t *testing.T) {
		text := "---\n  name  :   Spaced Out   \n---\n"
		meta, _ := Parse(text)
		assert.Equal(t, "Spaced Out", meta["name"])
	})

	t.Run("value keeps colons after the first", func(t *testing.T) {
		text := "---\nurl: https://example.com/docs\n---\n"
		meta, _ := Parse(text)
		assert.Equal(t, "https://example.com/docs", meta["url"])
	})

	t.Run("closing delimiter may carry surrounding whitespace", func(t *testing.T) {
		text := "---\nname: Foo\n  ---  \nbody"
		meta, body := Parse(text)
		assert.Equal(t, "Foo", meta["name"])
		assert.Equal(t, "body", body)
	})

	t.Run("empty frontmatter block", func(t *testing.T) {
		text := "---\n---\nbody"
		meta, body := Parse(text)
		assert.Empty(t, meta)
		assert.Equal(t, "body", body)
	})

	t.Run("body spanning multiple lines", func(t *testing.T) {
		text := "---\nname: Foo\n---\nline one\nline two\n"
		_, body := Parse(text)
		assert.Equal(t, "line one\nline two\n", body)
	})

	t.Run("empty input", func(t *testing.T) {
		meta, body := Parse("")
		assert.Empty(t, meta)
		assert.Equal(t, "", body)
	})
}

func TestUnquote(t *testing.T) {
	assert.Equal(t, "Foo", unquote(`"Foo"`))
	assert.Equal(t, "Foo", unquote("Foo"))
	// Only one layer comes off, and only when quotes appear on both ends.
	assert.Equal(t, `"Foo"`, unquote(`""Foo""`))
	assert.Equal(t, `"Foo`, unquote(`"Foo`))
	assert.Equal(t, `Foo"`, unquote(`Foo"`))
	assert.Equal(t, `"`, unquote(`"`))
	assert.Equal(t, "", unquote(`""`))
	assert.Equal(t, "", unquote(""))
}
