// Package frontmatter implements the tolerant line-oriented metadata parser
// used for SKILL.md descriptors. The header is a block of key: value lines
// between two --- delimiter lines at the top of the document. Malformed
// input never produces an error; the parser degrades to "no metadata" and
// hands the text back unchanged.
package frontmatter

import "strings"

const delimiter = "---"

// Parse splits text into a metadata mapping and the remaining body.
//
// If text does not start with the --- delimiter, or the opening delimiter is
// never closed, the mapping is empty and the body is the original text.
// Otherwise the lines strictly between the delimiters are parsed as
// colon-separated key/value pairs and the body is everything after the
// closing delimiter. Lines without a colon are skipped.
func Parse(text string) (map[string]string, string) {
	meta := map[string]string{}
	if !strings.HasPrefix(text, delimiter) {
		return meta, text
	}

	lines := strings.Split(text, "\n")
	end := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			end = i
			break
		}
	}
	if end == -1 {
		return meta, text
	}

	for _, line := range lines[1:end] {
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		meta[strings.TrimSpace(key)] = unquote(strings.TrimSpace(value))
	}

	return meta, strings.Join(lines[end+1:], "\n")
}

// unquote strips one surrounding layer of double quotes when present on
// both ends. Escaped or nested quoting is out of contract and left as-is.
func unquote(value string) string {
	if len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`) {
		return value[1 : len(value)-1]
	}
	return value
}
