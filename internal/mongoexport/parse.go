package mongoexport

import (
	"encoding/json"
	"io"
	"os"
	"regexp"
	"strings"
)

// Mongo shell wrappers that must be unwrapped before the payload is
// valid JSON.
var (
	objectIDPattern  = regexp.MustCompile(`ObjectId\("([^"]+)"\)`)
	numberIntPattern = regexp.MustCompile(`NumberInt\((\d+)\)`)
	isoDatePattern   = regexp.MustCompile(`ISODate\("([^"]+)"\)`)
)

func normalize(content string) string {
	content = objectIDPattern.ReplaceAllString(content, `"$1"`)
	content = numberIntPattern.ReplaceAllString(content, "$1")
	content = isoDatePattern.ReplaceAllString(content, `"$1"`)
	return content
}

// Parse reads a mongoexport or mongo shell dump and returns the player
// documents it contains. The format is messy in practice: shell type
// wrappers, multiple bare objects back to back, or a single JSON
// array. Objects that fail to decode are skipped rather than failing
// the whole parse; only a read failure is an error.
func Parse(r io.Reader) ([]PlayerDoc, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	text := normalize(string(content))

	docs := scanObjects(text)
	if len(docs) > 0 {
		return docs, nil
	}

	// Nothing found object by object; try the payload as plain JSON.
	var single PlayerDoc
	if err := json.Unmarshal([]byte(text), &single); err == nil {
		return []PlayerDoc{single}, nil
	}
	var list []PlayerDoc
	if err := json.Unmarshal([]byte(text), &list); err == nil {
		return list, nil
	}
	return nil, nil
}

// ParseFile reads and parses a dump from disk.
func ParseFile(path string) ([]PlayerDoc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// scanObjects walks the dump line by line, tracking brace depth so
// that multiple concatenated top-level objects come apart cleanly.
// Braces inside JSON strings do not count toward the depth.
func scanObjects(text string) []PlayerDoc {
	var (
		docs       []PlayerDoc
		current    []string
		depth      int
		inString   bool
		escapeNext bool
	)

	for _, line := range strings.Split(text, "\n") {
		if len(current) == 0 && !strings.Contains(line, "{") {
			continue
		}
		current = append(current, line)

		for _, char := range line {
			if escapeNext {
				escapeNext = false
				continue
			}
			switch {
			case char == '\\':
				escapeNext = true
			case char == '"':
				inString = !inString
			case inString:
			case char == '{' || char == '[':
				depth++
			case char == '}' || char == ']':
				depth--
			}
		}

		if depth == 0 && len(current) > 0 {
			var doc PlayerDoc
			raw := strings.Join(current, "\n")
			if err := json.Unmarshal([]byte(raw), &doc); err == nil && doc.Name() != "" {
				docs = append(docs, doc)
			}
			current = nil
		}
	}

	return docs
}
