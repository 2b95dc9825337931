package content

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

var (
	bom       = []byte("\ufeff")
	delimiter = []byte("---")
)

// yamlFormat reads "---"-delimited headers with yaml.v3 so post metadata
// decodes the same way as the catalog files.
var yamlFormat = &frontmatter.Format{
	Start:     "---",
	End:       "---",
	Unmarshal: yaml.Unmarshal,
}

// frontMatter is the YAML header of a post. Unknown keys are ignored.
type frontMatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Tags        []string `yaml:"tags"`
	Description string   `yaml:"description"`
	CoverImage  string   `yaml:"coverImage"`
}

// splitFrontMatter separates a "---"-delimited YAML header from the markdown
// body. A leading BOM is dropped and CRLF line endings are normalised. Input
// without an opening delimiter has no front matter and is returned whole as
// the body; an opening delimiter without a closing one is an error.
func splitFrontMatter(raw []byte) (frontMatter, string, error) {
	raw = bytes.TrimPrefix(raw, bom)
	raw = bytes.ReplaceAll(raw, []byte("\r\n"), []byte("\n"))

	var fm frontMatter

	if !opensWithDelimiter(raw) {
		return fm, string(raw), nil
	}

	body, err := frontmatter.MustParse(bytes.NewReader(raw), &fm, yamlFormat)
	if errors.Is(err, frontmatter.ErrNotFound) {
		return fm, "", errors.New("front matter is not terminated")
	}
	if err != nil {
		return fm, "", fmt.Errorf("decode front matter: %w", err)
	}

	return fm, string(bytes.TrimLeft(body, "\n")), nil
}

// opensWithDelimiter reports whether the first non-blank line is "---".
func opensWithDelimiter(raw []byte) bool {
	for len(raw) > 0 {
		line, rest, _ := bytes.Cut(raw, []byte("\n"))
		if trimmed := bytes.TrimSpace(line); len(trimmed) > 0 {
			return bytes.Equal(trimmed, delimiter)
		}
		raw = rest
	}
	return false
}
