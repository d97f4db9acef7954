package frontmatter

import (
	"bytes"
	"fmt"
	"gopkg.in/yaml.v3"
	"strings"
)

// Encode writes m back as a front matter block followed directly by body.
// Lists and dates are written by hand so their lines survive a round trip
// unchanged; every other field goes through yaml.v3 and may be reformatted.
func Encode(m *Metadata, body string) (string, error) {
	if m.Len() == 0 {
		return body, nil
	}

	var b strings.Builder
	b.WriteString(Delimiter)
	b.WriteString("\n")
	for _, f := range m.fields {
		switch v := f.value.(type) {
		case List:
			b.WriteString(f.key)
			b.WriteString(": [")
			b.WriteString(strings.Join(v, ", "))
			b.WriteString("]\n")
		case Date:
			b.WriteString(f.key)
			b.WriteString(":")
			if v.Literal != "" {
				b.WriteString(" ")
				b.WriteString(v.Literal)
			}
			b.WriteString("\n")
		case Node:
			s, err := encodePair(v)
			if err != nil {
				return "", fmt.Errorf("encode %s: %w", f.key, err)
			}
			b.WriteString(s)
			b.WriteString("\n")
		}
	}
	b.WriteString(Delimiter)
	b.WriteString(body)
	return b.String(), nil
}

func encodePair(n Node) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	pair := &yaml.Node{Kind: yaml.MappingNode, Content: []*yaml.Node{n.key, n.value}}
	if err := enc.Encode(pair); err != nil {
		return "", err
	}
	if err := enc.Close(); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}
