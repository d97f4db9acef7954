package frontmatter

import (
	"errors"
	"fmt"
	"github.com/araddon/dateparse"
	"gopkg.in/yaml.v3"
	"strings"
)

var ErrInvalidFrontMatter = errors.New("invalid front matter")

// Decode parses a metadata block. Key order is kept. tags and categories
// holding plain scalar sequences become List values; date becomes a Date
// carrying the text exactly as it appears on its source line.
func Decode(block string) (*Metadata, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(block), &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFrontMatter, err)
	}
	meta := &Metadata{}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return meta, nil
	}
	root := doc.Content[0]
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return meta, nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w: expected a mapping, got %s", ErrInvalidFrontMatter, kindName(root.Kind))
	}

	lines := strings.Split(block, "\n")
	for i := 0; i+1 < len(root.Content); i += 2 {
		k, v := root.Content[i], root.Content[i+1]
		key := k.Value
		switch {
		case key == KeyDate:
			meta.fields = append(meta.fields, field{key: key, value: decodeDate(lines, k, v)})
		case key == KeyTags || key == KeyCategories:
			if l, ok := scalarSequence(v); ok {
				meta.fields = append(meta.fields, field{key: key, value: l})
				continue
			}
			meta.fields = append(meta.fields, field{key: key, value: Node{key: k, value: v}})
		default:
			meta.fields = append(meta.fields, field{key: key, value: Node{key: k, value: v}})
		}
	}
	return meta, nil
}

func decodeDate(lines []string, k, v *yaml.Node) Date {
	d := Date{Literal: v.Value}
	if idx := k.Line - 1; idx >= 0 && idx < len(lines) {
		line := strings.TrimSpace(lines[idx])
		if _, rest, found := strings.Cut(line, ":"); found {
			d.Literal = strings.TrimSpace(rest)
		}
	}
	if v.Kind == yaml.ScalarNode && v.Value != "" {
		if t, err := dateparse.ParseAny(v.Value); err == nil {
			d.Time = t
		}
	}
	return d
}

func scalarSequence(n *yaml.Node) (List, bool) {
	if n.Kind != yaml.SequenceNode {
		return nil, false
	}
	out := make(List, 0, len(n.Content))
	for _, c := range n.Content {
		if c.Kind != yaml.ScalarNode || c.Tag == "!!null" {
			return nil, false
		}
		out = append(out, c.Value)
	}
	return out, true
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.SequenceNode:
		return "sequence"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	}
	return "unknown"
}
