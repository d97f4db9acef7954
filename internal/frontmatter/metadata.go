package frontmatter

import (
	"fmt"
	"gopkg.in/yaml.v3"
	"time"
)

const (
	KeyTags       = "tags"
	KeyCategories = "categories"
	KeyDate       = "date"
	KeyTitle      = "title"
)

// Value is one of List, Date or Node.
type Value interface {
	isValue()
}

// List is a tags/categories sequence; it is always written inline as [a, b].
type List []string

// Date keeps the literal source text next to the parsed time. Time is zero
// when the literal could not be parsed; Literal is what gets written back.
type Date struct {
	Literal string
	Time    time.Time
}

// Node is any other value, re-encoded through yaml.v3.
type Node struct {
	key   *yaml.Node
	value *yaml.Node
}

func (List) isValue() {}
func (Date) isValue() {}
func (Node) isValue() {}

type field struct {
	key   string
	value Value
}

// Metadata is an ordered key/value mapping decoded from a front matter block.
type Metadata struct {
	fields []field
}

func (m *Metadata) Len() int {
	if m == nil {
		return 0
	}
	return len(m.fields)
}

func (m *Metadata) Keys() []string {
	if m == nil {
		return nil
	}
	keys := make([]string, 0, len(m.fields))
	for _, f := range m.fields {
		keys = append(keys, f.key)
	}
	return keys
}

func (m *Metadata) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	for _, f := range m.fields {
		if f.key == key {
			return f.value, true
		}
	}
	return nil, false
}

// Set replaces the value of key in place, or appends it when absent.
func (m *Metadata) Set(key string, v Value) {
	for i := range m.fields {
		if m.fields[i].key == key {
			m.fields[i].value = v
			return
		}
	}
	m.fields = append(m.fields, field{key: key, value: v})
}

// SetScalar stores value as a YAML scalar. Strings are double-quoted when
// quoted is set; other values keep the encoder's plain style.
func (m *Metadata) SetScalar(key string, value any, quoted bool) error {
	var n yaml.Node
	if err := n.Encode(value); err != nil {
		return err
	}
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("%s: not a scalar value", key)
	}
	if quoted && n.Tag == "!!str" {
		n.Style = yaml.DoubleQuotedStyle
	}
	k := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
	m.Set(key, Node{key: k, value: &n})
	return nil
}

// Strings returns a copy of a List field.
func (m *Metadata) Strings(key string) ([]string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return nil, false
	}
	l, ok := v.(List)
	if !ok {
		return nil, false
	}
	return append([]string{}, l...), true
}

func (m *Metadata) SetStrings(key string, values []string) {
	m.Set(key, List(append([]string{}, values...)))
}

func (m *Metadata) Date() (Date, bool) {
	v, ok := m.Get(KeyDate)
	if !ok {
		return Date{}, false
	}
	d, ok := v.(Date)
	return d, ok
}

// Scalar returns the raw text of a scalar field. Quoted values come back
// without their quotes.
func (m *Metadata) Scalar(key string) (string, bool) {
	v, ok := m.Get(key)
	if !ok {
		return "", false
	}
	switch t := v.(type) {
	case Node:
		if t.value.Kind != yaml.ScalarNode || t.value.Tag == "!!null" {
			return "", false
		}
		return t.value.Value, true
	case Date:
		return t.Literal, true
	}
	return "", false
}

func (m *Metadata) Bool(key string) bool {
	v, ok := m.Get(key)
	if !ok {
		return false
	}
	n, ok := v.(Node)
	if !ok {
		return false
	}
	var b bool
	if err := n.value.Decode(&b); err != nil {
		return false
	}
	return b
}
