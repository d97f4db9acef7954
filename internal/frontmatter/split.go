package frontmatter

import (
	"strings"
)

const Delimiter = "---"

// Split separates the metadata block from the body. The delimiter is matched
// anywhere in the text, so the block ends at the second "---" even when it is
// not on a line of its own. ok is false when there is no usable block, in
// which case body is the whole text.
func Split(text string) (block, body string, ok bool) {
	if !strings.HasPrefix(text, Delimiter) {
		return "", text, false
	}
	parts := strings.SplitN(text, Delimiter, 3)
	if len(parts) < 3 {
		return "", text, false
	}
	return parts[1], parts[2], true
}

type Document struct {
	Meta *Metadata
	Body string
	// Had reports whether a metadata block was found and decoded.
	Had bool
}

// Parse splits and decodes text. A decode failure still yields a usable
// Document (empty metadata, original text as body) together with the error,
// so callers can report it and move on.
func Parse(text string) (Document, error) {
	block, body, ok := Split(text)
	if !ok {
		return Document{Meta: &Metadata{}, Body: text}, nil
	}
	meta, err := Decode(block)
	if err != nil {
		return Document{Meta: &Metadata{}, Body: text}, err
	}
	return Document{Meta: meta, Body: body, Had: true}, nil
}
