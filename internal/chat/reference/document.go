// Package reference holds the club information document the chatbot answers from.
package reference

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

var ErrEmptyDocument = errors.New("reference document is empty")

// Document is read once at startup and never changes afterwards.
type Document struct {
	source string
	text   string
}

// Load reads the document at path. The file must be non-empty UTF-8 text.
func Load(path string) (Document, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read reference document: %w", err)
	}
	if !utf8.Valid(b) {
		return Document{}, fmt.Errorf("reference document %s is not valid UTF-8", path)
	}
	return New(path, string(b))
}

// New builds a Document from text already in memory.
func New(source, text string) (Document, error) {
	if strings.TrimSpace(text) == "" {
		return Document{}, fmt.Errorf("%s: %w", source, ErrEmptyDocument)
	}
	return Document{source: source, text: text}, nil
}

func (d Document) Text() string   { return d.text }
func (d Document) Source() string { return d.source }
func (d Document) Size() int      { return len(d.text) }

// Info is the summary reported by the health endpoint.
type Info struct {
	Source string `json:"source"`
	Bytes  int    `json:"bytes"`
}

func (d Document) Info() Info {
	return Info{Source: d.source, Bytes: len(d.text)}
}
