package schema

import (
	"fmt"
	"os"
	"strings"
)

// Document is an ordered sequence of schema text lines. It is not
// modified after construction; transformations build new Documents.
type Document struct {
	lines []string
}

// Read loads a schema document from disk.
func Read(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema %s: %w", path, err)
	}
	return ParseBytes(data), nil
}

// ParseBytes splits raw schema text into lines. Splitting is on "\n"
// only, so a trailing newline in the input shows up as a final empty
// line and survives a Join round trip unchanged.
func ParseBytes(data []byte) *Document {
	return &Document{lines: strings.Split(string(data), "\n")}
}

// FromLines wraps an already-split line sequence.
func FromLines(lines []string) *Document {
	return &Document{lines: lines}
}

// Lines returns the underlying line sequence. Callers must not mutate it.
func (d *Document) Lines() []string {
	return d.lines
}

// Len returns the number of lines.
func (d *Document) Len() int {
	return len(d.lines)
}

// Join serializes the document with "\n" separators. No trailing newline
// is appended beyond what the lines themselves carry.
func (d *Document) Join() string {
	return strings.Join(d.lines, "\n")
}

// Bytes returns the serialized document.
func (d *Document) Bytes() []byte {
	return []byte(d.Join())
}
