package schema

import (
	"fmt"
	"regexp"
	"strings"
)

// Scanner recognizes top-level block declarations of the form
// "<keyword> <Name> {" and tracks brace depth line by line.
//
// Brace counting is purely textual: literal brace characters are counted
// wherever they appear on a line, including inside comments or string
// content. A comment-aware tokenizer would change which lines close a
// block, so any replacement must keep this behavior.
type Scanner struct {
	keyword string
	decl    *regexp.Regexp
}

// NewScanner builds a scanner for declarations led by the given keyword.
func NewScanner(keyword string) (*Scanner, error) {
	if keyword == "" {
		return nil, fmt.Errorf("declaration keyword is empty")
	}
	decl, err := regexp.Compile(`^` + regexp.QuoteMeta(keyword) + `\s+(\w+)\s*\{`)
	if err != nil {
		return nil, fmt.Errorf("compiling declaration pattern: %w", err)
	}
	return &Scanner{keyword: keyword, decl: decl}, nil
}

// Declaration reports whether line declares a top-level block, and the
// declared name if so.
func (s *Scanner) Declaration(line string) (string, bool) {
	m := s.decl.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// BraceDelta returns the net brace count of a line: opening braces minus
// closing braces, counted textually.
func BraceDelta(line string) int {
	return strings.Count(line, "{") - strings.Count(line, "}")
}

// Block is a named top-level block and its line span (1-based, inclusive).
type Block struct {
	Name  string `yaml:"name"`
	Start int    `yaml:"start"`
	End   int    `yaml:"end"`
}

// Blocks lists every top-level block in the document in order. It fails
// on structurally malformed input: a declaration inside an open block, or
// a block still open at end of input.
func (s *Scanner) Blocks(doc *Document) ([]Block, error) {
	var blocks []Block
	open := -1 // index into blocks of the currently open block
	depth := 0

	for i, line := range doc.Lines() {
		if name, ok := s.Declaration(line); ok {
			if open >= 0 {
				return nil, fmt.Errorf("line %d: declaration of %q inside unterminated block %q", i+1, name, blocks[open].Name)
			}
			blocks = append(blocks, Block{Name: name, Start: i + 1, End: i + 1})
			depth = BraceDelta(line)
			if depth > 0 {
				open = len(blocks) - 1
			}
			continue
		}
		if open >= 0 {
			depth += BraceDelta(line)
			if depth <= 0 {
				blocks[open].End = i + 1
				open = -1
			}
		}
	}

	if open >= 0 {
		return nil, fmt.Errorf("unterminated block %q: input ended at depth %d", blocks[open].Name, depth)
	}

	return blocks, nil
}
