package prune

import (
	"fmt"
	"strings"

	"github.com/Crit-Fumble/schemaprune/internal/schema"
)

// scrub drops relation lines inside the target block and inserts the note
// (one blank line, then the note lines) immediately before the block's
// closing line, exactly once.
//
// The closing line is found by the same textual brace tracking the filter
// uses, so nested braces inside the target block do not end it early.
// Comment lines are never fragment-matched and an already-present note is
// not re-inserted, which keeps the transformation idempotent even though
// the default note text mentions the scrubbed relation names.
func (p *Pruner) scrub(lines []string, res *Result) ([]string, error) {
	if p.cfg.Target.Name == "" {
		return lines, nil
	}

	out := make([]string, 0, len(lines))
	inTarget := false
	depth := 0
	notePresent := false

	for _, line := range lines {
		if !inTarget {
			if name, ok := p.scanner.Declaration(line); ok && name == p.cfg.Target.Name {
				res.TargetFound = true
				out = append(out, line)
				depth = schema.BraceDelta(line)
				inTarget = depth > 0
				continue
			}
			out = append(out, line)
			continue
		}

		if depth+schema.BraceDelta(line) <= 0 {
			// Closing line of the target block.
			if !notePresent && len(p.note) > 0 {
				out = append(out, "")
				out = append(out, p.note...)
				res.NoteInserted = true
				notePresent = true
			}
			out = append(out, line)
			inTarget = false
			continue
		}
		depth += schema.BraceDelta(line)

		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "//") {
			if len(p.note) > 0 && trimmed == strings.TrimSpace(p.note[0]) {
				notePresent = true
			}
			out = append(out, line)
			continue
		}

		if p.matchesFragment(line) {
			res.ScrubbedLines++
			continue
		}

		out = append(out, line)
	}

	if inTarget {
		return nil, fmt.Errorf("unterminated block %q: input ended at depth %d", p.cfg.Target.Name, depth)
	}

	return out, nil
}

func (p *Pruner) matchesFragment(line string) bool {
	for _, fragment := range p.cfg.Target.Fragments {
		if strings.Contains(line, fragment) {
			return true
		}
	}
	return false
}
