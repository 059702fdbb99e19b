package prune

import (
	"fmt"

	"github.com/Crit-Fumble/schemaprune/internal/schema"
)

// filter removes every excluded block in its entirety, declaration line
// through matching closing line. All other lines pass through in order.
func (p *Pruner) filter(lines []string, res *Result) ([]string, error) {
	out := make([]string, 0, len(lines))
	skipping := false
	depth := 0
	current := ""

	for i, line := range lines {
		if name, ok := p.scanner.Declaration(line); ok {
			if skipping {
				// Top-level blocks do not nest; a declaration here means
				// the skipped block never closed.
				return nil, fmt.Errorf("line %d: declaration of %q inside unterminated block %q", i+1, name, current)
			}
			if _, excluded := p.exclude[name]; excluded {
				res.ExcludedBlocks = append(res.ExcludedBlocks, name)
				// The declaration line's own net brace count decides
				// whether the block closes on this same line.
				if schema.BraceDelta(line) > 0 {
					skipping = true
					depth = schema.BraceDelta(line)
					current = name
				}
				continue
			}
			out = append(out, line)
			continue
		}

		if skipping {
			depth += schema.BraceDelta(line)
			if depth <= 0 {
				skipping = false
				current = ""
			}
			continue
		}

		out = append(out, line)
	}

	if skipping {
		return nil, fmt.Errorf("unterminated block %q: input ended at depth %d", current, depth)
	}

	return out, nil
}
