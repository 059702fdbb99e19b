// Package prune implements the schema extraction pipeline: block
// filtering by exclusion set, then relation scrubbing in the target block.
package prune

import (
	"fmt"
	"strings"

	"github.com/Crit-Fumble/schemaprune/internal/config"
	"github.com/Crit-Fumble/schemaprune/internal/schema"
	"github.com/simonhull/firebird-suite/fledge/generator"
	"github.com/simonhull/firebird-suite/fledge/output"
)

// Pruner applies the configured extraction to a schema document
type Pruner struct {
	cfg     *config.Config
	scanner *schema.Scanner
	exclude map[string]struct{}
	note    []string
}

// New creates a pruner from a validated config. The note template is
// rendered once, with the target name available as .Target.
func New(cfg *config.Config) (*Pruner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	scanner, err := schema.NewScanner(cfg.Keyword)
	if err != nil {
		return nil, err
	}

	exclude := make(map[string]struct{}, len(cfg.Exclude))
	for _, name := range cfg.Exclude {
		exclude[name] = struct{}{}
	}

	note, err := renderNote(cfg)
	if err != nil {
		return nil, err
	}

	return &Pruner{
		cfg:     cfg,
		scanner: scanner,
		exclude: exclude,
		note:    note,
	}, nil
}

func renderNote(cfg *config.Config) ([]string, error) {
	if len(cfg.Target.Note) == 0 {
		return nil, nil
	}

	renderer := generator.NewRenderer()
	data := struct {
		Target    string
		Fragments []string
	}{cfg.Target.Name, cfg.Target.Fragments}

	rendered, err := renderer.RenderString("note", strings.Join(cfg.Target.Note, "\n"), data)
	if err != nil {
		return nil, fmt.Errorf("rendering note template: %w", err)
	}
	return strings.Split(string(rendered), "\n"), nil
}

// Result holds the extracted document and what was done to produce it.
type Result struct {
	Doc *schema.Document

	// ExcludedBlocks are the names of blocks removed, in input order.
	ExcludedBlocks []string

	// ScrubbedLines counts lines dropped inside the target block.
	ScrubbedLines int

	// TargetFound reports whether the target block was seen at all.
	TargetFound bool

	// NoteInserted reports whether the note was added on this run
	// (false when the input already carried it).
	NoteInserted bool
}

// Run applies block filtering then relation scrubbing. The input document
// is left untouched. Re-running on the result is a no-op: excluded blocks
// are gone and the target block no longer contains any fragment.
func (p *Pruner) Run(doc *schema.Document) (*Result, error) {
	res := &Result{}

	filtered, err := p.filter(doc.Lines(), res)
	if err != nil {
		return nil, err
	}

	scrubbed, err := p.scrub(filtered, res)
	if err != nil {
		return nil, err
	}

	for _, name := range res.ExcludedBlocks {
		output.Verbose(fmt.Sprintf("Excluded block: %s", name))
	}
	if p.cfg.Target.Name != "" && !res.TargetFound {
		output.Verbose(fmt.Sprintf("Target block %s not present in input", p.cfg.Target.Name))
	}

	res.Doc = schema.FromLines(scrubbed)
	return res, nil
}
