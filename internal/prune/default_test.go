package prune

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/Crit-Fumble/schemaprune/internal/config"
	"github.com/Crit-Fumble/schemaprune/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDefaultExtraction runs the built-in configuration against a cut-down
// copy of the full schema and checks the website-only result.
func TestDefaultExtraction(t *testing.T) {
	pruner, err := New(config.Default())
	require.NoError(t, err)

	doc, err := schema.Read(filepath.Join("testdata", "schema_full.prisma"))
	require.NoError(t, err)

	res, err := pruner.Run(doc)
	require.NoError(t, err)

	joined := res.Doc.Join()

	// RPG and Foundry blocks are gone entirely.
	assert.NotContains(t, joined, "model RpgPlayer")
	assert.NotContains(t, joined, "model RpgWorld")
	assert.NotContains(t, joined, "model RpgWorldWiki")
	assert.NotContains(t, joined, "model FoundryLicense")
	assert.ElementsMatch(t, []string{"RpgPlayer", "RpgWorld", "RpgWorldWiki", "FoundryLicense"}, res.ExcludedBlocks)

	// Website models survive untouched.
	assert.Contains(t, joined, "model CritSession {")
	assert.Contains(t, joined, "generator client {")
	assert.Contains(t, joined, "datasource db {")

	// CritUser keeps its own fields but no RPG relations.
	assert.Contains(t, joined, "model CritUser {")
	assert.Contains(t, joined, "sessions")
	assert.NotContains(t, joined, "RpgPlayer?")
	assert.NotContains(t, joined, "RpgWorld[]")
	assert.NotContains(t, joined, "authoredWorldWikiPages")
	assert.Equal(t, 3, res.ScrubbedLines)

	// The note landed once, directly before CritUser's closing brace.
	assert.True(t, res.NoteInserted)
	assert.Equal(t, 1, strings.Count(joined, "// NOTE: RPG-related relations"))
	lines := res.Doc.Lines()
	noteAt := -1
	for i, line := range lines {
		if strings.Contains(line, "// NOTE: RPG-related relations") {
			noteAt = i
		}
	}
	require.GreaterOrEqual(t, noteAt, 2)
	assert.Equal(t, "", lines[noteAt-1])
	assert.Contains(t, lines[noteAt+1], "// the separate Core Concepts database")
	assert.Equal(t, "}", strings.TrimSpace(lines[noteAt+2]))

	// Reported line count equals the joined output.
	assert.Equal(t, len(strings.Split(joined, "\n")), res.Doc.Len())

	// Projection of a projection is a no-op.
	again, err := pruner.Run(res.Doc)
	require.NoError(t, err)
	assert.Equal(t, joined, again.Doc.Join())
}
