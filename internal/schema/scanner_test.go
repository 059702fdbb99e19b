package schema

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclaration(t *testing.T) {
	scanner, err := NewScanner("model")
	require.NoError(t, err)

	tests := []struct {
		line string
		name string
		ok   bool
	}{
		{"model CritUser {", "CritUser", true},
		{"model CritUser{", "CritUser", true},
		{"model   RpgPlayer   {", "RpgPlayer", true},
		{"model Excluded { }", "Excluded", true},
		{"  model Indented {", "", false},
		{"enum Role {", "", false},
		{"model MissingBrace", "", false},
		{"modelling Stuff {", "", false},
	}

	for _, tt := range tests {
		name, ok := scanner.Declaration(tt.line)
		assert.Equal(t, tt.ok, ok, "line: %q", tt.line)
		assert.Equal(t, tt.name, name, "line: %q", tt.line)
	}
}

func TestNewScannerCustomKeyword(t *testing.T) {
	scanner, err := NewScanner("type")
	require.NoError(t, err)

	name, ok := scanner.Declaration("type Widget {")
	assert.True(t, ok)
	assert.Equal(t, "Widget", name)

	_, ok = scanner.Declaration("model Widget {")
	assert.False(t, ok)
}

func TestNewScannerEmptyKeyword(t *testing.T) {
	_, err := NewScanner("")
	require.Error(t, err)
}

func TestBraceDelta(t *testing.T) {
	assert.Equal(t, 1, BraceDelta("model A {"))
	assert.Equal(t, -1, BraceDelta("}"))
	assert.Equal(t, 0, BraceDelta("model A { }"))
	assert.Equal(t, 0, BraceDelta("  id String @default(cuid())"))
	// Counting is textual; braces in comments still count.
	assert.Equal(t, 1, BraceDelta("  // a stray { in a comment"))
}

func TestBlocksFixture(t *testing.T) {
	scanner, err := NewScanner("model")
	require.NoError(t, err)

	doc, err := Read(filepath.Join("testdata", "schema_full.prisma"))
	require.NoError(t, err)

	blocks, err := scanner.Blocks(doc)
	require.NoError(t, err)
	require.Len(t, blocks, 4)

	assert.Equal(t, "CritUser", blocks[0].Name)
	assert.Equal(t, 10, blocks[0].Start)
	assert.Equal(t, 18, blocks[0].End)

	assert.Equal(t, "CritSession", blocks[1].Name)
	assert.Equal(t, "RpgPlayer", blocks[2].Name)
	assert.Equal(t, "RpgWorld", blocks[3].Name)
}

func TestBlocksSingleLine(t *testing.T) {
	scanner, err := NewScanner("model")
	require.NoError(t, err)

	doc := ParseBytes([]byte("model Tiny { }\nmodel Next {\n}"))

	blocks, err := scanner.Blocks(doc)
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	assert.Equal(t, Block{Name: "Tiny", Start: 1, End: 1}, blocks[0])
	assert.Equal(t, Block{Name: "Next", Start: 2, End: 3}, blocks[1])
}

func TestBlocksUnterminated(t *testing.T) {
	scanner, err := NewScanner("model")
	require.NoError(t, err)

	doc := ParseBytes([]byte("model Broken {\n  x Int"))

	_, err = scanner.Blocks(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Broken")
	assert.Contains(t, err.Error(), "unterminated")
}

func TestBlocksNestedDeclaration(t *testing.T) {
	scanner, err := NewScanner("model")
	require.NoError(t, err)

	doc := ParseBytes([]byte("model Outer {\nmodel Inner {\n}\n}"))

	_, err = scanner.Blocks(doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Inner")
	assert.Contains(t, err.Error(), "Outer")
}
