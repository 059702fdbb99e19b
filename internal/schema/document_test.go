package schema

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadFixture(t *testing.T) {
	doc, err := Read(filepath.Join("testdata", "schema_full.prisma"))

	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "generator client {", doc.Lines()[0])
}

func TestReadMissingFile(t *testing.T) {
	doc, err := Read(filepath.Join("testdata", "does_not_exist.prisma"))

	require.Error(t, err)
	assert.Nil(t, doc)
	assert.Contains(t, err.Error(), "does_not_exist.prisma")
}

func TestParseBytesRoundTrip(t *testing.T) {
	// A trailing newline becomes a final empty line and survives Join.
	input := "model A {\n  x Int\n}\n"
	doc := ParseBytes([]byte(input))

	require.Equal(t, 4, doc.Len())
	assert.Equal(t, "", doc.Lines()[3])
	assert.Equal(t, input, doc.Join())
}

func TestParseBytesNoTrailingNewline(t *testing.T) {
	input := "model A {\n}"
	doc := ParseBytes([]byte(input))

	require.Equal(t, 2, doc.Len())
	assert.Equal(t, input, doc.Join())
}

func TestFromLines(t *testing.T) {
	doc := FromLines([]string{"a", "b"})

	assert.Equal(t, 2, doc.Len())
	assert.Equal(t, "a\nb", doc.Join())
	assert.Equal(t, []byte("a\nb"), doc.Bytes())
}
