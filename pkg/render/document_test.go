package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyValueAlignment(t *testing.T) {
	doc := NewDocument(32)
	doc.KeyValue("Volume", ": 20.00 liter")

	lines := doc.Lines()
	require.Len(t, lines, 1)
	assert.Len(t, lines[0].Text, 32)
	assert.True(t, strings.HasPrefix(lines[0].Text, "Volume"))
	assert.True(t, strings.HasSuffix(lines[0].Text, ": 20.00 liter"))
	assert.False(t, lines[0].Bold)
}

func TestKeyValueOverflowKeepsOneSpace(t *testing.T) {
	doc := NewDocument(10)
	doc.KeyValue("VeryLongKey", "LongValue")

	line := doc.Lines()[0].Text
	assert.Equal(t, "VeryLongKey LongValue", line)
}

func TestCenter(t *testing.T) {
	doc := NewDocument(20)
	doc.Center("ABCD")

	assert.Equal(t, "        ABCD", doc.Lines()[0].Text)
}

func TestBoldVariants(t *testing.T) {
	doc := NewDocument(32)
	doc.CenterBold("TOTAL")
	doc.KeyValueBold("CASH", "200.000")

	lines := doc.Lines()
	require.Len(t, lines, 2)
	assert.True(t, lines[0].Bold)
	assert.True(t, lines[1].Bold)
}

func TestSeparatorAndBlank(t *testing.T) {
	doc := NewDocument(16)
	doc.Separator('-').Blank()

	lines := doc.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Repeat("-", 16), lines[0].Text)
	assert.Equal(t, "", lines[1].Text)
}

func TestIndented(t *testing.T) {
	doc := NewDocument(32)
	doc.Indented("Harga Jual", ": 10.000")

	assert.True(t, strings.HasPrefix(doc.Lines()[0].Text, "  Harga Jual"))
}

func TestDefaultWidth(t *testing.T) {
	assert.Equal(t, 32, NewDocument(0).Width())
	assert.Equal(t, 40, NewDocument(40).Width())
}
