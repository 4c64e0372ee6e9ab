package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderHeading(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render([]byte("# Hello"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<h1 id=\"hello\">Hello</h1>")
}

func TestRenderGFMTable(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render([]byte("| a | b |\n| - | - |\n| 1 | 2 |\n"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<table>")
}

func TestRenderRawHTMLPassthrough(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render([]byte("<em>kept</em>"))
	require.NoError(t, err)
	assert.Contains(t, string(out), "<em>kept</em>")
}

func TestRenderEmptySource(t *testing.T) {
	r := NewRenderer()

	out, err := r.Render(nil)
	require.NoError(t, err)
	assert.Empty(t, string(out))
}
