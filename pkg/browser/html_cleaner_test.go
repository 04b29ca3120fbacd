package browser

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanHTMLStripsNoise(t *testing.T) {
	raw := `<html><head><title>Example Domain</title>
<style>body { color: red; }</style>
<script>alert("hi");</script></head>
<body>
<!-- a comment -->
<h1>Example Domain</h1>
<p>This domain is for use in illustrative examples.</p>
<noscript>Enable JavaScript</noscript>
</body></html>`

	page, err := CleanHTML(raw, 5000)
	require.NoError(t, err)

	assert.Equal(t, "Example Domain", page.Title)
	assert.Contains(t, page.Text, "illustrative examples")
	assert.NotContains(t, page.Text, "alert")
	assert.NotContains(t, page.Text, "color: red")
	assert.NotContains(t, page.Text, "a comment")
	assert.NotContains(t, page.Text, "Enable JavaScript")
	assert.False(t, page.Truncated)
}

func TestCleanHTMLTruncates(t *testing.T) {
	raw := "<html><body><p>" + strings.Repeat("word ", 5000) + "</p></body></html>"

	page, err := CleanHTML(raw, 100)
	require.NoError(t, err)

	assert.True(t, page.Truncated)
	assert.LessOrEqual(t, len(page.Text), 100)
}

func TestCleanHTMLTruncatesOnRuneBoundary(t *testing.T) {
	raw := "<html><body><p>ab日本語テキスト</p></body></html>"

	page, err := CleanHTML(raw, 4)
	require.NoError(t, err)

	assert.True(t, page.Truncated)
	assert.True(t, utf8.ValidString(page.Text), "truncated text must not split a rune: %q", page.Text)
	assert.Equal(t, "ab", page.Text)
}

func TestCleanHTMLBlockStructure(t *testing.T) {
	raw := `<html><body><h1>Heading</h1><p>First.</p><p>Second.</p></body></html>`

	page, err := CleanHTML(raw, 5000)
	require.NoError(t, err)

	lines := strings.Split(page.Text, "\n")
	assert.GreaterOrEqual(t, len(lines), 3, "block elements should produce line breaks")
}

func TestCleanHTMLEmptyDocument(t *testing.T) {
	page, err := CleanHTML("", 100)
	require.NoError(t, err)
	assert.Empty(t, page.Text)
	assert.Empty(t, page.Title)
}
