package browser

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// CleanedPage is page content reduced to translator-ready text.
type CleanedPage struct {
	Title     string
	Text      string
	Truncated bool
}

// skippedElements are dropped entirely during cleaning: they contribute
// no user-visible prose and inflate translator prompts.
var skippedElements = map[string]struct{}{
	"script":   {},
	"style":    {},
	"noscript": {},
	"template": {},
	"iframe":   {},
	"svg":      {},
	"head":     {},
}

// blockElements get a newline separator so extracted text keeps a
// rough reading structure.
var blockElements = map[string]struct{}{
	"p": {}, "div": {}, "section": {}, "article": {}, "li": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
	"tr": {}, "br": {}, "blockquote": {}, "pre": {},
}

// CleanHTML strips markup noise from raw HTML and returns the page's
// visible text, truncated to maxLen characters. Scripts, styles and
// comments are dropped; block boundaries become newlines.
func CleanHTML(raw string, maxLen int) (*CleanedPage, error) {
	doc, err := html.Parse(strings.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	page := &CleanedPage{Title: findTitle(doc)}

	var b strings.Builder
	page.Truncated = collectText(doc, &b, maxLen)
	page.Text = strings.TrimSpace(collapseBlankLines(b.String()))
	return page, nil
}

// findTitle walks the tree for the first <title> element's text.
func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
			return strings.TrimSpace(n.FirstChild.Data)
		}
		return ""
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := findTitle(c); title != "" {
			return title
		}
	}
	return ""
}

// collectText appends a node's visible text to b, reporting truncation.
func collectText(n *html.Node, b *strings.Builder, maxLen int) bool {
	if b.Len() >= maxLen {
		return true
	}

	switch n.Type {
	case html.CommentNode:
		return false
	case html.ElementNode:
		if _, skip := skippedElements[strings.ToLower(n.Data)]; skip {
			return false
		}
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text != "" {
			remaining := maxLen - b.Len()
			if len(text) > remaining {
				// Back up to a rune boundary so truncation never
				// splits a multi-byte character.
				for remaining > 0 && !utf8.RuneStart(text[remaining]) {
					remaining--
				}
				b.WriteString(text[:remaining])
				return true
			}
			b.WriteString(text)
			b.WriteByte(' ')
		}
		return false
	}

	truncated := false
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if collectText(c, b, maxLen) {
			truncated = true
			break
		}
	}

	if n.Type == html.ElementNode {
		if _, block := blockElements[strings.ToLower(n.Data)]; block {
			b.WriteByte('\n')
		}
	}
	return truncated
}

// collapseBlankLines squeezes runs of blank lines down to one.
func collapseBlankLines(s string) string {
	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		trimmed := strings.TrimRight(line, " \t")
		if strings.TrimSpace(trimmed) == "" {
			if !blank {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, trimmed)
	}
	return strings.Join(out, "\n")
}
