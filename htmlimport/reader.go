// Package htmlimport extracts chord-sheet text from a locally saved HTML
// page, such as a tab site page downloaded by the user. Fetching and
// scraping live sites is a collaborator's concern; this package only turns
// an HTML document that is already on disk into plain text for the
// pipeline.
package htmlimport

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"
)

// ExtractFile reads an HTML file and extracts its chord text.
func ExtractFile(filename string) (string, error) {
	f, err := os.Open(filename)
	if err != nil {
		return "", fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return Extract(f)
}

// Extract parses HTML from r and returns the song text. Chord sheets
// depend on monospaced column alignment, so <pre> blocks are preferred:
// when any exist, their contents (joined with blank lines) are the result.
// Without <pre> blocks the visible body text is returned line by line.
func Extract(r io.Reader) (string, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}

	var pres []string
	collectPre(doc, &pres)
	if len(pres) > 0 {
		return strings.Join(pres, "\n\n"), nil
	}

	var sb strings.Builder
	collectText(doc, &sb)
	return sb.String(), nil
}

// collectPre gathers the text content of every <pre> element.
func collectPre(n *html.Node, out *[]string) {
	if n.Type == html.ElementNode && n.Data == "pre" {
		var sb strings.Builder
		textContent(n, &sb)
		if t := strings.Trim(sb.String(), "\n"); t != "" {
			*out = append(*out, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectPre(c, out)
	}
}

// collectText gathers visible text, one line per block-ish element, and
// skips script and style contents.
func collectText(n *html.Node, sb *strings.Builder) {
	switch n.Type {
	case html.ElementNode:
		switch n.Data {
		case "script", "style", "head":
			return
		case "br":
			sb.WriteString("\n")
		}
	case html.TextNode:
		if t := strings.TrimSpace(n.Data); t != "" {
			sb.WriteString(t)
			sb.WriteString("\n")
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// textContent appends the raw text of n and its children, preserving
// whitespace (this matters inside <pre>).
func textContent(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		textContent(c, sb)
	}
}
