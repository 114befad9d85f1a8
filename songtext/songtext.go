// Package songtext normalizes raw chord/lyric text before classification.
// Pasted tab-site text often carries [ch]...[/ch] chord markup and
// [tab]...[/tab] block markers; both are stripped, best effort, so that a
// malformed or unterminated tag never costs a line.
package songtext

import "strings"

// markupReplacer removes the bracket markup tokens. Working on literal
// tokens (rather than a paired-tag parser) is what makes unterminated
// markup harmless: whatever is left simply stays in the text.
var markupReplacer = strings.NewReplacer(
	"[ch]", "",
	"[/ch]", "",
	"[tab]", "",
	"[/tab]", "",
)

// Normalize strips chord and tab markup and unifies line endings.
func Normalize(s string) string {
	s = markupReplacer.Replace(s)
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// Lines normalizes s and splits it into lines. Trailing blank lines are
// dropped; interior blank lines are kept because they separate stanzas.
func Lines(s string) []string {
	s = Normalize(s)
	lines := strings.Split(s, "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
