// Package textwrap breaks text into lines of a fixed column width.
package textwrap

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Wrap greedily packs the words of text into lines of at most width columns.
//
// Whitespace between words on the same line is kept as written; the run of
// whitespace at a line break is dropped. Words are never split: a word wider
// than width is placed on a line of its own. A newline in text always starts
// a new line. Every result has at least one line.
//
// Columns are display columns, so East Asian wide characters count as two.
// Each whitespace rune counts as one.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}
	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(paragraph, width)...)
	}
	return lines
}

// LineCount returns the number of lines Wrap produces for text at width.
func LineCount(text string, width int) int {
	return len(Wrap(text, width))
}

// columns measures narrow-locale widths regardless of RUNEWIDTH_EASTASIAN or
// LC_ALL, so a layout wraps the same on every machine.
var columns = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// Width returns the column width of s as Wrap measures it.
func Width(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsSpace(r) {
			n++
			continue
		}
		n += columns.RuneWidth(r)
	}
	return n
}

// word is a run of non-space runes and the whitespace written before it.
type word struct {
	gap  string
	text string
}

func splitWords(paragraph string) (words []word, trailing string) {
	rest := paragraph
	for rest != "" {
		start := strings.IndexFunc(rest, func(r rune) bool { return !unicode.IsSpace(r) })
		if start < 0 {
			return words, rest
		}
		end := strings.IndexFunc(rest[start:], unicode.IsSpace)
		if end < 0 {
			end = len(rest) - start
		}
		words = append(words, word{gap: rest[:start], text: rest[start : start+end]})
		rest = rest[start+end:]
	}
	return words, ""
}

func wrapParagraph(paragraph string, width int) []string {
	words, trailing := splitWords(paragraph)

	var lines []string
	var line string
	for i, w := range words {
		switch {
		case i == 0:
			// Leading indentation stays on the first line.
			line = w.gap + w.text
		case Width(line)+Width(w.gap)+Width(w.text) <= width:
			line += w.gap + w.text
		default:
			lines = append(lines, line)
			line = w.text
		}
	}
	if Width(line)+Width(trailing) <= width {
		line += trailing
	}
	return append(lines, line)
}
