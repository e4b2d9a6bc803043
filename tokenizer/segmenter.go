package tokenizer

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Segmenter splits raw text into the word-level tokens the trainer and
// encoder consume. Next returns the end index (exclusive) of the segment
// starting at i. Whitespace runs are segments too; Words filters them out.
type Segmenter interface{ Next(s string, i int) int }

// wordSegmenter is the default splitter. It covers, in priority order:
// URLs, words with apostrophe contractions, plain word runs, whitespace
// runs, and single punctuation characters.
type wordSegmenter struct{}

// NewWordSegmenter creates the default word segmenter.
func NewWordSegmenter() Segmenter { return &wordSegmenter{} }

func (w *wordSegmenter) Next(s string, i int) int {
	if i >= len(s) {
		return i
	}
	if end := ruleURL(s, i); end > i {
		return end
	}
	if end := ruleWord(s, i); end > i {
		return end
	}
	if end := ruleSpaceRun(s, i); end > i {
		return end
	}
	// Single punctuation character.
	_, sz := utf8.DecodeRuneInString(s[i:])
	return i + sz
}

// Words runs the segmenter over text and returns the non-whitespace
// segments in order.
func Words(seg Segmenter, text string) []string {
	var out []string
	for i := 0; i < len(text); {
		end := seg.Next(text, i)
		if end <= i { // safety
			end = i + 1
		}
		piece := text[i:end]
		if strings.TrimSpace(piece) != "" {
			out = append(out, piece)
		}
		i = end
	}
	return out
}

// CleanText collapses whitespace runs to single spaces and trims the ends.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func ruleURL(s string, i int) int {
	rest := s[i:]
	var j int
	switch {
	case strings.HasPrefix(rest, "https://"):
		j = i + len("https://")
	case strings.HasPrefix(rest, "http://"):
		j = i + len("http://")
	default:
		return i
	}
	for j < len(s) {
		r, sz := utf8.DecodeRuneInString(s[j:])
		if unicode.IsSpace(r) {
			break
		}
		j += sz
	}
	return j
}

// ruleWord consumes a run of word characters with an optional single
// apostrophe continuation ("don't", "l'eau").
func ruleWord(s string, i int) int {
	j := consumeWordRun(s, i)
	if j == i {
		return i
	}
	if j < len(s) && s[j] == '\'' {
		if k := consumeWordRun(s, j+1); k > j+1 {
			return k
		}
	}
	return j
}

func consumeWordRun(s string, i int) int {
	j := i
	for j < len(s) {
		b := s[j]
		if b < utf8.RuneSelf {
			if !isASCIIWord(b) {
				break
			}
			j++
			continue
		}
		r, sz := utf8.DecodeRuneInString(s[j:])
		if !isWordRune(r) {
			break
		}
		j += sz
	}
	return j
}

func ruleSpaceRun(s string, i int) int {
	j := i
	for j < len(s) {
		b := s[j]
		if b < utf8.RuneSelf {
			if !isASCIISpace(b) {
				break
			}
			j++
			continue
		}
		r, sz := utf8.DecodeRuneInString(s[j:])
		if !unicode.IsSpace(r) {
			break
		}
		j += sz
	}
	return j
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.M, r) || r == '_'
}

func isASCIIWord(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9') || b == '_'
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	default:
		return false
	}
}
