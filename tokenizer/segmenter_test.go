package tokenizer

import "testing"

func collectSegments(seg Segmenter, s string) []string {
	var out []string
	for i := 0; i < len(s); {
		end := seg.Next(s, i)
		if end <= i {
			end = i + 1
		}
		out = append(out, s[i:end])
		i = end
	}
	return out
}

func TestSegmenterSegments(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		expect []string
	}{
		{
			name:   "letters and spaces",
			text:   "hello   world",
			expect: []string{"hello", "   ", "world"},
		},
		{
			name:   "apostrophe contraction stays one word",
			text:   "don't stop",
			expect: []string{"don't", " ", "stop"},
		},
		{
			name:   "trailing apostrophe splits off",
			text:   "cats'",
			expect: []string{"cats", "'"},
		},
		{
			name:   "punctuation is a single token",
			text:   "end.",
			expect: []string{"end", "."},
		},
		{
			name:   "digits are word characters",
			text:   "v2 beta3",
			expect: []string{"v2", " ", "beta3"},
		},
		{
			name:   "url consumed whole",
			text:   "see https://example.com/a?b=c now",
			expect: []string{"see", " ", "https://example.com/a?b=c", " ", "now"},
		},
		{
			name:   "unicode letters",
			text:   "naïve 日本語",
			expect: []string{"naïve", " ", "日本語"},
		},
	}

	seg := NewWordSegmenter()
	for _, tc := range tests {
		segments := collectSegments(seg, tc.text)
		if len(segments) != len(tc.expect) {
			t.Fatalf("%s: segment count %d want %d (%v)", tc.name, len(segments), len(tc.expect), segments)
		}
		for i := range segments {
			if segments[i] != tc.expect[i] {
				t.Fatalf("%s: segment %d = %q want %q", tc.name, i, segments[i], tc.expect[i])
			}
		}
	}
}

func TestWordsFiltersWhitespace(t *testing.T) {
	words := Words(NewWordSegmenter(), "lo low  lower\nnewest")
	expect := []string{"lo", "low", "lower", "newest"}
	if len(words) != len(expect) {
		t.Fatalf("words = %v want %v", words, expect)
	}
	for i := range words {
		if words[i] != expect[i] {
			t.Fatalf("words = %v want %v", words, expect)
		}
	}
}

func TestCleanText(t *testing.T) {
	if got := CleanText("  a \t b\n\nc "); got != "a b c" {
		t.Fatalf("CleanText = %q", got)
	}
}
