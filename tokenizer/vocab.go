package tokenizer

import "strings"

// wordEntry is one distinct corpus word: its current symbol sequence and the
// number of times it occurred. The sequence always ends with the end-of-word
// marker; concatenating the symbols and stripping the marker reconstructs
// the surface word exactly.
type wordEntry struct {
	syms []string
	freq int
}

// vocabState is the training-time word frequency table. Entries keep corpus
// encounter order; merge steps rewrite symbol sequences in place but never
// add or remove entries, so total frequency mass is constant across the run.
type vocabState struct {
	words []wordEntry
	index map[string]int // joined symbol key -> position in words
}

// newVocabState builds the table from already-segmented words. Each word is
// split into runes and terminated with the end-of-word marker; identical
// surface words coalesce by summing counts. An input that yields no words is
// reported as ErrEmptyCorpus.
func newVocabState(words []string, eow string) (*vocabState, error) {
	v := &vocabState{index: make(map[string]int)}
	for _, w := range words {
		if w == "" {
			continue
		}
		v.add(w, eow, 1)
	}
	if len(v.words) == 0 {
		return nil, ErrEmptyCorpus
	}
	return v, nil
}

// newVocabStateCounts builds the table from pre-counted words, e.g. a corpus
// that has already been reduced to a word -> frequency multiset.
func newVocabStateCounts(counts map[string]int, eow string) (*vocabState, error) {
	v := &vocabState{index: make(map[string]int, len(counts))}
	for w, n := range counts {
		if w == "" || n <= 0 {
			continue
		}
		v.add(w, eow, n)
	}
	if len(v.words) == 0 {
		return nil, ErrEmptyCorpus
	}
	return v, nil
}

func (v *vocabState) add(word, eow string, n int) {
	syms := splitWord(word, eow)
	key := strings.Join(syms, "\x00")
	if i, ok := v.index[key]; ok {
		v.words[i].freq += n
		return
	}
	v.index[key] = len(v.words)
	v.words = append(v.words, wordEntry{syms: syms, freq: n})
}

// splitWord breaks a surface word into single-rune symbols and appends the
// end-of-word marker.
func splitWord(word, eow string) []string {
	syms := make([]string, 0, len(word)+1)
	for _, r := range word {
		syms = append(syms, string(r))
	}
	return append(syms, eow)
}

// alphabet returns the set of symbols currently present across all words.
// Called before any merge it yields the base alphabet plus the marker.
func (v *vocabState) alphabet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range v.words {
		for _, s := range w.syms {
			set[s] = struct{}{}
		}
	}
	return set
}

// applyMerge rewrites every word, replacing each adjacent whole-symbol
// occurrence of the pair with its concatenation. A symbol consumed by one
// replacement cannot start another, matching a left-to-right single pass.
func (v *vocabState) applyMerge(p Pair) {
	joined := p.Left + p.Right
	for i := range v.words {
		syms := v.words[i].syms
		if !containsPair(syms, p) {
			continue
		}
		out := make([]string, 0, len(syms)-1)
		for j := 0; j < len(syms); {
			if j+1 < len(syms) && syms[j] == p.Left && syms[j+1] == p.Right {
				out = append(out, joined)
				j += 2
			} else {
				out = append(out, syms[j])
				j++
			}
		}
		v.words[i].syms = out
	}
}

func containsPair(syms []string, p Pair) bool {
	for j := 0; j+1 < len(syms); j++ {
		if syms[j] == p.Left && syms[j+1] == p.Right {
			return true
		}
	}
	return false
}

// distinct reports the number of distinct word entries.
func (v *vocabState) distinct() int { return len(v.words) }
