package tokenizer

import (
	lru "github.com/hashicorp/golang-lru"
)

// encoderCacheSize bounds the per-word memoization cache. Natural-language
// input repeats words heavily, so a hit avoids the whole merge loop.
const encoderCacheSize = 8192

// encoded is the cached result for one word. Slices are shared across
// cache hits and must be treated as read-only.
type encoded struct {
	segs    []string
	ids     []Rank
	unknown int
}

// Encoder segments words with a trained Model. It applies merge rules in
// rank order: on every pass the lowest-rank rule applicable anywhere in the
// symbol sequence fires first, which keeps segmentation of unseen text
// consistent with how the vocabulary was learned. An Encoder is safe for
// concurrent use; the only shared mutable state is the internal cache.
type Encoder struct {
	model *Model
	cache *lru.Cache
}

// NewEncoder creates an encoder over a trained or loaded model.
func NewEncoder(m *Model) *Encoder {
	cache, _ := lru.New(encoderCacheSize)
	return &Encoder{model: m, cache: cache}
}

// Model returns the underlying model.
func (e *Encoder) Model() *Model { return e.model }

// Segments returns the subword surface strings for one word, end-of-word
// marker included on the final token. Concatenating them and stripping the
// marker reconstructs the word exactly.
func (e *Encoder) Segments(word string) []string {
	enc := e.encode(word)
	return append([]string(nil), enc.segs...)
}

// EncodeWord returns the token ids for one word. Symbols absent from the
// vocabulary map to the unknown id; this never fails.
func (e *Encoder) EncodeWord(word string) []Rank {
	enc := e.encode(word)
	return append([]Rank(nil), enc.ids...)
}

// EncodeWordStats is EncodeWord plus the number of tokens that fell back to
// the unknown id, for callers that want aggregate diagnostics.
func (e *Encoder) EncodeWordStats(word string) ([]Rank, int) {
	enc := e.encode(word)
	return append([]Rank(nil), enc.ids...), enc.unknown
}

func (e *Encoder) encode(word string) encoded {
	if v, ok := e.cache.Get(word); ok {
		return v.(encoded)
	}
	segs := e.MergeSymbols(splitWord(word, e.model.specials.EndOfWord))
	ids := make([]Rank, len(segs))
	unknown := 0
	for i, s := range segs {
		id, ok := e.model.ID(s)
		if !ok {
			id = IDUnknown
			unknown++
		}
		ids[i] = id
	}
	enc := encoded{segs: segs, ids: ids, unknown: unknown}
	e.cache.Add(word, enc)
	return enc
}

// MergeSymbols reduces a symbol sequence until no adjacent pair matches a
// merge rule. Each round scans for the lowest-rank applicable rule and
// rewrites exactly one occurrence, so rule priority is monotonic in rank.
// The process is finite (every rewrite shortens the sequence) and
// deterministic; a fully-merged sequence passes through unchanged.
// The sequence is rewritten in place and the returned slice aliases syms;
// callers that need the input afterwards must pass a copy.
func (e *Encoder) MergeSymbols(syms []string) []string {
	for len(syms) > 1 {
		best := noRank
		idx := -1
		for i := 0; i+1 < len(syms); i++ {
			if r := e.model.rankOf(Pair{syms[i], syms[i+1]}); r < best {
				best, idx = r, i
			}
		}
		if idx < 0 {
			break
		}
		syms[idx] = syms[idx] + syms[idx+1]
		syms = append(syms[:idx+1], syms[idx+2:]...)
	}
	return syms
}

// Decode maps token ids back to surface symbols. Unknown ids render as the
// unknown special.
func (e *Encoder) Decode(ids []Rank) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		if s, ok := e.model.Symbol(id); ok {
			out[i] = s
		} else {
			out[i] = e.model.specials.Unknown
		}
	}
	return out
}
