package tokenizer

import "errors"

// Rank is the 0-based position of a merge rule in training order. Lower
// ranks were learned earlier and take priority during encoding.
type Rank = uint32

// noRank is the sentinel for "no applicable merge".
const noRank = ^Rank(0)

// Pair is an ordered pair of adjacent symbols within a word.
type Pair struct {
	Left  string
	Right string
}

// lessPair is the canonical ordering used to break frequency ties during
// merge selection: lexicographic on the concatenated pair, then on the left
// symbol. It is a total order, so selection never depends on map iteration
// order.
func lessPair(a, b Pair) bool {
	ac, bc := a.Left+a.Right, b.Left+b.Right
	if ac != bc {
		return ac < bc
	}
	return a.Left < b.Left
}

// MergeRule is a learned pair whose rank is its index in Model.Merges.
type MergeRule struct {
	Left  string
	Right string
}

// Errors reported by training and model loading.
var (
	// ErrEmptyCorpus means the corpus produced no words; training never starts.
	ErrEmptyCorpus = errors.New("bytepair: empty corpus")
	// ErrCorruptModel means a persisted model failed shape validation on load.
	ErrCorruptModel = errors.New("bytepair: corrupt model")
)
