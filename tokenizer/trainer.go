package tokenizer

import "fmt"

type trainState int

const (
	stReady trainState = iota
	stSelecting
	stMerging
	stDone
)

// minMergeFreq is the floor below which merging stops: a pair seen once
// cannot reduce fragmentation, it only grows the rule list.
const minMergeFreq = 2

// Trainer runs the merge loop over a word frequency table. Each step
// recomputes pair statistics, selects the maximal pair and rewrites every
// word containing it, recording the merge at the next rank. The loop ends
// when the merge budget is exhausted or no pair reaches the frequency floor.
//
// A Trainer is single-use: Finish yields the Model and the trainer cannot
// be stepped afterwards.
type Trainer struct {
	state    trainState
	vocab    *vocabState
	alphabet map[string]struct{}
	specials Specials
	merges   []MergeRule
	budget   int
	parallel bool
	distinct int
}

// TrainerOpts configures a Trainer.
type TrainerOpts struct {
	// MaxMerges is the merge budget; training may stop earlier when no
	// pair occurs at least twice.
	MaxMerges int
	// Specials override the reserved symbols. Zero value uses DefaultSpecials.
	Specials Specials
	// Parallel shards the per-iteration pair scan across GOMAXPROCS
	// workers. Selection order is unaffected.
	Parallel bool
}

// NewTrainer builds a trainer over already-segmented words. Words are split
// into runes and terminated with the configured end-of-word marker.
// Returns ErrEmptyCorpus when no words survive.
func NewTrainer(words []string, opts TrainerOpts) (*Trainer, error) {
	sp := opts.Specials
	if sp == (Specials{}) {
		sp = DefaultSpecials()
	}
	if !sp.valid() {
		return nil, fmt.Errorf("invalid specials %+v", sp)
	}
	vocab, err := newVocabState(words, sp.EndOfWord)
	if err != nil {
		return nil, err
	}
	return newTrainer(vocab, sp, opts), nil
}

// NewTrainerCounts is NewTrainer for a pre-counted word -> frequency multiset.
func NewTrainerCounts(counts map[string]int, opts TrainerOpts) (*Trainer, error) {
	sp := opts.Specials
	if sp == (Specials{}) {
		sp = DefaultSpecials()
	}
	if !sp.valid() {
		return nil, fmt.Errorf("invalid specials %+v", sp)
	}
	vocab, err := newVocabStateCounts(counts, sp.EndOfWord)
	if err != nil {
		return nil, err
	}
	return newTrainer(vocab, sp, opts), nil
}

func newTrainer(vocab *vocabState, sp Specials, opts TrainerOpts) *Trainer {
	t := &Trainer{
		state:    stReady,
		vocab:    vocab,
		alphabet: vocab.alphabet(),
		specials: sp,
		budget:   opts.MaxMerges,
		parallel: opts.Parallel,
		distinct: vocab.distinct(),
	}
	if t.budget <= 0 {
		t.state = stDone
	}
	return t
}

// Step performs one select+merge iteration. It returns false once the
// trainer is done, either because the budget is spent or because no pair
// reaches the frequency floor (early stop; the model is still valid).
func (t *Trainer) Step() bool {
	if t.state == stDone {
		return false
	}

	t.state = stSelecting
	var stats map[Pair]int
	if t.parallel {
		stats = pairStatsParallel(t.vocab.words)
	} else {
		stats = pairStats(t.vocab.words)
	}
	best, freq, ok := selectPair(stats)
	if !ok || freq < minMergeFreq {
		t.state = stDone
		return false
	}

	t.state = stMerging
	t.vocab.applyMerge(best)
	t.merges = append(t.merges, MergeRule{Left: best.Left, Right: best.Right})

	if len(t.merges) >= t.budget {
		t.state = stDone
		return false
	}
	t.state = stReady
	return true
}

// Train runs Step until done.
func (t *Trainer) Train() {
	for t.Step() {
	}
}

// Done reports whether the loop has terminated.
func (t *Trainer) Done() bool { return t.state == stDone }

// StoppedEarly reports whether training ended before the budget because no
// mergeable pair remained.
func (t *Trainer) StoppedEarly() bool { return t.state == stDone && len(t.merges) < t.budget }

// MergeCount returns the number of merges performed so far.
func (t *Trainer) MergeCount() int { return len(t.merges) }

// DistinctWords returns the number of distinct words the table was built
// from. Merges never change it: distinct surface words stay distinct.
func (t *Trainer) DistinctWords() int { return t.distinct }

// Finish completes any remaining iterations and builds the Model. The word
// frequency table is released; the trainer cannot be reused.
func (t *Trainer) Finish() *Model {
	t.Train()
	m := buildModel(t.merges, t.alphabet, t.specials)
	t.vocab = nil
	return m
}
