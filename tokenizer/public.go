package tokenizer

// Public thin wrappers to keep the package boundary small.

// Train runs the whole loop over already-segmented words and returns the
// finished model.
func Train(words []string, opts TrainerOpts) (*Model, error) {
	t, err := NewTrainer(words, opts)
	if err != nil {
		return nil, err
	}
	return t.Finish(), nil
}

// TrainCounts is Train for a pre-counted word -> frequency multiset.
func TrainCounts(counts map[string]int, opts TrainerOpts) (*Model, error) {
	t, err := NewTrainerCounts(counts, opts)
	if err != nil {
		return nil, err
	}
	return t.Finish(), nil
}
