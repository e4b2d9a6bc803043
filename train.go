package bytepair

import (
	"strings"

	"github.com/bytepair/bytepair-go/tokenizer"
)

// Train learns a model from a sequence of documents. Each document is
// segmented into words with the default segmenter, then the merge loop runs
// until the budget is spent or no pair occurs at least twice. An input that
// produces no words reports tokenizer.ErrEmptyCorpus and no model.
func Train(docs []string, cfg TrainConfig) (*tokenizer.Model, TrainStats, error) {
	seg := tokenizer.NewWordSegmenter()
	var words []string
	for _, doc := range docs {
		if cfg.Lower {
			doc = strings.ToLower(doc)
		}
		words = append(words, tokenizer.Words(seg, doc)...)
	}

	tr, err := tokenizer.NewTrainer(words, tokenizer.TrainerOpts{
		MaxMerges: cfg.Merges,
		Specials:  cfg.specials(),
		Parallel:  cfg.Parallel,
	})
	if err != nil {
		return nil, TrainStats{}, err
	}
	model := tr.Finish()

	stats := TrainStats{
		MergesPerformed: model.MergeCount(),
		VocabSize:       model.VocabSize(),
		DistinctWords:   tr.DistinctWords(),
		StoppedEarly:    tr.StoppedEarly(),
	}
	return model, stats, nil
}
