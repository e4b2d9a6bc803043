package bytepair

import (
	"github.com/bytepair/bytepair-go/tokenizer"
)

// TrainConfig controls a training run. The zero value is not usable; start
// from DefaultTrainConfig. Field tags match the YAML config files the CLI
// accepts.
type TrainConfig struct {
	// Merges is the merge budget; training may stop earlier when no pair
	// occurs at least twice.
	Merges int `yaml:"merges" json:"merges"`
	// EndOfWord is the reserved marker appended to every word.
	EndOfWord string `yaml:"end_of_word" json:"end_of_word"`
	// Unknown and Padding name the remaining reserved symbols.
	Unknown string `yaml:"unknown" json:"unknown"`
	Padding string `yaml:"padding" json:"padding"`
	// Lower folds input to lower case before segmentation.
	Lower bool `yaml:"lower" json:"lower"`
	// Parallel shards the per-iteration pair scan across CPUs.
	Parallel bool `yaml:"parallel" json:"parallel"`
}

// DefaultTrainConfig returns the configuration used when the caller does not
// override anything: 1000 merges, </w> marker, standard specials.
func DefaultTrainConfig() TrainConfig {
	sp := tokenizer.DefaultSpecials()
	return TrainConfig{
		Merges:    1000,
		EndOfWord: sp.EndOfWord,
		Unknown:   sp.Unknown,
		Padding:   sp.Padding,
	}
}

func (c TrainConfig) specials() tokenizer.Specials {
	sp := tokenizer.DefaultSpecials()
	if c.EndOfWord != "" {
		sp.EndOfWord = c.EndOfWord
	}
	if c.Unknown != "" {
		sp.Unknown = c.Unknown
	}
	if c.Padding != "" {
		sp.Padding = c.Padding
	}
	return sp
}

// TrainStats summarizes a completed run.
type TrainStats struct {
	MergesPerformed int  `json:"merges_performed"`
	VocabSize       int  `json:"vocab_size"`
	DistinctWords   int  `json:"distinct_words"`
	StoppedEarly    bool `json:"stopped_early"`
}

// Result is an encoded document: parallel token surfaces and ids, plus the
// number of tokens that fell back to the unknown id.
type Result struct {
	Tokens  []string         `json:"tokens"`
	IDs     []tokenizer.Rank `json:"ids"`
	Unknown int              `json:"unknown"`
}
