package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bytepair/bytepair-go"
	"github.com/bytepair/bytepair-go/tokenizer"
)

var trainFlags struct {
	input    string
	output   string
	config   string
	merges   int
	eow      string
	lower    bool
	parallel bool
	sample   string
}

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Learn merge rules from a corpus and save the model",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := bytepair.DefaultTrainConfig()
		if trainFlags.config != "" {
			var err error
			if cfg, err = bytepair.LoadTrainConfig(trainFlags.config); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("merges") {
			cfg.Merges = trainFlags.merges
		}
		if cmd.Flags().Changed("eow") {
			cfg.EndOfWord = trainFlags.eow
		}
		if cmd.Flags().Changed("lower") {
			cfg.Lower = trainFlags.lower
		}
		if cmd.Flags().Changed("parallel") {
			cfg.Parallel = trainFlags.parallel
		}

		docs := bytepair.DemoCorpus()
		if trainFlags.input != "" {
			var err error
			if docs, err = bytepair.ReadCorpusFile(trainFlags.input); err != nil {
				return err
			}
		}

		model, stats, err := bytepair.Train(docs, cfg)
		if err != nil {
			return err
		}
		if err := tokenizer.SaveFile(trainFlags.output, model); err != nil {
			return err
		}

		fmt.Printf("saved %s\n", trainFlags.output)
		fmt.Printf("merges %d/%d  vocab %d  distinct words %d\n",
			stats.MergesPerformed, cfg.Merges, stats.VocabSize, stats.DistinctWords)
		if stats.StoppedEarly {
			fmt.Println("stopped early: no pair occurred at least twice")
		}
		if trainFlags.sample != "" {
			res := bytepair.NewTextEncoder(model).EncodeText(trainFlags.sample)
			fmt.Printf("sample: %s\n", strings.Join(res.Tokens, " "))
		}
		return nil
	},
}

func init() {
	trainCmd.Flags().StringVarP(&trainFlags.input, "input", "i", "", "corpus file (default: built-in demo corpus)")
	trainCmd.Flags().StringVarP(&trainFlags.output, "output", "o", "model.json", "output model path")
	trainCmd.Flags().StringVarP(&trainFlags.config, "config", "c", "", "YAML training config")
	trainCmd.Flags().IntVarP(&trainFlags.merges, "merges", "m", 1000, "merge budget")
	trainCmd.Flags().StringVar(&trainFlags.eow, "eow", "</w>", "end-of-word marker symbol")
	trainCmd.Flags().BoolVar(&trainFlags.lower, "lower", false, "lowercase the corpus before segmentation")
	trainCmd.Flags().BoolVar(&trainFlags.parallel, "parallel", false, "shard the per-iteration pair scan across CPUs")
	trainCmd.Flags().StringVar(&trainFlags.sample, "sample", "", "encode this text with the fresh model and print the tokens")
}
