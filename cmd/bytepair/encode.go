package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bytepair/bytepair-go"
	"github.com/bytepair/bytepair-go/tokenizer"
)

var encodeFlags struct {
	model    string
	ids      bool
	stats    bool
	baseline string
}

var encodeCmd = &cobra.Command{
	Use:   "encode [text...]",
	Short: "Segment text with a trained model",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := tokenizer.LoadFile(encodeFlags.model)
		if err != nil {
			return err
		}
		text := strings.Join(args, " ")
		res := bytepair.NewTextEncoder(model).EncodeText(text)

		fmt.Println(strings.Join(res.Tokens, " "))
		if encodeFlags.ids {
			fmt.Println(formatIDs(res.IDs))
		}
		if encodeFlags.stats {
			fmt.Printf("tokens %d  unknown %d  vocab %d  merges %d\n",
				len(res.Tokens), res.Unknown, model.VocabSize(), model.MergeCount())
		}
		if encodeFlags.baseline != "" {
			n, err := baselineCount(encodeFlags.baseline, text)
			if err != nil {
				return err
			}
			fmt.Printf("baseline %s: %d tokens (this model: %d)\n", encodeFlags.baseline, n, len(res.Tokens))
		}
		return nil
	},
}

func formatIDs(ids []tokenizer.Rank) string {
	var b strings.Builder
	for i, id := range ids {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%d", id)
	}
	return b.String()
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeFlags.model, "model", "m", "model.json", "model file")
	encodeCmd.Flags().BoolVar(&encodeFlags.ids, "ids", false, "also print token ids")
	encodeCmd.Flags().BoolVar(&encodeFlags.stats, "stats", false, "print diagnostic statistics")
	encodeCmd.Flags().StringVar(&encodeFlags.baseline, "baseline", "", "compare token count against a tiktoken encoding (e.g. cl100k_base)")
}
