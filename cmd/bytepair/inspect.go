package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bytepair/bytepair-go/tokenizer"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <model.json>",
	Short: "Print model statistics",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := tokenizer.LoadFile(args[0])
		if err != nil {
			return err
		}
		sp := model.Specials()
		fmt.Printf("vocab size   %d\n", model.VocabSize())
		fmt.Printf("merge rules  %d\n", model.MergeCount())
		fmt.Printf("specials     unk=%q pad=%q eow=%q\n", sp.Unknown, sp.Padding, sp.EndOfWord)
		if merges := model.Merges(); len(merges) > 0 {
			n := len(merges)
			if n > 5 {
				n = 5
			}
			fmt.Println("first merges:")
			for i := 0; i < n; i++ {
				fmt.Printf("  %4d  %q + %q\n", i, merges[i].Left, merges[i].Right)
			}
		}
		return nil
	},
}
