package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bytepair",
	Short: "Byte-pair-encoding subword trainer and encoder",
	Long: `bytepair learns an ordered sequence of symbol-merge rules from a text
corpus and applies the learned rules to segment new text into subword
tokens. Models persist as JSON and round-trip exactly.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(inspectCmd)
}
