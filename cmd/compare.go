package cmd

import (
	"github.com/jjtimmons/superkmers/internal/superkmers"
	"github.com/spf13/cobra"
)

// compareCmd is for checking streaming extraction against the reference
var compareCmd = &cobra.Command{
	Use:                        "compare [fasta] ... [fastaN]",
	Short:                      "Check streaming extraction against the reference extractor",
	Run:                        superkmers.CompareCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Extract the superkmers of each sequence twice: with the streaming extractor
and with a slow reference that finds every k-mer's minimizer independently.
A table of superkmer counts is written out and the command fails if the two
extractors disagree on any sequence. --verbose logs each differing superkmer.`,
	Example: "  superkmers compare -k 21 -l 7 --scheme lex test.fa",
	Aliases: []string{"check"},
}

// set flags
func init() {
	compareCmd.Flags().StringP("seq", "q", "", "sequence to compare on, instead of FASTA")
	compareCmd.Flags().StringP("out", "o", "", "output file name (stdout if empty)")
	compareCmd.Flags().IntP("k", "k", 31, "k-mer length")
	compareCmd.Flags().IntP("l", "l", 8, "minimizer length")
	compareCmd.Flags().StringP("scheme", "m", "hash", "minimizer ranking: hash, lex or syncmer")
	compareCmd.Flags().Bool("canonical", true, "rank an l-mer and its reverse complement the same")

	rootCmd.AddCommand(compareCmd)
}
