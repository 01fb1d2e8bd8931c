package cmd

import (
	"github.com/jjtimmons/superkmers/internal/superkmers"
	"github.com/spf13/cobra"
)

// extractCmd is for splitting sequences into superkmers
var extractCmd = &cobra.Command{
	Use:                        "extract [fasta] ... [fastaN]",
	Short:                      "Extract the superkmers of sequences",
	Run:                        superkmers.ExtractCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Extract the superkmers of every sequence in the FASTA files passed, or of
a sequence passed with --seq. With neither, FASTA is read from stdin.

A superkmer is a run of consecutive k-mers that share a minimizer: the
l-mer with the lowest score in each k-mer. k-mers whose lowest score is
tied between l-mers are given superkmers of their own. Each superkmer is
written in its canonical orientation, with the offset of its minimizer.

Sequences shorter than k are skipped with a warning.`,
	Example: `  superkmers extract -k 31 -l 8 genome.fa
  superkmers extract --scheme lex --seq GGAACAAGG -k 5 -l 2 --verbose
  superkmers extract --format binary reads.fa.gz -o reads.skm`,
	Aliases: []string{"split"},
}

// set flags
func init() {
	extractCmd.Flags().StringP("seq", "q", "", "sequence to extract superkmers from, instead of FASTA")
	extractCmd.Flags().StringP("out", "o", "", "output file name (stdout if empty)")
	extractCmd.Flags().IntP("k", "k", 31, "k-mer length")
	extractCmd.Flags().IntP("l", "l", 8, "minimizer length")
	extractCmd.Flags().StringP("scheme", "m", "hash", "minimizer ranking: hash, lex or syncmer")
	extractCmd.Flags().Bool("canonical", true, "rank an l-mer and its reverse complement the same")
	extractCmd.Flags().StringP("format", "f", "tsv", "output format: tsv, json or binary")

	rootCmd.AddCommand(extractCmd)
}
