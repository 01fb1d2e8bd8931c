package cmd

import (
	"github.com/jjtimmons/superkmers/internal/superkmers"
	"github.com/spf13/cobra"
)

// syncmersCmd is for listing the syncmers of sequences
var syncmersCmd = &cobra.Command{
	Use:                        "syncmers [fasta] ... [fastaN]",
	Short:                      "Find the syncmers of sequences",
	Run:                        superkmers.SyncmersCmd,
	SuggestionsMinimumDistance: 2,
	Long: `Find parameterized syncmers: k-mers whose smallest s-mer starts at one of
the target offsets. Each syncmer is written with its sequence ID and offset.

--downsample keeps only the syncmers whose hash falls in that fraction of
the hash space, so the same syncmers are kept across sequences.`,
	Example: `  superkmers syncmers -k 5 -s 2 -t 2 --seq CCAGTGTTTACGG
  superkmers syncmers -k 8 -s 2 -t 0,6 --downsample 0.1 genome.fa`,
}

// set flags
func init() {
	syncmersCmd.Flags().StringP("seq", "q", "", "sequence to find syncmers in, instead of FASTA")
	syncmersCmd.Flags().StringP("out", "o", "", "output file name (stdout if empty)")
	syncmersCmd.Flags().IntP("k", "k", 5, "syncmer length")
	syncmersCmd.Flags().IntP("s", "s", 2, "s-mer length")
	syncmersCmd.Flags().IntSliceP("targets", "t", []int{2}, "offsets of the smallest s-mer")
	syncmersCmd.Flags().Float64("downsample", 0, "fraction of syncmers to keep (0 keeps all)")

	rootCmd.AddCommand(syncmersCmd)
}
