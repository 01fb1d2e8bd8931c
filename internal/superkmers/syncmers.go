package superkmers

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jjtimmons/superkmers/config"
	"github.com/jjtimmons/superkmers/internal/seqio"
	"github.com/jjtimmons/superkmers/internal/syncmer"
)

// SyncmersCmd is for listing the syncmers of every input sequence.
func SyncmersCmd(cmd *cobra.Command, args []string) {
	run(cmd, args, Syncmers)
}

// Syncmers writes one row per syncmer of each record: its ID, offset and sequence.
// With downsampling on, only the kept syncmers are written.
func Syncmers(records []seqio.Record, c *config.Config, out io.Writer) error {
	sc := c.Syncmer

	tw := tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)
	fmt.Fprintln(tw, "id\tstart\tsyncmer\t")
	for _, r := range records {
		if len(r.Seq) < sc.K {
			stderr.Printf("skipping %s: length %d is shorter than k=%d", r.ID, len(r.Seq), sc.K)
			continue
		}

		positions, err := syncmer.Positions(sc.K, sc.S, sc.Targets, r.Seq)
		if err != nil {
			return fmt.Errorf("failed to find syncmers of %s: %w", r.ID, err)
		}
		kept, err := syncmer.Sample(sc.K, sc.S, sc.Targets, sc.Downsample, r.Seq)
		if err != nil {
			return fmt.Errorf("failed to find syncmers of %s: %w", r.ID, err)
		}
		if c.Verbose {
			stderr.Printf("%s: kept %d of %d syncmers", r.ID, len(kept), len(positions))
		}

		for _, p := range kept {
			fmt.Fprintf(tw, "%s\t%d\t%s\t\n", r.ID, p, r.Seq[p:p+sc.K])
		}
	}
	return tw.Flush()
}
