package superkmers

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jjtimmons/superkmers/config"
	"github.com/jjtimmons/superkmers/internal/report"
	"github.com/jjtimmons/superkmers/internal/seqio"
	"github.com/jjtimmons/superkmers/internal/superkmer"
)

// ExtractCmd is for extracting the superkmers of every input sequence.
func ExtractCmd(cmd *cobra.Command, args []string) {
	run(cmd, args, Extract)
}

// Extract writes the superkmers of each record to out in the configured format.
// Records shorter than k are skipped with a warning.
func Extract(records []seqio.Record, c *config.Config, out io.Writer) error {
	if err := c.Validate(); err != nil {
		return err
	}
	factory, err := c.ScoreFactory()
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(c.Format)
	if err != nil {
		return err
	}

	w := report.NewWriter(out, format, c.K, c.L, c.Verbose)
	for _, r := range records {
		if len(r.Seq) < c.K {
			stderr.Printf("skipping %s: length %d is shorter than k=%d", r.ID, len(r.Seq), c.K)
			continue
		}

		scorer, err := factory(r.Seq, c.L)
		if err != nil {
			return fmt.Errorf("failed to score %s: %w", r.ID, err)
		}
		sks, err := superkmer.Extract(r.Seq, c.K, c.L, scorer)
		if err != nil {
			return fmt.Errorf("failed to extract superkmers of %s: %w", r.ID, err)
		}
		if c.Verbose {
			stderr.Printf("%s: %d superkmers from %d bases", r.ID, len(sks), len(r.Seq))
		}

		if err := w.Write(r.ID, r.Seq, sks); err != nil {
			return err
		}
	}
	return w.Flush()
}
