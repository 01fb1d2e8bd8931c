package superkmers

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jjtimmons/superkmers/config"
	"github.com/jjtimmons/superkmers/internal/seqio"
	"github.com/jjtimmons/superkmers/internal/superkmer"
)

// Comparison is the result of extracting one sequence's superkmers with the
// streaming iterator and with the quadratic reference.
type Comparison struct {
	ID string

	// number of superkmers from each extractor
	Streaming, Reference int

	// superkmers only one of the extractors found
	Missing, Extra []superkmer.Superkmer
}

// Equal reports whether both extractors found the same superkmers.
func (c Comparison) Equal() bool {
	return len(c.Missing) == 0 && len(c.Extra) == 0
}

// CompareCmd is for checking the streaming extractor against the reference one.
func CompareCmd(cmd *cobra.Command, args []string) {
	run(cmd, args, func(records []seqio.Record, c *config.Config, out io.Writer) error {
		comparisons, err := Compare(records, c)
		if err != nil {
			return err
		}
		if err := writeComparisons(out, comparisons, c.Verbose); err != nil {
			return err
		}

		for _, cmp := range comparisons {
			if !cmp.Equal() {
				return fmt.Errorf("streaming and reference superkmers differ for %s", cmp.ID)
			}
		}
		return nil
	})
}

// Compare extracts the superkmers of each record twice, once with
// superkmer.Iterator and once with superkmer.Reference, and diffs the two.
func Compare(records []seqio.Record, c *config.Config) ([]Comparison, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	factory, err := c.ScoreFactory()
	if err != nil {
		return nil, err
	}

	var comparisons []Comparison
	for _, r := range records {
		if len(r.Seq) < c.K {
			stderr.Printf("skipping %s: length %d is shorter than k=%d", r.ID, len(r.Seq), c.K)
			continue
		}

		scorer, err := factory(r.Seq, c.L)
		if err != nil {
			return nil, err
		}
		streaming, err := superkmer.Extract(r.Seq, c.K, c.L, scorer)
		if err != nil {
			return nil, err
		}

		if scorer, err = factory(r.Seq, c.L); err != nil {
			return nil, err
		}
		reference, err := superkmer.Reference(r.Seq, c.K, c.L, scorer)
		closeScorer(scorer)
		if err != nil {
			return nil, err
		}

		comparisons = append(comparisons, Comparison{
			ID:        r.ID,
			Streaming: len(streaming),
			Reference: len(reference),
			Missing:   subtract(reference, streaming),
			Extra:     subtract(streaming, reference),
		})
	}
	return comparisons, nil
}

// subtract returns the superkmers of a that aren't in b, counting duplicates.
func subtract(a, b []superkmer.Superkmer) []superkmer.Superkmer {
	counts := make(map[superkmer.Superkmer]int, len(b))
	for _, sk := range b {
		counts[sk]++
	}

	var diff []superkmer.Superkmer
	for _, sk := range a {
		if counts[sk] > 0 {
			counts[sk]--
			continue
		}
		diff = append(diff, sk)
	}
	return diff
}

func closeScorer(s interface{}) {
	if c, ok := s.(io.Closer); ok {
		c.Close()
	}
}

func writeComparisons(out io.Writer, comparisons []Comparison, verbose bool) error {
	tw := tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)
	fmt.Fprintln(tw, "id\tstreaming\treference\tmissing\textra\t")
	for _, cmp := range comparisons {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%d\t\n", cmp.ID, cmp.Streaming, cmp.Reference, len(cmp.Missing), len(cmp.Extra))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !verbose {
		return nil
	}
	for _, cmp := range comparisons {
		for _, sk := range cmp.Missing {
			stderr.Printf("%s: missing %s", cmp.ID, sk)
		}
		for _, sk := range cmp.Extra {
			stderr.Printf("%s: extra %s", cmp.ID, sk)
		}
	}
	return nil
}
