package score

import (
	"errors"
	"fmt"
	"math"

	"github.com/jjtimmons/superkmers/internal/dna"
	"github.com/jjtimmons/superkmers/internal/syncmer"
)

// Syncmer scores closed syncmers at 0 and every other l-mer at MaxUint64, which
// forces minimizers onto syncmer positions. It reads precomputed tables, so only
// the lengths in syncmer.Lengths() are supported.
type Syncmer struct {
	seq   []byte
	l     int
	pos   int
	table *syncmer.Table
	fw    *dna.Roller
}

// NewSyncmer returns a syncmer scorer for l-mers of length l.
func NewSyncmer(seq []byte, l int) (*Syncmer, error) {
	table, err := syncmer.TableFor(l)
	if errors.Is(err, syncmer.ErrNoTable) {
		return nil, fmt.Errorf("%w: syncmer scores need l in %v, got %d", ErrUnsupported, syncmer.Lengths(), l)
	} else if err != nil {
		return nil, err
	}
	fw, err := dna.NewRoller(l)
	if err != nil {
		return nil, err
	}

	s := &Syncmer{seq: seq, l: l, table: table, fw: fw}
	for i := 0; i < l-1 && i < len(seq); i++ {
		fw.Append(seq[i])
	}
	return s, nil
}

// Next implements Scorer.
func (s *Syncmer) Next() (uint64, bool) {
	end := s.pos + s.l
	if end > len(s.seq) {
		return 0, false
	}
	v := s.fw.Append(s.seq[end-1])
	s.pos++

	if s.table.Contains(v) {
		return 0, true
	}
	return math.MaxUint64, true
}
