package score

import (
	"fmt"

	"github.com/jjtimmons/superkmers/internal/dna"
)

// Lex scores an l-mer by its 2-bit packed value, so smaller scores are
// alphabetically smaller l-mers. N is packed as A.
type Lex struct {
	seq       []byte
	l         int
	pos       int
	canonical bool
	fw        *dna.Roller
	rc        uint64
	rcShift   uint
}

// NewLex returns a lexicographic scorer. With canonical set, an l-mer scores
// the smaller of its own value and its reverse complement's.
func NewLex(seq []byte, l int, canonical bool) (*Lex, error) {
	if l < 1 || l > dna.MaxPacked {
		return nil, fmt.Errorf("%w: lexicographic scores need 1 <= l <= %d, got %d", ErrUnsupported, dna.MaxPacked, l)
	}
	fw, err := dna.NewRoller(l)
	if err != nil {
		return nil, err
	}

	lex := &Lex{
		seq:       seq,
		l:         l,
		canonical: canonical,
		fw:        fw,
		rcShift:   2 * uint(l-1),
	}
	for i := 0; i < l-1 && i < len(seq); i++ {
		lex.roll(seq[i])
	}
	return lex, nil
}

// roll appends a base to the forward window and prepends its complement to
// the reverse complement window.
func (s *Lex) roll(b byte) {
	s.fw.Append(b)
	s.rc = s.rc>>2 | (3-dna.Bits(b))<<s.rcShift
}

// Next implements Scorer.
func (s *Lex) Next() (uint64, bool) {
	end := s.pos + s.l
	if end > len(s.seq) {
		return 0, false
	}
	s.roll(s.seq[end-1])
	s.pos++

	v := s.fw.Value()
	if s.canonical && s.rc < v {
		return s.rc, true
	}
	return v, true
}
