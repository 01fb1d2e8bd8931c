package superkmer

import (
	"fmt"

	"github.com/jjtimmons/superkmers/internal/dna"
)

// Materialize turns a compact superkmer of seq back into its canonical sequence
// and minimizer.
func Materialize(sk Superkmer, seq []byte, l int) (Verbose, error) {
	mpos := int(sk.MPos)
	if sk.Start < 0 || sk.End() > len(seq) {
		return Verbose{}, fmt.Errorf("superkmer %v is outside of a sequence of length %d", sk, len(seq))
	}
	if mpos+l > int(sk.Size) {
		return Verbose{}, fmt.Errorf("minimizer of length %d at %d runs past the end of superkmer %v", l, mpos, sk)
	}

	s := seq[sk.Start:sk.End()]
	if sk.RC {
		s = dna.RevComp(s)
	}
	return Verbose{
		Sequence:  string(s),
		Minimizer: string(s[mpos : mpos+l]),
		MPos:      mpos,
	}, nil
}

// MaterializeAll materializes every superkmer in sks.
func MaterializeAll(sks []Superkmer, seq []byte, l int) ([]Verbose, error) {
	vs := make([]Verbose, 0, len(sks))
	for _, sk := range sks {
		v, err := Materialize(sk, seq, l)
		if err != nil {
			return nil, err
		}
		vs = append(vs, v)
	}
	return vs, nil
}
