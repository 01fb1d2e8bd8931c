// Package superkmer extracts superkmers, maximal runs of consecutive k-mers that
// share a minimizer, from a DNA sequence in one streaming pass.
//
// An Iterator primes a sliding-window minimum over the scores of the first
// k-l+1 l-mers, then advances one l-mer at a time. A superkmer ends when the
// window's minimizer moves, when either neighbouring window holds its minimal
// score more than once (a tie), or when the sequence runs out. Every finished
// span is put in a canonical orientation so that a locus yields the same record
// from either strand.
package superkmer

import (
	"errors"
	"fmt"
	"sort"
)

// MaxSize is the longest superkmer a record can hold. A superkmer spans at most
// 2k-l bases, so k and l are checked against it up front.
const MaxSize = 255

// ErrInvalidParams is returned for k and l that can't be used on a sequence.
var ErrInvalidParams = errors.New("invalid superkmer parameters")

// Scorer yields the priority of each l-mer of a sequence, starting at offset 0,
// in increasing offset order. ok is false once the sequence is exhausted.
type Scorer interface {
	Next() (score uint64, ok bool)
}

// Superkmer is the compact record of a superkmer. It refers to the sequence it
// came from by offset only.
type Superkmer struct {
	// Start is the offset of the superkmer's first base in the sequence
	Start int

	// Size is the number of bases in the superkmer, at least k
	Size uint8

	// MPos is the offset of the minimizer from the start of the superkmer,
	// in the orientation given by RC
	MPos uint8

	// RC is whether the canonical form is the reverse complement of the sequence
	RC bool

	// Mint is the 2-bit packed canonical minimizer when l <= 16, zero otherwise
	Mint uint32
}

// End is the offset just past the superkmer's last base.
func (s Superkmer) End() int {
	return s.Start + int(s.Size)
}

// String is for debugging.
func (s Superkmer) String() string {
	return fmt.Sprintf("{start:%d size:%d mpos:%d rc:%t mint:%d}", s.Start, s.Size, s.MPos, s.RC, s.Mint)
}

// Verbose is a superkmer materialized into its canonical sequence and minimizer.
// It's only used for testing and inspection.
type Verbose struct {
	Sequence  string `json:"sequence"`
	Minimizer string `json:"minimizer"`
	MPos      int    `json:"mpos"`
}

// Span is a finished superkmer before it is put in canonical orientation.
type Span struct {
	// Start is the offset of the first base
	Start int

	// End is the offset after the last base
	End int

	// MPos is the offset of the minimizer from Start
	MPos int

	// Tied is set when the span is a single window whose minimal score occurs
	// at more than one offset
	Tied bool
}

// Size is the number of bases in the span.
func (s Span) Size() int {
	return s.End - s.Start
}

// SortByStart orders superkmers by their start offset.
func SortByStart(sks []Superkmer) {
	sort.SliceStable(sks, func(i, j int) bool {
		return sks[i].Start < sks[j].Start
	})
}

// SortVerbose orders materialized superkmers by minimizer offset, then by
// sequence and minimizer so the order is total.
func SortVerbose(vs []Verbose) {
	sort.Slice(vs, func(i, j int) bool {
		if vs[i].MPos != vs[j].MPos {
			return vs[i].MPos < vs[j].MPos
		}
		if vs[i].Sequence != vs[j].Sequence {
			return vs[i].Sequence < vs[j].Sequence
		}
		return vs[i].Minimizer < vs[j].Minimizer
	})
}

// validate checks k and l against each other and the sequence length.
func validate(seqLen, k, l int) error {
	switch {
	case l < 1:
		return fmt.Errorf("%w: minimizer length l=%d must be at least 1", ErrInvalidParams, l)
	case l > k:
		return fmt.Errorf("%w: minimizer length l=%d is greater than k=%d", ErrInvalidParams, l, k)
	case k > seqLen:
		return fmt.Errorf("%w: k=%d is greater than the sequence length %d", ErrInvalidParams, k, seqLen)
	case 2*k-l > MaxSize:
		return fmt.Errorf("%w: superkmers of k=%d, l=%d can reach %d bases (max %d)", ErrInvalidParams, k, l, 2*k-l, MaxSize)
	}
	return nil
}
