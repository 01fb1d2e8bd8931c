package superkmer

import (
	"bytes"

	"github.com/jjtimmons/superkmers/internal/dna"
)

// maxMintLen is the longest minimizer whose packed value fits Superkmer.Mint.
const maxMintLen = 16

// normalizer puts spans in canonical orientation. It keeps a scratch buffer for
// reverse complements, so each Iterator has its own.
type normalizer struct {
	l  int
	rc []byte
}

func newNormalizer(l int) *normalizer {
	return &normalizer{l: l}
}

// Normalize returns the canonical record of a span of seq with minimizers of
// length l. It's a pure function of its arguments.
func Normalize(seq []byte, span Span, l int) Superkmer {
	return newNormalizer(l).normalize(seq, span)
}

// normalize picks the strand and minimizer offset of a span.
//
// Without a tie, the strand that puts the minimizer closer to the start wins,
// and when it is equally far from both ends the smaller of the span and its
// reverse complement wins. With a tie, the leftmost occurrence of the
// minimizer, or of its reverse complement, on either strand wins. Last, the
// strand is flipped if that makes the minimizer itself the smaller of its two
// orientations.
func (n *normalizer) normalize(seq []byte, span Span) Superkmer {
	l := n.l
	fw := seq[span.Start:span.End]
	n.rc = dna.RevCompInto(n.rc, fw)
	rc := n.rc
	size := len(fw)
	mpos := span.MPos
	flip := false

	if !span.Tied {
		mirror := size - (mpos + l)
		if mirror < mpos {
			flip = true
			mpos = mirror
		} else if mirror == mpos {
			flip = bytes.Compare(rc, fw) < 0
		}
	} else {
		minimizer := fw[mpos : mpos+l]
		for i := 0; i < mpos; i++ {
			onFw := dna.EqualEitherStrand(fw[i:i+l], minimizer)
			onRC := dna.EqualEitherStrand(rc[i:i+l], minimizer)
			if !onFw && !onRC {
				continue
			}
			if onFw && onRC {
				flip = bytes.Compare(rc, fw) < 0
			} else {
				flip = onRC
			}
			mpos = i
			break
		}
	}

	oriented := fw
	if flip {
		oriented = rc
	}
	if dna.IsRevCompMin(oriented[mpos : mpos+l]) {
		flip = !flip
		mpos = size - (mpos + l)
		if flip {
			oriented = rc
		} else {
			oriented = fw
		}
	}

	var mint uint32
	if l <= maxMintLen {
		v, _ := dna.Pack(oriented[mpos : mpos+l])
		mint = uint32(v)
	}

	return Superkmer{
		Start: span.Start,
		Size:  uint8(size),
		MPos:  uint8(mpos),
		RC:    flip,
		Mint:  mint,
	}
}
