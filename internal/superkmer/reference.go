package superkmer

import (
	"strings"

	"github.com/jjtimmons/superkmers/internal/dna"
)

// Reference extracts superkmers the slow way: it buffers every score of the
// sequence, finds the minimizer of each k-mer by scanning its l-mers, then groups
// consecutive k-mers and orients each one on strings. It takes O(n(k-l)) time
// and O(n) memory and exists to cross-check Iterator, so it shares none of
// Iterator's windowing or orientation code.
func Reference(seq []byte, k, l int, scorer Scorer) ([]Superkmer, error) {
	if err := validate(len(seq), k, l); err != nil {
		return nil, err
	}

	var scores []uint64
	for s, ok := scorer.Next(); ok; s, ok = scorer.Next() {
		scores = append(scores, s)
	}

	w := k - l + 1
	windows := len(seq) - k + 1
	if len(scores)-w+1 < windows {
		windows = len(scores) - w + 1
	}
	if windows < 1 {
		return nil, nil
	}

	// the minimizer of each k-mer and whether it appears more than once
	minPos := make([]int, windows)
	tied := make([]bool, windows)
	for i := 0; i < windows; i++ {
		best, count := i, 1
		for j := i + 1; j < i+w; j++ {
			switch {
			case scores[j] < scores[best]:
				best, count = j, 1
			case scores[j] == scores[best]:
				count++
			}
		}
		minPos[i], tied[i] = best, count > 1
	}

	var sks []Superkmer
	emit := func(first, last int) {
		sk := orient(string(seq[first:last+k]), minPos[first]-first, l, tied[first])
		sk.Start = first
		sks = append(sks, sk)
	}

	first := 0
	for i := 1; i < windows; i++ {
		if tied[i-1] || tied[i] || minPos[i] != minPos[i-1] {
			emit(first, i-1)
			first = i
		}
	}
	emit(first, windows-1)

	return sks, nil
}

// orient picks the canonical strand and minimizer offset of the superkmer fw
// whose minimizer starts at mpos. Start is left for the caller.
func orient(fw string, mpos, l int, tied bool) Superkmer {
	rc := string(dna.RevComp([]byte(fw)))
	size := len(fw)
	minimizer := fw[mpos : mpos+l]
	minimizerRC := string(dna.RevComp([]byte(minimizer)))
	isMinimizer := func(lmer string) bool {
		return lmer == minimizer || lmer == minimizerRC
	}

	onRC := false
	if tied {
		// leftmost occurrence of the minimizer on either strand
		for i := 0; i < mpos; i++ {
			f, r := isMinimizer(fw[i:i+l]), isMinimizer(rc[i:i+l])
			if f && r {
				onRC, mpos = rc < fw, i
				break
			} else if f || r {
				onRC, mpos = r, i
				break
			}
		}
	} else {
		// the minimizer closer to the start, or the smaller strand
		switch mirror := size - mpos - l; {
		case mirror < mpos:
			onRC, mpos = true, mirror
		case mirror == mpos:
			onRC = rc < fw
		}
	}

	oriented := fw
	if onRC {
		oriented = rc
	}
	m := oriented[mpos : mpos+l]
	if string(dna.RevComp([]byte(m))) < m {
		onRC, mpos = !onRC, size-mpos-l
		if onRC {
			oriented = rc
		} else {
			oriented = fw
		}
	}

	var mint uint32
	if l <= maxMintLen {
		m := strings.ToUpper(oriented[mpos : mpos+l])
		for i := 0; i < l; i++ {
			mint <<= 2
			if b := strings.IndexByte("ACGT", m[i]); b > 0 {
				mint |= uint32(b)
			}
		}
	}

	return Superkmer{
		Size: uint8(size),
		MPos: uint8(mpos),
		RC:   onRC,
		Mint: mint,
	}
}
