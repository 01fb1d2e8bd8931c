package superkmer

import (
	"math/rand"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		seq  string
		span Span
		want Superkmer
	}{
		{
			"minimizer closer to the start",
			"AAGAGCTCT",
			Span{End: 9, MPos: 0},
			Superkmer{Size: 9, MPos: 0, RC: false, Mint: 0x89}, // AAGAGC
		},
		{
			"minimizer closer to the end",
			"CGTTAC",
			Span{End: 6, MPos: 3},
			Superkmer{Size: 6, MPos: 1, RC: true, Mint: 0xC}, // TA
		},
		{
			"equidistant, forward is smaller",
			"GGAACA",
			Span{End: 6, MPos: 2},
			Superkmer{Size: 6, MPos: 2, RC: false, Mint: 0},
		},
		{
			"equidistant, reverse complement is smaller but the minimizer flips it back",
			"TTCAGT",
			Span{End: 6, MPos: 2},
			Superkmer{Size: 6, MPos: 2, RC: false, Mint: 0x4}, // CA
		},
		{
			"tied, found on both strands at 0",
			"AAGCTAA",
			Span{End: 7, MPos: 5, Tied: true},
			Superkmer{Size: 7, MPos: 0, RC: false, Mint: 0},
		},
		{
			"tied, found on the reverse strand first",
			"GCAATAA",
			Span{End: 7, MPos: 5, Tied: true},
			Superkmer{Size: 7, MPos: 5, RC: false, Mint: 0},
		},
		{
			"offset into the sequence",
			"TTTGGAACA",
			Span{Start: 3, End: 9, MPos: 2},
			Superkmer{Start: 3, Size: 6, MPos: 2, RC: false, Mint: 0},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := 2
			if tt.seq == "AAGAGCTCT" {
				l = 6
			}
			if got := Normalize([]byte(tt.seq), tt.span, l); got != tt.want {
				t.Errorf("Normalize() = %v, want %v", got, tt.want)
			}

			got := orient(tt.seq[tt.span.Start:tt.span.End], tt.span.MPos, l, tt.span.Tied)
			got.Start = tt.span.Start
			if got != tt.want {
				t.Errorf("orient() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Normalize and the string-based orient of Reference agree on any span
func TestNormalize_matchesOrient(t *testing.T) {
	r := rand.New(rand.NewSource(21))
	for trial := 0; trial < 2000; trial++ {
		seq := randomSeq(r, 40)
		l := 1 + r.Intn(4)
		start := r.Intn(len(seq) - l)
		end := start + l + r.Intn(len(seq)-start-l+1)
		span := Span{
			Start: start,
			End:   end,
			MPos:  r.Intn(end - start - l + 1),
			Tied:  r.Intn(2) == 0,
		}

		want := orient(string(seq[start:end]), span.MPos, l, span.Tied)
		want.Start = start
		if got := Normalize(seq, span, l); got != want {
			t.Fatalf("l=%d span %v of %s: Normalize() = %v, orient() = %v", l, span, seq, got, want)
		}
	}
}

func TestNormalize_longMinimizer(t *testing.T) {
	seq := []byte("ACGTACGTACGTACGTACGTA")
	sk := Normalize(seq, Span{End: len(seq), MPos: 0}, 17)
	if sk.Mint != 0 {
		t.Errorf("Mint = %d, want 0 for minimizers longer than 16", sk.Mint)
	}
}
