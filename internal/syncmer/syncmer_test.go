package syncmer

import (
	"errors"
	"math"
	"math/rand"
	"reflect"
	"testing"

	"github.com/cespare/xxhash/v2"

	"github.com/jjtimmons/superkmers/internal/dna"
)

// the fig1b example from Dutta et al. 2022
func TestPositions_fig1b(t *testing.T) {
	seq := []byte("CCAGTGTTTACGG")

	tests := []struct {
		name string
		ts   []int
		want []int
	}{
		{"single target", []int{2}, []int{0, 7}},
		{"two targets", []int{2, 3}, []int{0, 6, 7}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Positions(5, 2, tt.ts, seq)
			if err != nil {
				t.Fatal(err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Positions() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFind_fig1b(t *testing.T) {
	got, err := Find(5, 2, []int{2}, 0, []byte("CCAGTGTTTACGG"))
	if err != nil {
		t.Fatal(err)
	}

	var gotStrings []string
	for _, s := range got {
		gotStrings = append(gotStrings, string(s))
	}
	want := []string{"CCAGT", "TTACG"}
	if !reflect.DeepEqual(gotStrings, want) {
		t.Errorf("Find() = %v, want %v", gotStrings, want)
	}
}

func TestFind_downsample(t *testing.T) {
	seq := randomSeq(rand.New(rand.NewSource(3)), 2000)

	all, err := Find(8, 2, []int{0, 6}, 1, seq)
	if err != nil {
		t.Fatal(err)
	}
	some, err := Find(8, 2, []int{0, 6}, 0.25, seq)
	if err != nil {
		t.Fatal(err)
	}
	if len(some) >= len(all) || len(some) == 0 {
		t.Errorf("downsampling kept %d of %d syncmers", len(some), len(all))
	}

	again, _ := Find(8, 2, []int{0, 6}, 0.25, seq)
	if !reflect.DeepEqual(some, again) {
		t.Error("downsampling is not deterministic")
	}
}

func TestSample(t *testing.T) {
	seq := randomSeq(rand.New(rand.NewSource(5)), 1000)

	positions, err := Positions(8, 2, []int{0, 6}, seq)
	if err != nil {
		t.Fatal(err)
	}
	kept, err := Sample(8, 2, []int{0, 6}, 0.5, seq)
	if err != nil {
		t.Fatal(err)
	}

	// kept is an ordered subset of positions
	i := 0
	for _, p := range kept {
		for i < len(positions) && positions[i] != p {
			i++
		}
		if i == len(positions) {
			t.Fatalf("Sample() kept %d, which is not a syncmer offset", p)
		}
	}

	found, _ := Find(8, 2, []int{0, 6}, 0.5, seq)
	if len(found) != len(kept) {
		t.Errorf("Find() = %d syncmers, Sample() = %d", len(found), len(kept))
	}
}

func TestSample_seeded(t *testing.T) {
	seq := randomSeq(rand.New(rand.NewSource(11)), 2000)
	const k, fraction = 8, 0.3

	positions, err := Positions(k, 2, []int{0, 6}, seq)
	if err != nil {
		t.Fatal(err)
	}
	threshold := uint64(float64(math.MaxUint64) * fraction)

	var want, unseeded []int
	for _, p := range positions {
		d := xxhash.NewWithSeed(42)
		d.Write(seq[p : p+k])
		if d.Sum64() < threshold {
			want = append(want, p)
		}
		if xxhash.Sum64(seq[p:p+k]) < threshold {
			unseeded = append(unseeded, p)
		}
	}

	got, err := Sample(k, 2, []int{0, 6}, fraction, seq)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Sample() = %v, want %v", got, want)
	}
	if reflect.DeepEqual(got, unseeded) {
		t.Error("Sample() kept the same syncmers as an unseeded hash")
	}
}

func TestPositions_errors(t *testing.T) {
	tests := []struct {
		name string
		k, s int
		ts   []int
		seq  string
	}{
		{"s too large", 5, 5, []int{0}, "ACGTACGT"},
		{"short sequence", 5, 2, []int{0}, "ACG"},
		{"no targets", 5, 2, nil, "ACGTACGT"},
		{"too many targets", 5, 2, []int{0, 1, 2, 3, 3}, "ACGTACGT"},
		{"target out of range", 5, 2, []int{4}, "ACGTACGT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Positions(tt.k, tt.s, tt.ts, []byte(tt.seq)); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, err := Find(5, 2, []int{2}, 1.5, []byte("CCAGTGTTTACGG")); err == nil {
		t.Error("expected an error for a downsample fraction over 1")
	}
}

func TestTableFor(t *testing.T) {
	table, err := TableFor(8)
	if err != nil {
		t.Fatal(err)
	}

	seq := randomSeq(rand.New(rand.NewSource(11)), 500)
	positions, err := Positions(8, TableS, []int{0, 8 - TableS}, seq)
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]bool{}
	for _, p := range positions {
		want[p] = true
	}

	for i := 0; i+8 <= len(seq); i++ {
		v, _ := dna.Pack(seq[i : i+8])
		if got := table.Contains(v); got != want[i] {
			t.Errorf("table.Contains(%s) = %v, want %v", seq[i:i+8], got, want[i])
		}
	}

	same, _ := TableFor(8)
	if same.bits != table.bits {
		t.Error("expected the l=8 table to be built once")
	}
}

func TestTableFor_unsupported(t *testing.T) {
	for _, l := range []int{0, 7, 9, 31} {
		if _, err := TableFor(l); !errors.Is(err, ErrNoTable) {
			t.Errorf("TableFor(%d) err = %v, want ErrNoTable", l, err)
		}
	}
}

func randomSeq(r *rand.Rand, n int) []byte {
	seq := make([]byte, n)
	for i := range seq {
		seq[i] = "ACGT"[r.Intn(4)]
	}
	return seq
}
