package syncmer

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bits-and-blooms/bitset"

	"github.com/jjtimmons/superkmers/internal/dna"
)

// TableS is the s-mer length used by the precomputed closed-syncmer tables.
const TableS = 2

// ErrNoTable is returned for lengths without a precomputed table.
var ErrNoTable = errors.New("no syncmer table for this length")

// tables holds one lazily built table per supported length. Building the l=12
// table walks 4^12 l-mers so it only happens on first use.
var tables = map[int]*lazyTable{
	8:  {},
	10: {},
	12: {},
}

type lazyTable struct {
	once sync.Once
	bits *bitset.BitSet
}

// Table is a read-only membership set of closed syncmers (s=2, targets {0, l-2})
// keyed by the 2-bit packed l-mer.
type Table struct {
	l    int
	bits *bitset.BitSet
}

// Lengths lists the l-mer lengths that have a table.
func Lengths() []int {
	return []int{8, 10, 12}
}

// TableFor returns the table for l-mers of length l, building it the first time
// it's asked for.
func TableFor(l int) (*Table, error) {
	lt, ok := tables[l]
	if !ok {
		return nil, fmt.Errorf("%w: l=%d (have %v)", ErrNoTable, l, Lengths())
	}
	lt.once.Do(func() {
		lt.bits = build(l)
	})
	return &Table{l: l, bits: lt.bits}, nil
}

// L is the l-mer length of the table.
func (t *Table) L() int {
	return t.l
}

// Contains reports whether the packed l-mer is a syncmer.
func (t *Table) Contains(packed uint64) bool {
	return t.bits.Test(uint(packed))
}

// build classifies every l-mer by decoding it and running the byte-level finder.
func build(l int) *bitset.BitSet {
	n := uint64(1) << (2 * uint(l))
	bits := bitset.New(uint(n))
	ts := []int{0, l - TableS}
	lmer := make([]byte, l)
	for v := uint64(0); v < n; v++ {
		if isSyncmer(dna.UnpackInto(lmer, v), TableS, ts) {
			bits.Set(uint(v))
		}
	}
	return bits
}
