package dna

import "fmt"

// MaxPacked is the longest sequence that fits a uint64 at two bits per base.
const MaxPacked = 32

// Bits returns the 2-bit code of a base: A=0, C=1, G=2, T=3. Anything else,
// N included, is packed as A.
func Bits(b byte) uint64 {
	switch b {
	case 'C', 'c':
		return 1
	case 'G', 'g':
		return 2
	case 'T', 't', 'U', 'u':
		return 3
	}
	return 0
}

// Pack returns the 2-bit packed value of seq with the first base in the highest
// bits, so packed values sort the same way the sequences do.
func Pack(seq []byte) (uint64, error) {
	if len(seq) > MaxPacked {
		return 0, fmt.Errorf("cannot pack %d bases into 64 bits (max %d)", len(seq), MaxPacked)
	}
	var v uint64
	for _, b := range seq {
		v = v<<2 | Bits(b)
	}
	return v, nil
}

// Unpack decodes the n-base sequence packed into v.
func Unpack(v uint64, n int) []byte {
	return UnpackInto(make([]byte, n), v)
}

// UnpackInto decodes len(dst) bases from v into dst.
func UnpackInto(dst []byte, v uint64) []byte {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = "ACGT"[v&3]
		v >>= 2
	}
	return dst
}

// Roller keeps the packed value of the last n bases appended to it.
type Roller struct {
	n    int
	mask uint64
	val  uint64
}

// NewRoller returns a Roller for windows of n bases.
func NewRoller(n int) (*Roller, error) {
	if n < 1 || n > MaxPacked {
		return nil, fmt.Errorf("window of %d bases is not in [1, %d]", n, MaxPacked)
	}
	mask := ^uint64(0)
	if n < MaxPacked {
		mask = uint64(1)<<(2*uint(n)) - 1
	}
	return &Roller{n: n, mask: mask}, nil
}

// Append shifts out the leftmost base and appends b on the right.
func (r *Roller) Append(b byte) uint64 {
	r.val = (r.val<<2 | Bits(b)) & r.mask
	return r.val
}

// Value is the packed value of the current window.
func (r *Roller) Value() uint64 {
	return r.val
}

// RevCompPacked returns the packed reverse complement of the n-base value v.
func RevCompPacked(v uint64, n int) uint64 {
	var rc uint64
	for i := 0; i < n; i++ {
		rc = rc<<2 | (3 - v&3)
		v >>= 2
	}
	return rc
}
