// Package dna has the nucleotide helpers shared by the scorers and the superkmer
// engine: complements, reverse complements and 2-bit packing.
package dna

import "bytes"

// complement maps a base to its Watson-Crick pair. Case is preserved and
// anything outside of ACGTU becomes N.
var complement = [256]byte{}

func init() {
	for i := range complement {
		complement[i] = 'N'
	}
	for _, pair := range []string{"AT", "TA", "CG", "GC", "UA", "at", "ta", "cg", "gc", "ua"} {
		complement[pair[0]] = pair[1]
	}
	complement['n'] = 'n'
}

// Complement returns the complement of a single base.
func Complement(b byte) byte {
	return complement[b]
}

// RevComp returns the reverse complement of seq in a new slice.
func RevComp(seq []byte) []byte {
	return RevCompInto(make([]byte, len(seq)), seq)
}

// RevCompInto writes the reverse complement of seq into dst, growing it
// if needed, and returns it. dst and seq must not overlap.
func RevCompInto(dst, seq []byte) []byte {
	n := len(seq)
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]
	for i := 0; i < n; i++ {
		dst[i] = complement[seq[n-1-i]]
	}
	return dst
}

// RevCompString is RevComp for strings.
func RevCompString(seq string) string {
	return string(RevComp([]byte(seq)))
}

// IsRevCompMin reports whether the reverse complement of seq is lexicographically
// smaller than seq. It doesn't allocate.
func IsRevCompMin(seq []byte) bool {
	n := len(seq)
	for i := 0; i < n; i++ {
		c := complement[seq[n-1-i]]
		switch {
		case seq[i] < c:
			return false
		case seq[i] > c:
			return true
		}
	}
	return false
}

// Canonical returns the lexicographically smaller of seq and its reverse complement.
func Canonical(seq []byte) []byte {
	if IsRevCompMin(seq) {
		return RevComp(seq)
	}
	return seq
}

// EqualEitherStrand reports whether a equals b or the reverse complement of b.
func EqualEitherStrand(a, b []byte) bool {
	if bytes.Equal(a, b) {
		return true
	}
	n := len(b)
	if len(a) != n {
		return false
	}
	for i := 0; i < n; i++ {
		if a[i] != complement[b[n-1-i]] {
			return false
		}
	}
	return true
}
