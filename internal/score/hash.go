package score

import (
	"fmt"

	"github.com/will-rowe/ntHash"
)

// Hash scores l-mers with the ntHash rolling hash. The hashes come off a
// channel fed by the ntHash iterator, so a Hash that is abandoned before it
// is exhausted should be Closed.
type Hash struct {
	hashes <-chan uint64
	done   bool
}

// NewHash returns an ntHash scorer. With canonical set, each l-mer is scored
// by the smaller of its forward and reverse complement hashes.
func NewHash(seq []byte, l int, canonical bool) (*Hash, error) {
	if l < 1 {
		return nil, fmt.Errorf("%w: l-mer length %d", ErrUnsupported, l)
	}
	hasher, err := ntHash.New(&seq, uint(l))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupported, err)
	}
	return &Hash{hashes: hasher.Hash(canonical)}, nil
}

// Next implements Scorer.
func (s *Hash) Next() (uint64, bool) {
	if s.done {
		return 0, false
	}
	h, ok := <-s.hashes
	if !ok {
		s.done = true
	}
	return h, ok
}

// Close drains the remaining hashes so the hashing goroutine can exit.
func (s *Hash) Close() error {
	if s.done {
		return nil
	}
	for range s.hashes {
	}
	s.done = true
	return nil
}
