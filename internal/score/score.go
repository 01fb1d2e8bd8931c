// Package score has the priority oracles that rank l-mers for minimizer
// selection. Each one is a forward-only generator: Next yields the score of the
// l-mer at the next offset, starting at 0, until the sequence runs out.
package score

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnsupported is returned when a scorer can't serve the requested l-mer length.
	ErrUnsupported = errors.New("unsupported parameter")

	// ErrUnknownScheme is returned by New for a scheme name it doesn't know.
	ErrUnknownScheme = errors.New("unknown scoring scheme")
)

// Scorer yields one score per l-mer start offset, in increasing offset order.
// ok is false once the sequence is exhausted.
type Scorer interface {
	Next() (score uint64, ok bool)
}

// Scheme names a scoring scheme.
type Scheme string

const (
	// HashScheme ranks l-mers by their ntHash value.
	HashScheme Scheme = "hash"

	// LexScheme ranks l-mers alphabetically by their 2-bit packed value.
	LexScheme Scheme = "lex"

	// SyncmerScheme ranks closed syncmers at 0 and everything else at MaxUint64.
	SyncmerScheme Scheme = "syncmer"
)

// Schemes lists the known schemes.
func Schemes() []Scheme {
	return []Scheme{HashScheme, LexScheme, SyncmerScheme}
}

// ParseScheme returns the scheme with the name passed, case-insensitively.
func ParseScheme(name string) (Scheme, error) {
	for _, s := range Schemes() {
		if strings.EqualFold(name, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("%w: %q (use one of %v)", ErrUnknownScheme, name, Schemes())
}

// Options are the knobs shared by the scorers. Canonical makes the hash and lex
// scorers give an l-mer and its reverse complement the same score; the syncmer
// scorer ignores it.
type Options struct {
	Canonical bool
}

// New returns a fresh scorer over seq for l-mers of length l.
func New(scheme Scheme, seq []byte, l int, opts Options) (Scorer, error) {
	switch scheme {
	case HashScheme:
		return NewHash(seq, l, opts.Canonical)
	case LexScheme:
		return NewLex(seq, l, opts.Canonical)
	case SyncmerScheme:
		return NewSyncmer(seq, l)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
}

// Factory makes a new scorer for a sequence. The superkmer reference extractor
// and the cross-checks need a second, independent scorer over the same sequence.
type Factory func(seq []byte, l int) (Scorer, error)

// FactoryFor binds a scheme and its options into a Factory.
func FactoryFor(scheme Scheme, opts Options) Factory {
	return func(seq []byte, l int) (Scorer, error) {
		return New(scheme, seq, l, opts)
	}
}

// Collect drains a scorer into a slice.
func Collect(s Scorer) []uint64 {
	var scores []uint64
	for {
		v, ok := s.Next()
		if !ok {
			return scores
		}
		scores = append(scores, v)
	}
}
