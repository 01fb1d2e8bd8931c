// Package syncmer finds parameterized syncmers (Dutta et al. 2022): k-mers whose
// smallest s-mer sits at one of a few target offsets inside the k-mer.
package syncmer

import (
	"bytes"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"
)

const (
	// maxTargets is the largest number of target offsets a syncmer scheme may use.
	maxTargets = 4

	// downsampleSeed seeds the hash syncmers are downsampled by
	downsampleSeed = 42
)

// check validates the parameters shared by Positions and Find.
func check(k, s int, ts []int, seq []byte) error {
	if s < 1 || s >= k {
		return fmt.Errorf("s-mer length %d must be in [1, k=%d)", s, k)
	}
	if len(seq) < k {
		return fmt.Errorf("sequence of length %d is shorter than k=%d", len(seq), k)
	}
	if len(ts) == 0 || len(ts) > maxTargets {
		return fmt.Errorf("need between 1 and %d target offsets, got %d", maxTargets, len(ts))
	}
	for _, t := range ts {
		if t < 0 || t > k-s {
			return fmt.Errorf("target offset %d is outside of [0, %d]", t, k-s)
		}
	}
	return nil
}

// Positions returns the start offsets of every k-mer in seq whose leftmost smallest
// s-mer begins at one of the target offsets ts.
func Positions(k, s int, ts []int, seq []byte) ([]int, error) {
	if err := check(k, s, ts, seq); err != nil {
		return nil, err
	}

	var positions []int
	for i := 0; i+k <= len(seq); i++ {
		if isSyncmer(seq[i:i+k], s, ts) {
			positions = append(positions, i)
		}
	}
	return positions, nil
}

// Sample returns the offsets of the syncmers of seq that survive downsampling.
// With downsample in (0, 1), only syncmers whose xxhash falls under that
// fraction of the hash space are kept. A downsample of 0 or 1 keeps everything.
func Sample(k, s int, ts []int, downsample float64, seq []byte) ([]int, error) {
	if downsample < 0 || downsample > 1 {
		return nil, fmt.Errorf("downsample fraction %v is not in [0, 1]", downsample)
	}

	positions, err := Positions(k, s, ts, seq)
	if err != nil {
		return nil, err
	}
	if downsample == 0 || downsample == 1 {
		return positions, nil
	}

	threshold := uint64(float64(math.MaxUint64) * downsample)
	kept := positions[:0]
	for _, p := range positions {
		if hashSyncmer(seq[p:p+k]) < threshold {
			kept = append(kept, p)
		}
	}
	return kept, nil
}

// hashSyncmer is the seeded xxhash that decides whether a syncmer is kept.
func hashSyncmer(syncmer []byte) uint64 {
	d := xxhash.NewWithSeed(downsampleSeed)
	d.Write(syncmer)
	return d.Sum64()
}

// Find returns the syncmer substrings of seq that survive downsampling (see Sample).
func Find(k, s int, ts []int, downsample float64, seq []byte) ([][]byte, error) {
	positions, err := Sample(k, s, ts, downsample, seq)
	if err != nil {
		return nil, err
	}

	syncmers := make([][]byte, 0, len(positions))
	for _, p := range positions {
		syncmers = append(syncmers, seq[p:p+k])
	}
	return syncmers, nil
}

// isSyncmer reports whether the leftmost minimal s-mer of kmer starts at one of ts.
func isSyncmer(kmer []byte, s int, ts []int) bool {
	minPos := 0
	for j := 1; j+s <= len(kmer); j++ {
		if bytes.Compare(kmer[j:j+s], kmer[minPos:minPos+s]) < 0 {
			minPos = j
		}
	}
	for _, t := range ts {
		if t == minPos {
			return true
		}
	}
	return false
}
