package superkmer

import "io"

// state of an Iterator.
type state int

const (
	// filling: the first k-l+1 scores haven't been read yet
	filling state = iota

	// streaming: a span is in progress
	streaming

	// exhausted: the last span has been returned
	exhausted
)

// Iterator streams the superkmers of a sequence. It reads the sequence but
// never changes it, and it can't be rewound: make a new Iterator (with a new
// Scorer) to go over a sequence again. An Iterator isn't safe for concurrent
// use, but any number of them can run over the same sequence.
type Iterator struct {
	seq    []byte
	k      int
	l      int
	scorer Scorer
	win    *window
	norm   *normalizer
	state  state

	// first and latest windows (k-mer starts) of the span in progress
	start int
	last  int

	// absolute position of the span's minimizer and whether its window is tied
	minPos int
	tied   bool
}

// NewIterator returns an Iterator over the superkmers of seq for k-mers of
// length k and minimizers of length l, ranked by scorer. It errors, wrapping
// ErrInvalidParams, unless 1 <= l <= k <= len(seq) and 2k-l <= MaxSize.
func NewIterator(seq []byte, k, l int, scorer Scorer) (*Iterator, error) {
	if err := validate(len(seq), k, l); err != nil {
		return nil, err
	}

	return &Iterator{
		seq:    seq,
		k:      k,
		l:      l,
		scorer: scorer,
		win:    newWindow(k, l),
		norm:   newNormalizer(l),
	}, nil
}

// Extract returns every superkmer of seq in order. The scorer is closed
// when done, even if k and l are rejected.
func Extract(seq []byte, k, l int, scorer Scorer) ([]Superkmer, error) {
	it, err := NewIterator(seq, k, l, scorer)
	if err != nil {
		if c, ok := scorer.(io.Closer); ok {
			c.Close()
		}
		return nil, err
	}
	defer it.Close()

	var sks []Superkmer
	for sk, ok := it.Next(); ok; sk, ok = it.Next() {
		sks = append(sks, sk)
	}
	return sks, nil
}

// Next returns the next superkmer in canonical orientation. ok is false once
// the sequence is exhausted.
func (it *Iterator) Next() (sk Superkmer, ok bool) {
	span, ok := it.NextSpan()
	if !ok {
		return Superkmer{}, false
	}
	return it.norm.normalize(it.seq, span), true
}

// NextSpan returns the next superkmer span as it was found on the forward
// strand, before canonicalization.
func (it *Iterator) NextSpan() (span Span, ok bool) {
	switch it.state {
	case exhausted:
		return Span{}, false
	case filling:
		if !it.fill() {
			return Span{}, false
		}
	}

	lastWindow := len(it.seq) - it.k
	for it.last < lastWindow {
		score, ok := it.scorer.Next()
		if !ok {
			break
		}

		it.last++
		it.win.push(it.last+it.k-it.l, score)

		minPos, tied := it.win.min(), it.win.tied()
		if it.tied || tied || minPos != it.minPos {
			span = Span{
				Start: it.start,
				End:   it.last - 1 + it.k,
				MPos:  it.minPos - it.start,
				Tied:  it.tied,
			}
			it.start, it.minPos, it.tied = it.last, minPos, tied
			return span, true
		}
	}

	it.state = exhausted
	return Span{
		Start: it.start,
		End:   it.last + it.k,
		MPos:  it.minPos - it.start,
		Tied:  it.tied,
	}, true
}

// fill reads the scores of the first window's l-mers.
func (it *Iterator) fill() bool {
	for pos := 0; pos <= it.k-it.l; pos++ {
		score, ok := it.scorer.Next()
		if !ok {
			it.state = exhausted
			return false
		}
		it.win.push(pos, score)
	}

	it.minPos, it.tied = it.win.min(), it.win.tied()
	it.state = streaming
	return true
}

// Close releases the scorer if it holds resources. Stopping early without
// calling Close is fine for scorers that don't.
func (it *Iterator) Close() error {
	it.state = exhausted
	if c, ok := it.scorer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
