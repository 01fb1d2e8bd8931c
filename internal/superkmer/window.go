package superkmer

// window tracks the minimal score over the last k-l+1 l-mer positions.
//
// scores is a ring of the last k scores addressed by position mod k. dq is a
// ring deque of positions whose scores are non-decreasing from front to back,
// so the front is the leftmost minimal position of the window. A position is
// only popped from the back by a strictly smaller score, which keeps every
// minimal position in the deque and puts a tie in its first two entries.
type window struct {
	k      int
	size   int
	scores []uint64

	dq   []int
	head int
	n    int
}

func newWindow(k, l int) *window {
	size := k - l + 1
	return &window{
		k:      k,
		size:   size,
		scores: make([]uint64, k),
		dq:     make([]int, size),
	}
}

// push adds the score of the l-mer at pos, which must be one past the last
// position pushed. Each position is pushed and popped at most once.
func (w *window) push(pos int, score uint64) {
	for w.n > 0 && pos-w.at(0) >= w.size {
		w.popFront()
	}
	for w.n > 0 && w.scores[w.at(w.n-1)%w.k] > score {
		w.popBack()
	}
	w.scores[pos%w.k] = score
	w.dq[(w.head+w.n)%w.size] = pos
	w.n++
}

// min returns the leftmost position of the window's minimal score.
func (w *window) min() int {
	return w.at(0)
}

// tied reports whether the minimal score occurs at more than one position.
func (w *window) tied() bool {
	return w.n > 1 && w.scores[w.at(1)%w.k] == w.scores[w.at(0)%w.k]
}

// at returns the i-th position from the front of the deque.
func (w *window) at(i int) int {
	return w.dq[(w.head+i)%w.size]
}

func (w *window) popFront() {
	w.head = (w.head + 1) % w.size
	w.n--
}

func (w *window) popBack() {
	w.n--
}
