package cards

import (
	"math/rand"

	"github.com/golang/glog"
)

// MaxExactDrawSize is the largest Set that ForEachDraw can weight
// reliably. Above this many total cards, the uint64 binomial
// coefficients used to weight draws may overflow: C(62, 31) is near the
// top of the uint64 range.
const MaxExactDrawSize = 62

// binomial computes the binomial coefficient C(n, k) exactly.
func binomial(n, k uint64) uint64 {
	if k > n {
		return 0
	}
	if k == 0 || k == n {
		return 1
	}

	if k > n-k { // take advantage of symmetry
		k = n - k
	}

	c := uint64(1)
	for i := uint64(0); i < k; i++ {
		c = c * (n - i) / (i + 1)
	}
	return c
}

// ForEachDraw enumerates every distinct way of drawing n cards from the
// Set without replacement, calling cb once per outcome with the reduced
// Set, the drawn cards, and the exact probability of that outcome.
// Probabilities over all outcomes sum to 1. If n exceeds the number of
// cards in the Set it is clamped, so the only outcome is drawing
// everything. The enumeration order is unspecified.
func (s Set) ForEachDraw(n int, cb func(remaining, drawn Set, p float64)) {
	total := s.Len()
	if total > MaxExactDrawSize {
		glog.Warningf("enumerating draws from %d cards: binomial coefficients "+
			"may overflow uint64 above %d, probabilities are unreliable",
			total, MaxExactDrawSize)
	}

	if n > total {
		n = total
	}

	norm := 1 / float64(binomial(uint64(total), uint64(n)))
	types := s.Distinct()

	// remainingAfter[i] is the number of cards of types[i:] in the Set,
	// used to prune draw counts that could not reach n.
	remainingAfter := make([]int, len(types)+1)
	for i := len(types) - 1; i >= 0; i-- {
		remainingAfter[i] = remainingAfter[i+1] + int(s.CountOf(types[i]))
	}

	var enumerate func(i, need int, drawn Set, numer uint64)
	enumerate = func(i, need int, drawn Set, numer uint64) {
		if need == 0 {
			remaining := s
			remaining.RemoveAll(drawn)
			cb(remaining, drawn, float64(numer)*norm)
			return
		}

		count := int(s.CountOf(types[i]))
		lo := need - remainingAfter[i+1]
		if lo < 0 {
			lo = 0
		}
		hi := count
		if need < hi {
			hi = need
		}

		for d := lo; d <= hi; d++ {
			next := drawn
			next.AddN(types[i], d)
			enumerate(i+1, need-d, next, numer*binomial(uint64(count), uint64(d)))
		}
	}

	enumerate(0, n, NewSet(), 1)
}

// DrawRandom removes n cards from the Set, chosen uniformly at random
// among all size-n subsets. It returns the reduced Set and the drawn
// cards. If n is at least the size of the Set, everything is drawn.
// DrawRandom is for simulation only; the solver uses ForEachDraw.
func (s Set) DrawRandom(n int) (remaining, drawn Set) {
	cards := s.AsSlice()
	if n >= len(cards) {
		return NewSet(), s
	}

	rand.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return NewSetFromCards(cards[n:]), NewSetFromCards(cards[:n])
}
