package cards

import (
	"math"
	"testing"
)

const probTolerance = 1e-9

func TestBinomial(t *testing.T) {
	for n := uint64(0); n < 20; n++ {
		if binomial(n, 0) != 1 {
			t.Errorf("C(%d, 0) = %d, expected 1", n, binomial(n, 0))
		}
		if binomial(n, n) != 1 {
			t.Errorf("C(%d, %d) = %d, expected 1", n, n, binomial(n, n))
		}
		if binomial(n, n+1) != 0 {
			t.Errorf("C(%d, %d) = %d, expected 0", n, n+1, binomial(n, n+1))
		}
	}

	cases := []struct {
		n, k, expected uint64
	}{
		{4, 2, 6},
		{5, 2, 10},
		{10, 3, 120},
		{10, 7, 120},
		{52, 5, 2598960},
	}
	for _, tc := range cases {
		if got := binomial(tc.n, tc.k); got != tc.expected {
			t.Errorf("C(%d, %d) = %d, expected %d", tc.n, tc.k, got, tc.expected)
		}
	}
}

func TestForEachDraw_ProbabilitiesSumToOne(t *testing.T) {
	deck := DefaultDeck
	for n := 0; n <= deck.Len(); n++ {
		total := 0.0
		deck.ForEachDraw(n, func(remaining, drawn Set, p float64) {
			total += p
		})

		if math.Abs(total-1.0) > probTolerance {
			t.Errorf("draw probabilities for n=%d sum to %v, expected 1", n, total)
		}
	}
}

func TestForEachDraw_ConservesCards(t *testing.T) {
	deck := NewSetFromCards([]Card{Reactor, Reactor, Thruster, Shield, Miss})
	for n := 0; n <= deck.Len(); n++ {
		deck.ForEachDraw(n, func(remaining, drawn Set, p float64) {
			if drawn.Len() != n {
				t.Errorf("drew %d cards, expected %d", drawn.Len(), n)
			}

			if remaining.Union(drawn) != deck {
				t.Errorf("cards not conserved: %v + %v != %v", remaining, drawn, deck)
			}

			if p <= 0 {
				t.Errorf("outcome %v has non-positive probability %v", drawn, p)
			}
		})
	}
}

func TestForEachDraw_DistinctOutcomes(t *testing.T) {
	deck := DefaultDeck
	seen := make(map[Set]bool)
	deck.ForEachDraw(3, func(remaining, drawn Set, p float64) {
		if seen[drawn] {
			t.Errorf("outcome %v enumerated twice", drawn)
		}
		seen[drawn] = true
	})

	if len(seen) == 0 {
		t.Fatal("no outcomes enumerated")
	}
}

func TestForEachDraw_ExactProbabilities(t *testing.T) {
	// Drawing 2 from {2 Reactor, 1 Miss}: P(RR) = 1/3, P(RM) = 2/3.
	deck := NewSetFromCards([]Card{Reactor, Reactor, Miss})
	got := make(map[Set]float64)
	deck.ForEachDraw(2, func(remaining, drawn Set, p float64) {
		got[drawn] = p
	})

	expected := map[Set]float64{
		NewSetFromCards([]Card{Reactor, Reactor}): 1.0 / 3.0,
		NewSetFromCards([]Card{Reactor, Miss}):    2.0 / 3.0,
	}

	if len(got) != len(expected) {
		t.Fatalf("enumerated %d outcomes, expected %d", len(got), len(expected))
	}
	for drawn, p := range expected {
		if math.Abs(got[drawn]-p) > probTolerance {
			t.Errorf("P(%v) = %v, expected %v", drawn, got[drawn], p)
		}
	}
}

func TestForEachDraw_Clamped(t *testing.T) {
	deck := NewSetFromCards([]Card{Reactor, Miss})
	outcomes := 0
	deck.ForEachDraw(10, func(remaining, drawn Set, p float64) {
		outcomes++
		if !remaining.IsEmpty() {
			t.Errorf("expected everything drawn, %v remains", remaining)
		}
		if drawn != deck {
			t.Errorf("drew %v, expected the whole deck %v", drawn, deck)
		}
		if p != 1.0 {
			t.Errorf("draw-everything probability is %v, expected 1", p)
		}
	})

	if outcomes != 1 {
		t.Errorf("enumerated %d outcomes, expected exactly 1", outcomes)
	}
}

func TestForEachDraw_EmptySet(t *testing.T) {
	outcomes := 0
	NewSet().ForEachDraw(2, func(remaining, drawn Set, p float64) {
		outcomes++
		if !remaining.IsEmpty() || !drawn.IsEmpty() {
			t.Errorf("expected empty outcome, got %v / %v", remaining, drawn)
		}
		if p != 1.0 {
			t.Errorf("empty draw probability is %v, expected 1", p)
		}
	})

	if outcomes != 1 {
		t.Errorf("enumerated %d outcomes, expected exactly 1", outcomes)
	}
}

func TestDrawRandom(t *testing.T) {
	deck := DefaultDeck
	remaining, drawn := deck.DrawRandom(4)
	if drawn.Len() != 4 {
		t.Errorf("drew %d cards, expected 4", drawn.Len())
	}
	if remaining.Len() != deck.Len()-4 {
		t.Errorf("%d cards remain, expected %d", remaining.Len(), deck.Len()-4)
	}
	if remaining.Union(drawn) != deck {
		t.Errorf("cards not conserved: %v + %v != %v", remaining, drawn, deck)
	}
}

func TestDrawRandom_DrawsEverything(t *testing.T) {
	deck := NewSetFromCards([]Card{Reactor, Miss})
	remaining, drawn := deck.DrawRandom(5)
	if !remaining.IsEmpty() {
		t.Errorf("expected empty remainder, got %v", remaining)
	}
	if drawn != deck {
		t.Errorf("drew %v, expected %v", drawn, deck)
	}
}
