package contractodds

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/spacedeck/contractodds/cards"
)

// State is a snapshot of a contract attempt: the remaining action
// budget, the cards in hand, the cards left in the draw pile, and the
// outstanding requirements.
//
// State is a comparable value type built entirely from comparable
// fields, so it can be used directly as a map key: two States compare
// equal iff all four fields are equal, and Go's map hashing is
// consistent with that equality. The solver relies on this for its
// transposition table. Successor states are always fresh copies; a
// State is never mutated once handed to the solver.
type State struct {
	Actions      int
	Hand         cards.Set
	DrawPile     cards.Set
	Requirements Requirements
}

// NewState creates the state for a fresh contract attempt.
func NewState(actions int, hand, drawPile cards.Set, requirements Requirements) State {
	return State{
		Actions:      actions,
		Hand:         hand,
		DrawPile:     drawPile,
		Requirements: requirements,
	}
}

// Validate sanity checks the State. It catches malformed construction
// by a driver, not in-search corruption: effect transitions preserve
// validity.
func (s State) Validate() error {
	if s.Actions < 0 {
		return errors.Errorf("negative action budget %d", s.Actions)
	}

	total := s.Hand.Len() + s.DrawPile.Len()
	if total > cards.MaxExactDrawSize {
		return errors.Errorf("%d cards in play, exact draw probabilities are only reliable up to %d",
			total, cards.MaxExactDrawSize)
	}

	return nil
}

// String implements Stringer.
func (s State) String() string {
	return fmt.Sprintf("%d actions, hand: %v, draw pile: %v, needs: %v",
		s.Actions, s.Hand, s.DrawPile, s.Requirements)
}
