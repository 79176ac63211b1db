package contractodds

import (
	"fmt"

	"github.com/spacedeck/contractodds/cards"
)

// play returns the probability of eventually completing the contract
// after playing one copy of card from state's hand. The card set is
// closed, so effects are dispatched with a single exhaustive switch
// rather than through an interface.
//
// Every effect spends one action and discards the played card. Reactor
// additionally gains two actions and pays one reactor deficit; Shield
// and Damage pay their deficits; Miss does nothing else. Thruster pays
// one thruster deficit and then draws two cards, making it the only
// probabilistic transition: its result is the expectation over every
// possible two-card draw from the pile.
func (s *Solver) play(card cards.Card, state State) float64 {
	switch card {
	case cards.Reactor:
		next := state
		next.Hand.Remove(cards.Reactor)
		next.Actions++ // -1 action, then +2 actions
		next.Requirements.SubReactors(1)
		return s.GetCompletionProbability(next)

	case cards.Thruster:
		handBeforeDraw := state.Hand
		handBeforeDraw.Remove(cards.Thruster)

		next := state
		next.Actions--
		next.Requirements.SubThrusters(1)

		// Sum over all possible draws of 2 cards.
		totalProb := 0.0
		state.DrawPile.ForEachDraw(2, func(newDrawPile, drawn cards.Set, p float64) {
			next.DrawPile = newDrawPile
			next.Hand = handBeforeDraw.Union(drawn)
			totalProb += p * s.GetCompletionProbability(next)
		})
		return totalProb

	case cards.Shield:
		next := state
		next.Hand.Remove(cards.Shield)
		next.Actions--
		next.Requirements.SubShields(1)
		return s.GetCompletionProbability(next)

	case cards.Damage:
		next := state
		next.Hand.Remove(cards.Damage)
		next.Actions--
		next.Requirements.SubDamage(1)
		return s.GetCompletionProbability(next)

	case cards.Miss:
		next := state
		next.Hand.Remove(cards.Miss)
		next.Actions--
		return s.GetCompletionProbability(next)
	}

	panic(fmt.Errorf("playing unsupported %v card", card))
}
