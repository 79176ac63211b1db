// Solves a single contract deal: how likely is it that the dealt hand
// can meet the requirements before the actions run out?
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/golang/glog"

	"github.com/spacedeck/contractodds"
	"github.com/spacedeck/contractodds/cards"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "Random seed for the deal")
	actions := flag.Int("actions", 1, "Action budget for the attempt")
	handSize := flag.Int("hand", 5, "Number of cards dealt to the hand")
	deckStr := flag.String("deck", "", "Deck as card letters, e.g. RRRTTSSDDM (default: the standard deck)")
	reqStr := flag.String("requirements", "", "Requirements to meet, e.g. reactors=2,shields=1 (default: a random contract)")
	flag.Parse()

	rand.Seed(*seed)

	deck := cards.DefaultDeck
	if *deckStr != "" {
		var err error
		deck, err = cards.ParseSet(*deckStr)
		if err != nil {
			glog.Fatal(err)
		}
	}

	requirements, err := contractodds.ParseRequirements(*reqStr)
	if err != nil {
		glog.Fatal(err)
	}
	if requirements.IsEmpty() {
		contract := contractodds.Contracts[rand.Intn(len(contractodds.Contracts))]
		glog.Infof("Rolled contract %q (%v, %d hazard dice)",
			contract.Name, contract.Type, contract.HazardDice)
		requirements = contract.Requirements
	}

	drawPile, hand := deck.DrawRandom(*handSize)
	fmt.Printf("hand: %s  |  draw pile: %s\n", hand.ConsoleString(), drawPile.ConsoleString())
	fmt.Printf("requirements: %s\n", requirements.ConsoleString())

	state := contractodds.NewState(*actions, hand, drawPile, requirements)
	if err := state.Validate(); err != nil {
		glog.Fatal(err)
	}

	solver := contractodds.NewSolver()
	start := time.Now()
	prob := solver.GetCompletionProbability(state)
	glog.Infof("Solved in %v (%d states explored)",
		time.Since(start), solver.ExploredStatesCount())

	fmt.Printf("probability of being able to meet requirements: %.2f%% (%s)\n",
		100*prob, describeOdds(prob))
}

// describeOdds renders a probability the way a player reads it,
// e.g. "1 in 4" or "impossible".
func describeOdds(p float64) string {
	const tol = 1e-6
	if p == 0 {
		return "impossible"
	}
	if math.Abs(p-1) < tol { // allow for rounding error
		return "guaranteed possible"
	}

	inN := 1 / p
	if math.Abs(inN-math.Round(inN)) < tol {
		return fmt.Sprintf("1 in %.0f", inN)
	}
	return fmt.Sprintf("1 in %.1f", inN)
}
