// Estimates the expected credit payout of taking the best of several
// offered low-hazard contracts, over many random deals. Each deal's
// completion probability is exact; only the deals themselves are
// sampled.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/golang/glog"

	"github.com/spacedeck/contractodds"
	"github.com/spacedeck/contractodds/cards"
)

func main() {
	seed := flag.Int64("seed", 123, "Random seed")
	iters := flag.Int("n", 100000, "Number of deals to simulate")
	offered := flag.Int("offered", 8, "Number of contracts offered per deal")
	actions := flag.Int("actions", 1, "Action budget for each attempt")
	handSize := flag.Int("hand", 5, "Number of cards dealt to the hand")
	flag.Parse()

	rand.Seed(*seed)

	easy := contractodds.EasyContracts()
	if *offered > len(easy) {
		glog.Fatalf("cannot offer %d contracts, only %d easy contracts in the catalog",
			*offered, len(easy))
	}

	// One solver across all deals: deals share most of their subtrees,
	// so the memo carries over.
	solver := contractodds.NewSolver()
	deck := cards.DefaultDeck

	start := time.Now()
	totalCredits := 0.0
	for i := 0; i < *iters; i++ {
		best := 0.0
		for _, j := range rand.Perm(len(easy))[:*offered] {
			contract := easy[j]
			drawPile, hand := deck.DrawRandom(*handSize)
			state := contractodds.NewState(*actions, hand, drawPile, contract.Requirements)
			prob := solver.GetCompletionProbability(state)
			if credits := prob * float64(contract.Rewards.Credits); credits > best {
				best = credits
			}
		}
		totalCredits += best

		if (i+1)%10000 == 0 {
			dps := float64(i+1) / time.Since(start).Seconds()
			glog.Infof("Simulated %d deals (%.1f deals/sec)", i+1, dps)
		}
	}

	glog.Infof("Explored %d states", solver.ExploredStatesCount())
	fmt.Printf("expected credits: %v\n", totalCredits/float64(*iters))
}
