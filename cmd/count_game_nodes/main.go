// Script to count the nodes in the game tree of a contract attempt.
package main

import (
	"flag"
	"math/rand"
	"time"

	"github.com/golang/glog"
	"github.com/timpalpant/go-cfr"
	"github.com/timpalpant/go-cfr/tree"

	"github.com/spacedeck/contractodds"
	"github.com/spacedeck/contractodds/cards"
)

func main() {
	seed := flag.Int64("seed", 123, "Seed for random deal")
	actions := flag.Int("actions", 1, "Action budget for the attempt")
	handSize := flag.Int("hand", 5, "Number of cards dealt to the hand")
	reqStr := flag.String("requirements", "reactors=2,shields=1", "Requirements to meet")
	flag.Parse()

	rand.Seed(*seed)

	requirements, err := contractodds.ParseRequirements(*reqStr)
	if err != nil {
		glog.Fatal(err)
	}

	drawPile, hand := cards.DefaultDeck.DrawRandom(*handSize)
	glog.Infof("Hand: %v, draw pile: %v, requirements: %v", hand, drawPile, requirements)
	game := contractodds.NewGame(
		contractodds.NewState(*actions, hand, drawPile, requirements))

	total := 0
	terminal := 0
	start := time.Now()
	tree.Visit(game, func(node cfr.GameTreeNode) {
		total++
		if node.Type() == cfr.TerminalNodeType {
			terminal++
		}
	})

	nps := float64(total) / time.Since(start).Seconds()
	glog.Infof("%d nodes in game tree, %d terminal (%.1f nodes/sec)",
		total, terminal, nps)
}
