package contractodds

import (
	"expvar"
	"fmt"
	"math/rand"

	"github.com/timpalpant/go-cfr"

	"github.com/spacedeck/contractodds/cards"
)

var (
	nodesVisited         = expvar.NewInt("nodes_visited")
	terminalNodesVisited = expvar.NewInt("nodes_visited/terminal")
	playerNodesVisited   = expvar.NewInt("nodes_visited/player")
	chanceNodesVisited   = expvar.NewInt("nodes_visited/chance")
)

// turnType represents the kind of turn at a given point in the attempt.
type turnType uint8

const (
	_ turnType = iota
	PlayTurn
	DrawCards
	GameOver
)

var turnTypeStr = [...]string{
	"Invalid",
	"PlayTurn",
	"DrawCards",
	"GameOver",
}

func (tt turnType) String() string {
	return turnTypeStr[tt]
}

// GameNode implements cfr.GameTreeNode for a contract attempt.
// It exposes the same transition rules the Solver searches as an
// extensive-form game tree: card choices are player nodes, the
// two-card draw after a Thruster is the only chance node, and the
// attempt ends in a terminal node worth 1 (contract complete) or 0
// (out of actions).
type GameNode struct {
	state    State
	turnType turnType
	// pendingDraws is the number of cards to be drawn at a DrawCards
	// chance node. Always 2 (the Thruster draw) in the current rules.
	pendingDraws int

	// children are the possible next states in the attempt.
	children []GameNode
	// played is the card played to reach each child; set for PlayTurn nodes.
	played []cards.Card
	// probs is the chance of reaching each child; set for DrawCards nodes.
	probs  []float64
	parent *GameNode

	rng *rand.Rand
}

// Verify that we implement the interface.
var _ cfr.GameTreeNode = &GameNode{}

// NewGame creates a root node for a contract attempt starting in the
// given state.
func NewGame(state State) *GameNode {
	gn := &GameNode{
		state: state,
		rng:   rand.New(rand.NewSource(rand.Int63())),
	}
	makePlayTurnNode(gn)
	return gn
}

func makePlayTurnNode(node *GameNode) {
	if node.state.Requirements.IsEmpty() || node.state.Actions == 0 {
		node.turnType = GameOver
	} else {
		node.turnType = PlayTurn
	}
}

// Type implements cfr.GameTreeNode.
func (gn *GameNode) Type() cfr.NodeType {
	switch gn.turnType {
	case DrawCards:
		return cfr.ChanceNodeType
	case GameOver:
		return cfr.TerminalNodeType
	default:
		return cfr.PlayerNodeType
	}
}

// Player implements cfr.GameTreeNode. The contract game is
// single-agent; the sole player is always player 0.
func (gn *GameNode) Player() int {
	return 0
}

// InfoSet implements cfr.GameTreeNode.
func (gn *GameNode) InfoSet(player int) cfr.InfoSet {
	return &InfoSet{State: gn.state}
}

// Utility implements cfr.GameTreeNode. A completed contract is worth 1,
// a failed attempt 0, so expected utility at the root is the completion
// probability.
func (gn *GameNode) Utility(player int) float64 {
	if gn.Type() != cfr.TerminalNodeType {
		panic("cannot get the utility of a non-terminal node")
	}

	if gn.state.Requirements.IsEmpty() {
		return 1.0
	}

	return 0.0
}

// String implements fmt.Stringer.
func (gn *GameNode) String() string {
	return fmt.Sprintf("%v: %v", gn.turnType, gn.state)
}

func (gn *GameNode) allocChildren(n int) {
	gn.children = make([]GameNode, 0, n)
	// Children are initialized as a copy of the current game node,
	// but without any children (the new node's children must be built).
	childPrototype := *gn
	childPrototype.children = nil
	childPrototype.played = nil
	childPrototype.probs = nil
	childPrototype.parent = gn
	childPrototype.pendingDraws = 0
	for i := 0; i < n; i++ {
		gn.children = append(gn.children, childPrototype)
	}
}

func (gn *GameNode) buildChildren() {
	if len(gn.children) > 0 {
		return // Already built.
	}

	switch gn.turnType {
	case PlayTurn:
		gn.buildPlayTurnChildren()
	case DrawCards:
		gn.buildDrawChildren()
	case GameOver:
	default:
		panic("unimplemented turn type!")
	}
}

func (gn *GameNode) buildPlayTurnChildren() {
	hand := gn.state.Hand
	gn.allocChildren(len(hand.Distinct()))
	gn.played = make([]cards.Card, len(gn.children))
	i := 0
	// Play one of the distinct cards in our hand.
	hand.Iter(func(card cards.Card, count uint8) {
		child := &gn.children[i]
		gn.played[i] = card
		child.state.Hand.Remove(card)

		switch card {
		case cards.Reactor:
			child.state.Actions++ // -1 action, then +2 actions
			child.state.Requirements.SubReactors(1)
			makePlayTurnNode(child)
		case cards.Thruster:
			child.state.Actions--
			child.state.Requirements.SubThrusters(1)
			child.turnType = DrawCards
			child.pendingDraws = 2
		case cards.Shield:
			child.state.Actions--
			child.state.Requirements.SubShields(1)
			makePlayTurnNode(child)
		case cards.Damage:
			child.state.Actions--
			child.state.Requirements.SubDamage(1)
			makePlayTurnNode(child)
		case cards.Miss:
			child.state.Actions--
			makePlayTurnNode(child)
		default:
			panic(fmt.Errorf("playing unsupported %v card", card))
		}

		i++
	})
}

func (gn *GameNode) buildDrawChildren() {
	childPrototype := *gn
	childPrototype.children = nil
	childPrototype.played = nil
	childPrototype.probs = nil
	childPrototype.parent = gn
	childPrototype.pendingDraws = 0

	handBeforeDraw := gn.state.Hand
	gn.state.DrawPile.ForEachDraw(gn.pendingDraws, func(newDrawPile, drawn cards.Set, p float64) {
		child := childPrototype
		child.state.DrawPile = newDrawPile
		child.state.Hand = handBeforeDraw.Union(drawn)
		makePlayTurnNode(&child)
		gn.children = append(gn.children, child)
		gn.probs = append(gn.probs, p)
	})
}

func (gn *GameNode) NumChildren() int {
	if gn.children == nil {
		gn.buildChildren()
	}

	return len(gn.children)
}

// GetChild implements cfr.GameTreeNode.
func (gn *GameNode) GetChild(i int) cfr.GameTreeNode {
	if gn.children == nil {
		gn.buildChildren()
	}

	return &gn.children[i]
}

func (gn *GameNode) Parent() cfr.GameTreeNode {
	return gn.parent
}

// GetChildProbability implements cfr.GameTreeNode.
func (gn *GameNode) GetChildProbability(i int) float64 {
	if gn.Type() != cfr.ChanceNodeType {
		panic("cannot get the probability of a non-chance node")
	}

	if gn.children == nil {
		gn.buildChildren()
	}

	return gn.probs[i]
}

// SampleChild implements cfr.GameTreeNode. Draw outcomes are sampled
// in proportion to their exact probabilities.
func (gn *GameNode) SampleChild() (cfr.GameTreeNode, float64) {
	n := gn.NumChildren()
	r := gn.rng.Float64()
	cum := 0.0
	for i := 0; i < n; i++ {
		cum += gn.GetChildProbability(i)
		if r < cum {
			return gn.GetChild(i), gn.GetChildProbability(i)
		}
	}

	// Rounding left r just past the final cumulative sum.
	return gn.GetChild(n - 1), gn.GetChildProbability(n - 1)
}

// Close implements cfr.GameTreeNode.
func (gn *GameNode) Close() {
	nodesVisited.Add(1)
	switch gn.Type() {
	case cfr.TerminalNodeType:
		terminalNodesVisited.Add(1)
	case cfr.PlayerNodeType:
		playerNodesVisited.Add(1)
	case cfr.ChanceNodeType:
		chanceNodesVisited.Add(1)
	}

	gn.children = nil
	gn.played = nil
	gn.probs = nil
}

// PlayedCard returns the card played to reach the i'th child of a
// PlayTurn node.
func (gn *GameNode) PlayedCard(i int) cards.Card {
	if gn.turnType != PlayTurn {
		panic(fmt.Errorf("cannot get played card of a %v node", gn.turnType))
	}

	if gn.children == nil {
		gn.buildChildren()
	}

	return gn.played[i]
}
