package contractodds

import (
	"math"
	"testing"

	"github.com/timpalpant/go-cfr"

	"github.com/spacedeck/contractodds/cards"
)

// expectimax evaluates a game tree directly: max over player choices,
// probability-weighted sum over chance outcomes.
func expectimax(node cfr.GameTreeNode) float64 {
	switch node.Type() {
	case cfr.TerminalNodeType:
		return node.Utility(0)
	case cfr.ChanceNodeType:
		total := 0.0
		for i := 0; i < node.NumChildren(); i++ {
			total += node.(*GameNode).GetChildProbability(i) * expectimax(node.GetChild(i))
		}
		return total
	default:
		best := 0.0
		for i := 0; i < node.NumChildren(); i++ {
			if v := expectimax(node.GetChild(i)); v > best {
				best = v
			}
		}
		return best
	}
}

func TestGameTreeAgreesWithSolver(t *testing.T) {
	states := []State{
		NewState(1,
			cards.NewSetFromCards([]cards.Card{cards.Reactor}),
			cards.NewSetFromCards([]cards.Card{cards.Reactor, cards.Reactor}),
			Requirements{Reactors: 1}),
		NewState(1,
			cards.NewSetFromCards([]cards.Card{cards.Miss}),
			cards.NewSet(),
			Requirements{Reactors: 1}),
		NewState(2,
			cards.NewSetFromCards([]cards.Card{cards.Thruster}),
			cards.NewSetFromCards([]cards.Card{cards.Reactor, cards.Miss}),
			Requirements{Reactors: 1}),
		NewState(2,
			cards.NewSetFromCards([]cards.Card{cards.Thruster, cards.Shield}),
			cards.NewSetFromCards([]cards.Card{cards.Reactor, cards.Shield, cards.Miss}),
			Requirements{Shields: 1, Reactors: 1}),
		NewState(3,
			cards.NewSetFromCards([]cards.Card{
				cards.Reactor, cards.Thruster, cards.Damage, cards.Miss}),
			cards.NewSetFromCards([]cards.Card{cards.Reactor, cards.Shield}),
			Requirements{Reactors: 1, Damage: 1}),
	}

	for _, state := range states {
		want := NewSolver().GetCompletionProbability(state)
		got := expectimax(NewGame(state))
		if math.Abs(got-want) > probTolerance {
			t.Errorf("tree value %v differs from solver value %v for %v", got, want, state)
		}
	}
}

func TestGameNodeTerminal(t *testing.T) {
	done := NewGame(NewState(2, cards.NewSet(), cards.NewSet(), Requirements{}))
	if done.Type() != cfr.TerminalNodeType {
		t.Errorf("completed contract node has type %v, expected terminal", done.Type())
	}
	if u := done.Utility(0); u != 1.0 {
		t.Errorf("completed contract utility = %v, expected 1.0", u)
	}

	failed := NewGame(NewState(0, cards.DefaultDeck, cards.NewSet(), Requirements{Crew: 1}))
	if failed.Type() != cfr.TerminalNodeType {
		t.Errorf("failed contract node has type %v, expected terminal", failed.Type())
	}
	if u := failed.Utility(0); u != 0.0 {
		t.Errorf("failed contract utility = %v, expected 0.0", u)
	}
}

func TestGameNodeChildren(t *testing.T) {
	hand := cards.NewSetFromCards([]cards.Card{cards.Reactor, cards.Reactor, cards.Miss})
	root := NewGame(NewState(1, hand, cards.NewSet(), Requirements{Reactors: 2}))
	if root.Type() != cfr.PlayerNodeType {
		t.Fatalf("root has type %v, expected player", root.Type())
	}

	// One child per distinct card, not per copy.
	if n := root.NumChildren(); n != 2 {
		t.Fatalf("root has %d children, expected 2", n)
	}

	for i := 0; i < root.NumChildren(); i++ {
		child := root.GetChild(i).(*GameNode)
		if child.state.Hand.Len() != hand.Len()-1 {
			t.Errorf("child %d hand has %d cards, expected %d",
				i, child.state.Hand.Len(), hand.Len()-1)
		}

		played := root.PlayedCard(i)
		if child.state.Hand.CountOf(played) != hand.CountOf(played)-1 {
			t.Errorf("child %d did not discard the played %v", i, played)
		}
	}
}

func TestGameNodeChanceProbabilities(t *testing.T) {
	hand := cards.NewSetFromCards([]cards.Card{cards.Thruster})
	pile := cards.NewSetFromCards([]cards.Card{
		cards.Reactor, cards.Reactor, cards.Shield, cards.Miss})
	root := NewGame(NewState(2, hand, pile, Requirements{Thrusters: 2}))

	if n := root.NumChildren(); n != 1 {
		t.Fatalf("root has %d children, expected 1", n)
	}

	chance := root.GetChild(0).(*GameNode)
	if chance.Type() != cfr.ChanceNodeType {
		t.Fatalf("thruster child has type %v, expected chance", chance.Type())
	}

	total := 0.0
	for i := 0; i < chance.NumChildren(); i++ {
		total += chance.GetChildProbability(i)
	}
	if math.Abs(total-1.0) > probTolerance {
		t.Errorf("chance probabilities sum to %v, expected 1", total)
	}

	child, p := chance.SampleChild()
	if p <= 0 || p > 1 {
		t.Errorf("sampled child probability %v outside (0, 1]", p)
	}
	if child.(*GameNode).state.Hand.Len() != 2 {
		t.Errorf("sampled child hand has %d cards, expected 2",
			child.(*GameNode).state.Hand.Len())
	}
}

func TestInfoSetRoundTrip(t *testing.T) {
	state := NewState(3,
		cards.NewSetFromCards([]cards.Card{cards.Reactor, cards.Thruster}),
		cards.NewSetFromCards([]cards.Card{cards.Shield, cards.Miss}),
		Requirements{Reactors: 1, Crew: 2})

	is := &InfoSet{State: state}
	buf, err := is.MarshalBinary()
	if err != nil {
		t.Fatal(err)
	}

	var decoded InfoSet
	if err := decoded.UnmarshalBinary(buf); err != nil {
		t.Fatal(err)
	}

	if decoded.State != state {
		t.Errorf("round trip gave %v, expected %v", decoded.State, state)
	}

	if is.Key() != (&InfoSet{State: state}).Key() {
		t.Error("equal states produced different info set keys")
	}
}
