package contractodds

import (
	"expvar"

	"github.com/golang/glog"

	"github.com/spacedeck/contractodds/cards"
)

var (
	statesVisited  = expvar.NewInt("states_visited")
	terminalStates = expvar.NewInt("states_visited/terminal")
	memoizedStates = expvar.NewInt("states_visited/memoized")
)

// Solver computes exact contract completion probabilities by memoized
// expectimax search. The memo maps each fully-expanded State to the
// probability of success under optimal play from that State.
//
// A Solver is not safe for concurrent use: the memo is private mutable
// state owned by a single search.
type Solver struct {
	memo     map[State]float64
	explored int64
}

// NewSolver creates a Solver with an empty transposition table.
func NewSolver() *Solver {
	return &Solver{
		memo: make(map[State]float64),
	}
}

// GetCompletionProbability returns the probability, under optimal play,
// of reducing all of state's requirements to zero before the action
// budget runs out.
func (s *Solver) GetCompletionProbability(state State) float64 {
	s.explored++
	statesVisited.Add(1)

	if state.Requirements.IsEmpty() {
		terminalStates.Add(1)
		return 1.0 // goal state found
	}
	if state.Actions == 0 {
		terminalStates.Add(1)
		return 0.0 // out of actions
	}

	if prob, ok := s.memo[state]; ok {
		memoizedStates.Add(1)
		return prob
	}

	// Recurse for each distinct card available to play; the best
	// achievable probability is the value of this state.
	maxSolveProb := 0.0
	state.Hand.Iter(func(card cards.Card, count uint8) {
		if solveProb := s.play(card, state); solveProb > maxSolveProb {
			maxSolveProb = solveProb
		}
	})

	glog.V(2).Infof("solved %v: p=%v", state, maxSolveProb)
	s.memo[state] = maxSolveProb
	return maxSolveProb
}

// ExploredStatesCount returns the number of states evaluated so far,
// including memoized hits and terminal states.
func (s *Solver) ExploredStatesCount() int64 {
	return s.explored
}
