package contractodds

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/spacedeck/contractodds/cards"
)

// Requirements is the set of outstanding deficits that must all reach
// zero to complete a contract. Counters never go negative: every
// subtraction saturates at zero. Requirements is a comparable value
// type; equality is per-field ==.
type Requirements struct {
	Reactors  uint8
	Thrusters uint8
	Shields   uint8
	Damage    uint8
	Crew      uint8
}

// IsEmpty returns whether all deficits have been reduced to zero.
// This is the solver's goal condition.
func (r Requirements) IsEmpty() bool {
	return r == Requirements{}
}

// SubReactors reduces the reactors deficit by n, saturating at zero.
func (r *Requirements) SubReactors(n uint8) {
	r.Reactors = satSub(r.Reactors, n)
}

// SubThrusters reduces the thrusters deficit by n, saturating at zero.
func (r *Requirements) SubThrusters(n uint8) {
	r.Thrusters = satSub(r.Thrusters, n)
}

// SubShields reduces the shields deficit by n, saturating at zero.
func (r *Requirements) SubShields(n uint8) {
	r.Shields = satSub(r.Shields, n)
}

// SubDamage reduces the damage deficit by n, saturating at zero.
func (r *Requirements) SubDamage(n uint8) {
	r.Damage = satSub(r.Damage, n)
}

// SubCrew reduces the crew deficit by n, saturating at zero.
func (r *Requirements) SubCrew(n uint8) {
	r.Crew = satSub(r.Crew, n)
}

func satSub(have, n uint8) uint8 {
	if n >= have {
		return 0
	}

	return have - n
}

// Crew has no card of its own; it keeps its own letter and color.
const (
	crewLetter = 'C'
	crewColor  = "95"
)

type requirementField struct {
	letter byte
	color  string
	count  uint8
}

func (r Requirements) fields() []requirementField {
	return []requirementField{
		{cards.Reactor.Letter(), cards.Reactor.Color(), r.Reactors},
		{cards.Thruster.Letter(), cards.Thruster.Color(), r.Thrusters},
		{cards.Shield.Letter(), cards.Shield.Color(), r.Shields},
		{cards.Damage.Letter(), cards.Damage.Color(), r.Damage},
		{crewLetter, crewColor, r.Crew},
	}
}

// String implements Stringer, e.g. "Rx3, Dx2".
func (r Requirements) String() string {
	var parts []string
	for _, f := range r.fields() {
		if f.count == 0 {
			continue
		}
		parts = append(parts, string(f.letter)+"x"+strconv.Itoa(int(f.count)))
	}

	return strings.Join(parts, ", ")
}

// ConsoleString returns a colorized rendering of the Requirements
// suitable for printing to a terminal, e.g. "R×3, D×2".
func (r Requirements) ConsoleString() string {
	var parts []string
	for _, f := range r.fields() {
		if f.count == 0 {
			continue
		}
		parts = append(parts,
			"\033["+f.color+"m"+string(f.letter)+"\033[0m×"+strconv.Itoa(int(f.count)))
	}

	return strings.Join(parts, ", ")
}

// ParseRequirements parses a comma-separated list of name=count pairs,
// e.g. "reactors=3,damage=2". Unnamed fields default to zero.
func ParseRequirements(s string) (Requirements, error) {
	var result Requirements
	if s == "" {
		return result, nil
	}

	for _, part := range strings.Split(s, ",") {
		kv := strings.SplitN(strings.TrimSpace(part), "=", 2)
		if len(kv) != 2 {
			return Requirements{}, errors.Errorf("malformed requirement %q, expected name=count", part)
		}

		n, err := strconv.Atoi(kv[1])
		if err != nil {
			return Requirements{}, errors.Wrapf(err, "bad count for requirement %q", kv[0])
		}
		if n < 0 || n > 255 {
			return Requirements{}, errors.Errorf("requirement %q count %d out of range", kv[0], n)
		}

		switch strings.ToLower(kv[0]) {
		case "reactors":
			result.Reactors = uint8(n)
		case "thrusters":
			result.Thrusters = uint8(n)
		case "shields":
			result.Shields = uint8(n)
		case "damage":
			result.Damage = uint8(n)
		case "crew":
			result.Crew = uint8(n)
		default:
			return Requirements{}, errors.Errorf("unknown requirement %q", kv[0])
		}
	}

	return result, nil
}
