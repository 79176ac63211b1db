package cards

import (
	"fmt"
	"strings"
)

const (
	bitsPerCardCount uint = 6
	maxCountPerType       = (1 << bitsPerCardCount) - 1
	mask                  = Set(1<<bitsPerCardCount) - 1
)

// Set represents an unordered multiset of cards.
// Set[Card] is the number of that Card in the set.
//
// The maximum count for a single type of Card is 63.
// Therefore the counts for all Cards can fit in a single uint64:
// 6 bits per Card x 5 types of Cards = 30 bits.
// Because Set is a plain integer, equality is ==, a zero count is
// indistinguishable from absence, and Set can be used directly as a
// map key.
type Set uint64

func NewSet() Set {
	return Set(0)
}

// NewSetFromCards creates a new Set from the given slice of Cards.
func NewSetFromCards(cards []Card) Set {
	result := Set(0)
	for _, card := range cards {
		result.Add(card)
	}

	return result
}

// NewSetFromCounts creates a new Set with the given count of each Card.
func NewSetFromCounts(counts map[Card]uint8) Set {
	result := Set(0)
	for card, count := range counts {
		result.AddN(card, int(count))
	}

	return result
}

// ParseSet parses a string of card letters (e.g. "RRTSD") into a Set.
func ParseSet(s string) (Set, error) {
	result := Set(0)
	for i := 0; i < len(s); i++ {
		found := false
		for card := Card(0); card <= Miss; card++ {
			if s[i] == card.Letter() {
				result.Add(card)
				found = true
				break
			}
		}
		if !found {
			return Set(0), fmt.Errorf("unknown card letter %q in %q", s[i], s)
		}
	}

	return result, nil
}

// IsEmpty returns whether this Set contains any Cards.
func (s Set) IsEmpty() bool {
	return s == 0
}

// CountOf gets the number of the given type of Card in the Set.
func (s Set) CountOf(card Card) uint8 {
	shift := uint(card) * bitsPerCardCount
	return uint8((s >> shift) & mask)
}

// Contains returns whether the Set contains at least one of the given type of Card.
func (s Set) Contains(card Card) bool {
	return s.CountOf(card) > 0
}

// Counts returns a map of the number of each type of card in this Set.
func (s Set) Counts() map[Card]uint8 {
	result := make(map[Card]uint8)
	s.Iter(func(card Card, count uint8) {
		result[card] = count
	})
	return result
}

func (s Set) Iter(cb func(card Card, count uint8)) {
	for card := Card(0); s > 0; card++ {
		count := uint8(s & mask)
		if count > 0 {
			cb(card, count)
		}
		s >>= bitsPerCardCount
	}
}

// Len gets the total number of Cards in the Set.
func (s Set) Len() int {
	n := 0
	s.Iter(func(card Card, count uint8) {
		n += int(count)
	})
	return n
}

// Distinct gets a slice of the distinct Cards in the Set.
func (s Set) Distinct() []Card {
	var result []Card
	s.Iter(func(card Card, count uint8) {
		result = append(result, card)
	})
	return result
}

// AsSlice returns a slice of Cards with the given number of each
// Card as found in this Set.
func (s Set) AsSlice() []Card {
	var result []Card
	s.Iter(func(card Card, count uint8) {
		for i := uint8(0); i < count; i++ {
			result = append(result, card)
		}
	})

	return result
}

// Add includes one of the given Card in the Set.
func (s *Set) Add(card Card) {
	s.AddN(card, 1)
}

// AddN includes n of the given Card in the Set.
// AddN panics if the count for the card would exceed 63, since it
// could no longer be packed into the Set.
func (s *Set) AddN(card Card, n int) {
	if int(s.CountOf(card))+n > maxCountPerType {
		panic(fmt.Errorf("cannot hold %d %v cards in set (max %d)",
			int(s.CountOf(card))+n, card, maxCountPerType))
	}

	shift := uint(card) * bitsPerCardCount
	*s += Set(n << shift)
}

// Remove removes one of the given Card from the Set.
// Remove panics if the card is not present in the Set.
func (s *Set) Remove(card Card) {
	s.RemoveN(card, 1)
}

// RemoveN removes n of the given Card from the Set.
// RemoveN panics if fewer than n of the card are present.
func (s *Set) RemoveN(card Card, n int) {
	if int(s.CountOf(card)) < n {
		panic(fmt.Errorf("card %v not in set", card))
	}

	shift := uint(card) * bitsPerCardCount
	*s -= Set(n << shift)
}

// RemoveAllOf removes every copy of the given Card from the Set.
// RemoveAllOf panics if the card is not present in the Set.
func (s *Set) RemoveAllOf(card Card) {
	n := s.CountOf(card)
	if n == 0 {
		panic(fmt.Errorf("card %v not in set", card))
	}

	s.RemoveN(card, int(n))
}

// AddAll adds the given cards to the Set.
func (s *Set) AddAll(cards Set) {
	cards.Iter(func(card Card, count uint8) {
		s.AddN(card, int(count))
	})
}

// RemoveAll removes the given cards from the set.
// RemoveAll panics if the cards are not present to be removed.
func (s *Set) RemoveAll(cards Set) {
	for card := Card(0); card <= Miss; card++ {
		if s.CountOf(card) < cards.CountOf(card) {
			panic(fmt.Errorf("cannot remove %d %v cards from set with only %d",
				cards.CountOf(card), card, s.CountOf(card)))
		}
	}

	*s -= cards
}

// Union returns a new Set with the combined counts of s and other.
func (s Set) Union(other Set) Set {
	result := s
	result.AddAll(other)
	return result
}

// String implements Stringer. Cards are rendered as a string of
// single-character labels, e.g. "RRTSD".
func (s Set) String() string {
	var sb strings.Builder
	s.Iter(func(card Card, count uint8) {
		for i := uint8(0); i < count; i++ {
			sb.WriteByte(card.Letter())
		}
	})

	return sb.String()
}

// ConsoleString returns a colorized rendering of the Set suitable for
// printing to a terminal.
func (s Set) ConsoleString() string {
	if s.IsEmpty() {
		return "\033[90m<no cards>\033[0m"
	}

	var sb strings.Builder
	s.Iter(func(card Card, count uint8) {
		sb.WriteString("\033[")
		sb.WriteString(card.Color())
		sb.WriteByte('m')
		for i := uint8(0); i < count; i++ {
			sb.WriteByte(card.Letter())
		}
	})
	sb.WriteString("\033[0m")
	return sb.String()
}
