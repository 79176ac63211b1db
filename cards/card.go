package cards

// Card represents one type of card from the contract deck.
type Card uint8

const (
	Reactor Card = iota
	Thruster
	Shield
	Damage
	Miss // Must be last since it is used to size Set.
)

var cardStr = [...]string{
	"Reactor",
	"Thruster",
	"Shield",
	"Damage",
	"Miss",
}

// Single-character labels used when rendering hands and piles.
var cardLetter = [...]byte{'R', 'T', 'S', 'D', 'M'}

// ANSI color codes used by ConsoleString. Cosmetic only.
var cardColor = [...]string{"96", "93", "92", "33", "37"}

// String implements Stringer.
func (c Card) String() string {
	return cardStr[c]
}

// Letter returns the single-character display label for the card.
func (c Card) Letter() byte {
	return cardLetter[c]
}

// Color returns the ANSI color escape code for console printing.
func (c Card) Color() string {
	return cardColor[c]
}

// The number of distinct types of Cards.
const NumTypes = len(cardStr)
