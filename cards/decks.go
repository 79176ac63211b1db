package cards

// DefaultDeck is the starting contract deck:
// 3 Reactor, 2 Thruster, 2 Shield, 2 Damage, 1 Miss.
var DefaultDeck = NewSetFromCards([]Card{
	Reactor, Reactor, Reactor,
	Thruster, Thruster,
	Shield, Shield,
	Damage, Damage,
	Miss,
})
