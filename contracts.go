package contractodds

// ContractType classifies a contract by its mission kind.
type ContractType uint8

const (
	Explore ContractType = iota
	Rescue
	Delivery
	Kill
)

var contractTypeStr = [...]string{
	"Explore",
	"Rescue",
	"Delivery",
	"Kill",
}

// String implements Stringer.
func (ct ContractType) String() string {
	return contractTypeStr[ct]
}

// Rewards is what completing a contract pays out.
type Rewards struct {
	Prestige int
	Credits  int
	Cards    int
}

// Contract is one catalog entry: a named objective with its payout,
// the requirements that must be zeroed to complete it, and the number
// of hazard dice rolled while attempting it. Hazard dice are carried
// as difficulty metadata only; they do not enter the state transition.
type Contract struct {
	Name         string
	Type         ContractType
	Rewards      Rewards
	Requirements Requirements
	HazardDice   int
}

// EasyContracts returns the catalog contracts with at most two hazard
// dice.
func EasyContracts() []Contract {
	var result []Contract
	for _, c := range Contracts {
		if c.HazardDice <= 2 {
			result = append(result, c)
		}
	}

	return result
}

// Contracts is the full contract catalog.
var Contracts = []Contract{
	{
		Name:         "Abandoned Vessel",
		Type:         Explore,
		Rewards:      Rewards{Prestige: 1, Credits: 4, Cards: 1},
		Requirements: Requirements{Reactors: 3, Damage: 3},
		HazardDice:   2,
	},
	{
		Name:         "Derelict Planet",
		Type:         Explore,
		Rewards:      Rewards{Prestige: 3, Credits: 8},
		Requirements: Requirements{Reactors: 5, Crew: 3, Thrusters: 2},
		HazardDice:   2,
	},
	{
		Name:         "Reactor Failure",
		Type:         Rescue,
		Rewards:      Rewards{Prestige: 0, Credits: 3},
		Requirements: Requirements{Shields: 1, Reactors: 1},
		HazardDice:   0,
	},
	{
		Name:         "Supernova Escape",
		Type:         Rescue,
		Rewards:      Rewards{Prestige: 1, Credits: 3},
		Requirements: Requirements{Shields: 2, Thrusters: 1},
		HazardDice:   1,
	},
	{
		Name:         "Asteroid Field",
		Type:         Explore,
		Rewards:      Rewards{Prestige: 2, Credits: 8},
		Requirements: Requirements{Reactors: 4, Crew: 3},
		HazardDice:   2,
	},
	{
		Name:         "Icarus Run",
		Type:         Rescue,
		Rewards:      Rewards{Prestige: 2, Credits: 8},
		Requirements: Requirements{Shields: 3, Thrusters: 3},
		HazardDice:   2,
	},
	{
		Name:         "Space Anomaly",
		Type:         Explore,
		Rewards:      Rewards{Prestige: 0, Credits: 3},
		Requirements: Requirements{Reactors: 1, Damage: 1},
		HazardDice:   0,
	},
	{
		Name:         "Gauntlet Run",
		Type:         Delivery,
		Rewards:      Rewards{Prestige: 3, Cards: 2},
		Requirements: Requirements{Thrusters: 4, Damage: 4},
		HazardDice:   2,
	},
	{
		Name:         "Nova Bloom",
		Type:         Explore,
		Rewards:      Rewards{Prestige: 3, Credits: 7},
		Requirements: Requirements{Reactors: 5, Shields: 3},
		HazardDice:   3,
	},
	{
		Name:         "Decoy Target",
		Type:         Rescue,
		Rewards:      Rewards{Prestige: 3, Cards: 3},
		Requirements: Requirements{Shields: 4, Thrusters: 4},
		HazardDice:   3,
	},
	{
		Name:         "Kill Slavers",
		Type:         Kill,
		Rewards:      Rewards{Prestige: 0, Credits: 4},
		Requirements: Requirements{Damage: 1, Thrusters: 1},
		HazardDice:   0,
	},
	{
		Name:         "Refugee Crisis",
		Type:         Delivery,
		Rewards:      Rewards{Prestige: 2, Credits: 7},
		Requirements: Requirements{Thrusters: 3, Crew: 2},
		HazardDice:   2,
	},
	{
		Name:         "Emergency Meds",
		Type:         Delivery,
		Rewards:      Rewards{Prestige: 3, Credits: 8},
		Requirements: Requirements{Thrusters: 4, Damage: 4, Reactors: 3},
		HazardDice:   2,
	},
	{
		Name:         "Elite Squadron",
		Type:         Kill,
		Rewards:      Rewards{Prestige: 4, Credits: 6, Cards: 1},
		Requirements: Requirements{Damage: 8, Reactors: 4, Shields: 3},
		HazardDice:   3,
	},
	{
		Name:         "Resistance Leader",
		Type:         Rescue,
		Rewards:      Rewards{Prestige: 4, Credits: 6},
		Requirements: Requirements{Shields: 4, Thrusters: 2, Crew: 2},
		HazardDice:   3,
	},
	{
		Name:         "Core World Ace",
		Type:         Kill,
		Rewards:      Rewards{Prestige: 1, Credits: 5, Cards: 1},
		Requirements: Requirements{Damage: 5},
		HazardDice:   1,
	},
	{
		Name:         "Prison Moon",
		Type:         Rescue,
		Rewards:      Rewards{Prestige: 5, Credits: 10},
		Requirements: Requirements{Shields: 5, Thrusters: 4, Damage: 2},
		HazardDice:   4,
	},
	{
		Name:         "Black Hole",
		Type:         Explore,
		Rewards:      Rewards{Prestige: 5, Credits: 12},
		Requirements: Requirements{Crew: 5, Reactors: 4, Thrusters: 4},
		HazardDice:   4,
	},
	{
		Name:         "Boarding Action",
		Type:         Explore,
		Rewards:      Rewards{Prestige: 4, Cards: 2},
		Requirements: Requirements{Crew: 4, Damage: 5},
		HazardDice:   3,
	},
	{
		Name:         "Escape Pods",
		Type:         Rescue,
		Rewards:      Rewards{Prestige: 2, Credits: 7},
		Requirements: Requirements{Shields: 3, Damage: 3},
		HazardDice:   2,
	},
	{
		Name:         "Transport Rescue",
		Type:         Rescue,
		Rewards:      Rewards{Prestige: 1, Credits: 3},
		Requirements: Requirements{Shields: 2, Crew: 1},
		HazardDice:   1,
	},
	{
		Name:         "Munitions Stockpile",
		Type:         Delivery,
		Rewards:      Rewards{Prestige: 3, Credits: 7},
		Requirements: Requirements{Thrusters: 4, Shields: 3},
		HazardDice:   2,
	},
	{
		Name:         "Bomber Screen",
		Type:         Kill,
		Rewards:      Rewards{Prestige: 3, Credits: 9},
		Requirements: Requirements{Damage: 6, Thrusters: 3},
		HazardDice:   3,
	},
	{
		Name:         "Assault on Vilonia",
		Type:         Kill,
		Rewards:      Rewards{Prestige: 3, Credits: 5, Cards: 1},
		Requirements: Requirements{Damage: 8},
		HazardDice:   2,
	},
	{
		Name:         "Scout Cruiser",
		Type:         Kill,
		Rewards:      Rewards{Prestige: 3, Credits: 6},
		Requirements: Requirements{Damage: 5, Shields: 2},
		HazardDice:   3,
	},
	{
		Name:         "First Contact",
		Type:         Explore,
		Rewards:      Rewards{Prestige: 3, Cards: 2},
		Requirements: Requirements{Reactors: 5, Shields: 3},
		HazardDice:   2,
	},
	{
		Name:         "Bounty Hunters",
		Type:         Kill,
		Rewards:      Rewards{Prestige: 3, Credits: 6},
		Requirements: Requirements{Damage: 6, Crew: 2},
		HazardDice:   3,
	},
	{
		Name:         "Martial Law",
		Type:         Rescue,
		Rewards:      Rewards{Prestige: 1, Credits: 4, Cards: 1},
		Requirements: Requirements{Shields: 2, Crew: 2},
		HazardDice:   2,
	},
	{
		Name:         "Blockade Run",
		Type:         Delivery,
		Rewards:      Rewards{Prestige: 0, Credits: 3},
		Requirements: Requirements{Thrusters: 1, Shields: 1},
		HazardDice:   0,
	},
	{
		Name:         "Probe Recovery",
		Type:         Explore,
		Rewards:      Rewards{Prestige: 1, Credits: 2, Cards: 1},
		Requirements: Requirements{Reactors: 3, Thrusters: 2},
		HazardDice:   1,
	},
	{
		Name:         "Envoy in Distress",
		Type:         Rescue,
		Rewards:      Rewards{Prestige: 1, Credits: 2, Cards: 1},
		Requirements: Requirements{Shields: 2, Damage: 2},
		HazardDice:   2,
	},
	{
		Name:         "Stim Run",
		Type:         Delivery,
		Rewards:      Rewards{Prestige: 1, Credits: 2},
		Requirements: Requirements{Thrusters: 2, Reactors: 1},
		HazardDice:   1,
	},
	{
		Name:         "Proof of Life",
		Type:         Delivery,
		Rewards:      Rewards{Prestige: 3, Credits: 4},
		Requirements: Requirements{Thrusters: 4, Reactors: 4},
		HazardDice:   2,
	},
	{
		Name:         "Pirate Treasure",
		Type:         Explore,
		Rewards:      Rewards{Prestige: 1, Credits: 2},
		Requirements: Requirements{Reactors: 2, Shields: 1},
		HazardDice:   1,
	},
	{
		Name:         "Ancient Ruins",
		Type:         Explore,
		Rewards:      Rewards{Prestige: 2, Credits: 7},
		Requirements: Requirements{Reactors: 4, Thrusters: 4},
		HazardDice:   2,
	},
	{
		Name:         "Rival Pirate Gang",
		Type:         Kill,
		Rewards:      Rewards{Prestige: 1, Credits: 3},
		Requirements: Requirements{Damage: 2, Shields: 1},
		HazardDice:   1,
	},
	{
		Name:         "Distress Beacon",
		Type:         Explore,
		Rewards:      Rewards{Prestige: 1, Credits: 3},
		Requirements: Requirements{Reactors: 3, Crew: 1},
		HazardDice:   1,
	},
	{
		Name:         "Fuel Shortage",
		Type:         Delivery,
		Rewards:      Rewards{Prestige: 1, Credits: 3},
		Requirements: Requirements{Thrusters: 2, Damage: 2},
		HazardDice:   1,
	},
	{
		Name:         "Negotiation Insurance",
		Type:         Delivery,
		Rewards:      Rewards{Prestige: 1, Credits: 2, Cards: 1},
		Requirements: Requirements{Thrusters: 3, Damage: 1},
		HazardDice:   2,
	},
	{
		Name:         "Focused Fire",
		Type:         Kill,
		Rewards:      Rewards{Prestige: 3, Cards: 3},
		Requirements: Requirements{Damage: 6, Reactors: 4},
		HazardDice:   3,
	},
	{
		Name:         "Claim Bounty",
		Type:         Kill,
		Rewards:      Rewards{Prestige: 1, Credits: 3},
		Requirements: Requirements{Damage: 3, Reactors: 2},
		HazardDice:   1,
	},
	{
		Name:         "Royal Cargo",
		Type:         Delivery,
		Rewards:      Rewards{Prestige: 5, Credits: 10},
		Requirements: Requirements{Thrusters: 5, Damage: 5, Crew: 2},
		HazardDice:   4,
	},
	{
		Name:         "Admiral's Flagship",
		Type:         Kill,
		Rewards:      Rewards{Prestige: 5, Credits: 11, Cards: 1},
		Requirements: Requirements{Damage: 8, Shields: 5, Reactors: 5},
		HazardDice:   4,
	},
	{
		Name:         "Escort Duty",
		Type:         Delivery,
		Rewards:      Rewards{Prestige: 1, Credits: 2, Cards: 1},
		Requirements: Requirements{Thrusters: 3, Crew: 1},
		HazardDice:   1,
	},
	{
		Name:         "Cryogenic Pods",
		Type:         Rescue,
		Rewards:      Rewards{Prestige: 3, Credits: 7},
		Requirements: Requirements{Shields: 4, Reactors: 4},
		HazardDice:   3,
	},
}
