package brackets

import "github.com/Dosada05/fixture-planner/models"

// Seed labels "k°p°" read as "k-th best among the p-th place finishers of every zone".

type pairing struct {
	Home string
	Away string
	Bye  bool
}

// feed is a 1-based position inside the same placement table plus the outcome taken from it.
type feed struct {
	Match   int
	Outcome models.Outcome
}

type laterMatch struct {
	Round int
	Home  feed
	Away  feed
}

type placementTable struct {
	First []pairing
	Later []laterMatch
}

type specialVariant struct {
	// zone size -> number of zones of that size
	ZoneSizes map[int]int
	ZoneLabel string
	A1        []string
	A2        []string
	Places9   placementTable
	Places17  placementTable
}

func gp(n int) feed { return feed{Match: n, Outcome: models.OutcomeWinner} }
func pp(n int) feed { return feed{Match: n, Outcome: models.OutcomeLoser} }

func byeFor(seed string) string { return "BYE (" + seed + ")" }

// standardLater: semifinals and places for winners and losers of the four openers.
var standardLater = []laterMatch{
	{Round: 2, Home: gp(1), Away: gp(2)},
	{Round: 2, Home: gp(3), Away: gp(4)},
	{Round: 2, Home: pp(1), Away: pp(2)},
	{Round: 2, Home: pp(3), Away: pp(4)},
	{Round: 3, Home: gp(5), Away: gp(6)},
	{Round: 3, Home: pp(5), Away: pp(6)},
	{Round: 3, Home: gp(7), Away: gp(8)},
	{Round: 3, Home: pp(7), Away: pp(8)},
}

// collapsedLater is used when three of the four openers are byes.
var collapsedLater = []laterMatch{
	{Round: 2, Home: gp(1), Away: gp(2)},
	{Round: 2, Home: gp(3), Away: gp(4)},
	{Round: 3, Home: pp(5), Away: pp(6)},
	{Round: 3, Home: gp(5), Away: gp(6)},
}

var (
	generalA1 = []string{"1°1°", "4°1°", "5°1°", "8°1°"}
	generalA2 = []string{"2°1°", "3°1°", "6°1°", "7°1°"}

	generalPlaces9 = placementTable{
		First: []pairing{
			{Home: "1°2°", Away: "8°2°"},
			{Home: "4°2°", Away: "5°2°"},
			{Home: "3°2°", Away: "6°2°"},
			{Home: "2°2°", Away: "7°2°"},
		},
		Later: standardLater,
	}
)

var specialVariants = map[int]specialVariant{
	21: {
		ZoneSizes: map[int]int{3: 7},
		ZoneLabel: "7×3",
		A1:        []string{"1°1°", "4°1°", "5°1°", "1°2°"},
		A2:        generalA2,
		Places9: placementTable{
			First: []pairing{
				{Home: "2°2°", Away: "2°3°"},
				{Home: "5°2°", Away: "6°2°"},
				{Home: "4°2°", Away: "7°2°"},
				{Home: "1°3°", Away: "3°2°"},
			},
			Later: standardLater,
		},
		Places17: placementTable{
			First: []pairing{
				{Home: "3°3°", Away: byeFor("3°3°"), Bye: true},
				{Home: "6°3°", Away: "7°3°"},
				{Home: "4°3°", Away: byeFor("4°3°"), Bye: true},
				{Home: byeFor("5°3°"), Away: "5°3°", Bye: true},
			},
			Later: collapsedLater,
		},
	},
	22: {
		ZoneSizes: map[int]int{3: 6, 2: 2},
		ZoneLabel: "6×3 + 2×2",
		A1:        generalA1,
		A2:        generalA2,
		Places9:   generalPlaces9,
		Places17: placementTable{
			First: []pairing{
				{Home: "1°3°", Away: byeFor("1°3°"), Bye: true},
				{Home: "4°3°", Away: "5°3°"},
				{Home: "3°3°", Away: "6°3°"},
				{Home: "2°3°", Away: byeFor("2°3°"), Bye: true},
			},
			Later: standardLater,
		},
	},
	23: {
		ZoneSizes: map[int]int{3: 7, 2: 1},
		ZoneLabel: "7×3 + 1×2",
		A1:        generalA1,
		A2:        generalA2,
		Places9:   generalPlaces9,
		Places17: placementTable{
			First: []pairing{
				{Home: "1°3°", Away: byeFor("1°3°"), Bye: true},
				{Home: "7°3°", Away: "4°3°"},
				{Home: "3°3°", Away: "5°3°"},
				{Home: "2°3°", Away: "6°3°"},
			},
			Later: standardLater,
		},
	},
	24: {
		ZoneSizes: map[int]int{3: 8},
		ZoneLabel: "8×3",
		A1:        generalA1,
		A2:        generalA2,
		Places9:   generalPlaces9,
		Places17: placementTable{
			First: []pairing{
				{Home: "1°3°", Away: "8°3°"},
				{Home: "4°3°", Away: "5°3°"},
				{Home: "3°3°", Away: "6°3°"},
				{Home: "2°3°", Away: "7°3°"},
			},
			Later: standardLater,
		},
	},
}

// SpecialTeamCounts lists the team counts the special ruleset accepts.
func SpecialTeamCounts() []int {
	return []int{21, 22, 23, 24}
}
