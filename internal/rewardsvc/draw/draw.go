package draw

import (
	crand "crypto/rand"
	"errors"
	"math/big"
)

// SpinCost is the fixed price of one roulette spin, in stars.
const SpinCost = 25

var (
	ErrEmptyTable     = errors.New("empty draw table")
	errInvalidWeights = errors.New("invalid weight total")
)

// Prize is one roulette outcome. Weights are relative and do not need
// to sum to 100.
type Prize struct {
	Name   string `json:"name"`
	Value  int64  `json:"value"`
	Emoji  string `json:"emoji"`
	Weight int    `json:"-"`
}

// Bonus is one daily-bonus outcome.
type Bonus struct {
	Stars  int64
	Weight int
}

// RouletteTable is the fixed prize table for the roulette draw.
var RouletteTable = []Prize{
	{Name: "Bear", Value: 15, Emoji: "🧸", Weight: 35},
	{Name: "Heart", Value: 15, Emoji: "💖", Weight: 35},
	{Name: "Rocket", Value: 50, Emoji: "🚀", Weight: 10},
	{Name: "Cake", Value: 50, Emoji: "🎂", Weight: 10},
	{Name: "Cup", Value: 100, Emoji: "🏆", Weight: 5},
	{Name: "Ring", Value: 100, Emoji: "💍", Weight: 5},
}

// DailyBonusTable is the fixed star table for the daily bonus draw.
var DailyBonusTable = []Bonus{
	{Stars: 5, Weight: 70},
	{Stars: 10, Weight: 15},
	{Stars: 25, Weight: 10},
	{Stars: 50, Weight: 5},
}

var randomInt = secureRandomInt

// Roulette draws one prize from RouletteTable.
func Roulette() (Prize, error) {
	weights := make([]int, len(RouletteTable))
	for i, p := range RouletteTable {
		weights[i] = p.Weight
	}

	idx, err := pickIndex(weights)
	if err != nil {
		return Prize{}, err
	}
	return RouletteTable[idx], nil
}

// DailyBonus draws one star amount from DailyBonusTable.
func DailyBonus() (int64, error) {
	weights := make([]int, len(DailyBonusTable))
	for i, b := range DailyBonusTable {
		weights[i] = b.Weight
	}

	idx, err := pickIndex(weights)
	if err != nil {
		return 0, err
	}
	return DailyBonusTable[idx].Stars, nil
}

// pickIndex draws uniformly over the cumulative weight sum and returns
// the first index whose cumulative boundary is reached. Non-positive
// weights are rejected; the fixed tables above never carry them.
func pickIndex(weights []int) (int, error) {
	if len(weights) == 0 {
		return 0, ErrEmptyTable
	}

	total := 0
	for _, w := range weights {
		if w <= 0 {
			return 0, errInvalidWeights
		}
		total += w
	}

	picked, err := randomInt(total)
	if err != nil {
		return 0, err
	}

	target := picked + 1 // 1-based boundary
	cum := 0
	for i, w := range weights {
		cum += w
		if cum >= target {
			return i, nil
		}
	}
	return 0, errInvalidWeights
}

func secureRandomInt(max int) (int, error) {
	if max <= 0 {
		return 0, errInvalidWeights
	}

	n, err := crand.Int(crand.Reader, big.NewInt(int64(max)))
	if err != nil {
		return 0, err
	}
	return int(n.Int64()), nil
}
