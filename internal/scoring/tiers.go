package scoring

import (
	"math"

	"github.com/osse101/Scoreline_Go/internal/domain"
)

// Tier names
const (
	TierExactScore          = "exact_score"
	TierWinnerAndDifference = "winner_and_difference"
	TierWinner              = "winner"
	TierMiss                = "miss"
)

// Scoreline is a home/away score pair
type Scoreline struct {
	Home int
	Away int
}

func (s Scoreline) outcome() domain.Outcome { return domain.OutcomeOf(s.Home, s.Away) }
func (s Scoreline) difference() int         { return s.Home - s.Away }

// Tier is one row of the correctness table
type Tier struct {
	Name       string
	BasePoints int64
	Matches    func(predicted, actual Scoreline) bool
}

// Tiers is evaluated top to bottom; the first matching tier wins and the
// last tier always matches.
var Tiers = []Tier{
	{
		Name:       TierExactScore,
		BasePoints: 50,
		Matches:    func(p, a Scoreline) bool { return p == a },
	},
	{
		Name:       TierWinnerAndDifference,
		BasePoints: 30,
		Matches: func(p, a Scoreline) bool {
			return p.outcome() == a.outcome() && p.difference() == a.difference()
		},
	},
	{
		Name:       TierWinner,
		BasePoints: 15,
		Matches:    func(p, a Scoreline) bool { return p.outcome() == a.outcome() },
	},
	{
		Name:       TierMiss,
		BasePoints: 0,
		Matches:    func(Scoreline, Scoreline) bool { return true },
	},
}

// Verdict is the evaluation of one prediction against a final result
type Verdict struct {
	Tier                string
	BasePoints          int64
	IsCorrectScore      bool
	IsCorrectDifference bool
	IsCorrectWinner     bool
}

// Evaluate classifies a predicted scoreline against the actual one
func Evaluate(predicted, actual Scoreline) Verdict {
	v := Verdict{
		IsCorrectScore:      predicted == actual,
		IsCorrectDifference: predicted.difference() == actual.difference(),
		IsCorrectWinner:     predicted.outcome() == actual.outcome(),
	}
	for _, t := range Tiers {
		if t.Matches(predicted, actual) {
			v.Tier = t.Name
			v.BasePoints = t.BasePoints
			break
		}
	}
	return v
}

// ApplyMultiplier returns floor(base * multiplier)
func ApplyMultiplier(base int64, multiplier float64) int64 {
	if base <= 0 {
		return 0
	}
	if multiplier <= 0 {
		multiplier = 1
	}
	return int64(math.Floor(float64(base) * multiplier))
}
