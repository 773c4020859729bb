package streak

import (
	"context"
	"fmt"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/logger"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

// Tier maps a minimum streak length to a points multiplier
type Tier struct {
	MinStreak  int
	Multiplier float64
}

// Tiers is ordered highest first; the first tier whose MinStreak is met wins.
var Tiers = []Tier{
	{MinStreak: 10, Multiplier: 3.0},
	{MinStreak: 5, Multiplier: 2.0},
	{MinStreak: 3, Multiplier: 1.5},
}

// BaseMultiplier applies below the lowest tier
const BaseMultiplier = 1.0

// MultiplierFor returns the multiplier for a current streak length
func MultiplierFor(streak int) float64 {
	for _, t := range Tiers {
		if streak >= t.MinStreak {
			return t.Multiplier
		}
	}
	return BaseMultiplier
}

// State is a user's streak counters
type State struct {
	Current int `json:"current_streak"`
	Max     int `json:"max_streak"`
}

// Apply advances the state by one scored prediction. Any points extend the
// streak; zero points reset it.
func (s State) Apply(earned bool) State {
	if earned {
		s.Current++
	} else {
		s.Current = 0
	}
	if s.Current > s.Max {
		s.Max = s.Current
	}
	return s
}

// Multiplier is the multiplier the next prediction would snapshot
func (s State) Multiplier() float64 {
	return MultiplierFor(s.Current)
}

// Replay rebuilds a state from scored outcomes in scoring order
func Replay(outcomes []domain.ScoredOutcome) State {
	var s State
	for _, o := range outcomes {
		s = s.Apply(o.PointsEarned > 0)
	}
	return s
}

// Tracker persists streak transitions onto the cached user fields
type Tracker struct{}

// NewTracker creates a Tracker
func NewTracker() *Tracker {
	return &Tracker{}
}

// OnPredictionScored records one scored prediction for userID inside tx and
// returns the multiplier that the user's next submission will snapshot.
func (t *Tracker) OnPredictionScored(ctx context.Context, tx repository.UserTx, userID string, earned bool) (float64, error) {
	user, err := tx.GetUserForUpdate(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgLoadUserFailed, err)
	}

	next := State{Current: user.CurrentStreak, Max: user.MaxStreak}.Apply(earned)
	if err := tx.UpdateUserStreak(ctx, userID, next.Current, next.Max); err != nil {
		return 0, fmt.Errorf(ErrMsgUpdateStreakFailed, err)
	}

	logger.FromContext(ctx).Debug(LogMsgStreakUpdated,
		"user_id", userID,
		"earned", earned,
		"current_streak", next.Current,
		"max_streak", next.Max)

	return next.Multiplier(), nil
}
