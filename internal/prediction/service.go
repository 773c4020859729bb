package prediction

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/event"
	"github.com/osse101/Scoreline_Go/internal/logger"
	"github.com/osse101/Scoreline_Go/internal/repository"
	"github.com/osse101/Scoreline_Go/internal/streak"
)

// Service defines the interface for match prediction operations
type Service interface {
	// Submit records a new prediction while the match is still open
	Submit(ctx context.Context, userID string, matchID int64, home, away int) (*domain.Prediction, error)
	// Update overwrites the scoreline of the caller's own, unlocked, unscored prediction
	Update(ctx context.Context, callerID string, predictionID int64, home, away int) (*domain.Prediction, error)
	Get(ctx context.Context, predictionID int64) (*domain.Prediction, error)
	ListByUser(ctx context.Context, userID string, page domain.Page) ([]domain.Prediction, int, error)
}

// EventPublisher defines the interface for publishing events with retry
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

type service struct {
	repo      repository.Prediction
	publisher EventPublisher
	now       func() time.Time
}

// NewService creates a new prediction service
func NewService(repo repository.Prediction, publisher EventPublisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func validateScores(home, away int) error {
	if home < 0 || away < 0 {
		return fmt.Errorf(ErrMsgNegativeScore, domain.ErrInvalidInput, home, away)
	}
	return nil
}

func (s *service) Submit(ctx context.Context, userID string, matchID int64, home, away int) (*domain.Prediction, error) {
	log := logger.FromContext(ctx)

	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if err := validateScores(home, away); err != nil {
		return nil, err
	}

	match, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetMatchFailed, err)
	}
	if match.IsLocked(s.now()) {
		log.Debug(LogMsgSubmitRejected, "user_id", userID, "match_id", matchID, "reason", domain.ErrMsgMatchLocked)
		return nil, fmt.Errorf("%w: match %d", domain.ErrMatchLocked, matchID)
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetUserFailed, err)
	}

	existing, err := s.repo.GetPredictionByUserMatch(ctx, userID, matchID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPredictionFailed, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: prediction %d", domain.ErrAlreadyPredicted, existing.ID)
	}

	p := &domain.Prediction{
		UserID:             userID,
		MatchID:            matchID,
		PredictedHomeScore: home,
		PredictedAwayScore: away,
		PredictedOutcome:   domain.OutcomeOf(home, away),
		StreakMultiplier:   streak.MultiplierFor(user.CurrentStreak),
	}

	// The unique (user, match) constraint catches a concurrent duplicate
	if err := s.repo.CreatePrediction(ctx, p); err != nil {
		if errors.Is(err, domain.ErrAlreadyPredicted) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgCreateFailed, err)
	}

	log.Info(LogMsgPredictionSubmitted,
		"prediction_id", p.ID,
		"user_id", userID,
		"match_id", matchID,
		"multiplier", p.StreakMultiplier)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewPredictionEvent(event.PredictionSubmitted, p))
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, callerID string, predictionID int64, home, away int) (*domain.Prediction, error) {
	if err := validateScores(home, away); err != nil {
		return nil, err
	}

	p, err := s.repo.GetPrediction(ctx, predictionID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPredictionFailed, err)
	}
	if p.UserID != callerID {
		return nil, domain.ErrUnauthorized
	}

	match, err := s.repo.GetMatch(ctx, p.MatchID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetMatchFailed, err)
	}
	now := s.now()
	if match.IsLocked(now) {
		return nil, fmt.Errorf("%w: match %d", domain.ErrMatchLocked, p.MatchID)
	}
	if p.IsCalculated() {
		return nil, domain.ErrAlreadyCalculated
	}

	outcome := domain.OutcomeOf(home, away)
	if err := s.repo.UpdatePredictionScores(ctx, predictionID, home, away, outcome, now); err != nil {
		if errors.Is(err, domain.ErrAlreadyCalculated) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgUpdateFailed, err)
	}

	p.PredictedHomeScore = home
	p.PredictedAwayScore = away
	p.PredictedOutcome = outcome
	p.UpdatedAt = now

	logger.FromContext(ctx).Info(LogMsgPredictionUpdated, "prediction_id", predictionID, "user_id", callerID)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewPredictionEvent(event.PredictionUpdated, p))
	}
	return p, nil
}

func (s *service) Get(ctx context.Context, predictionID int64) (*domain.Prediction, error) {
	p, err := s.repo.GetPrediction(ctx, predictionID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetPredictionFailed, err)
	}
	return p, nil
}

func (s *service) ListByUser(ctx context.Context, userID string, page domain.Page) ([]domain.Prediction, int, error) {
	page = page.Normalize()
	if _, err := s.repo.GetUser(ctx, userID); err != nil {
		return nil, 0, fmt.Errorf(ErrMsgGetUserFailed, err)
	}
	rows, total, err := s.repo.ListUserPredictions(ctx, userID, page)
	if err != nil {
		return nil, 0, fmt.Errorf(ErrMsgListFailed, err)
	}
	if rows == nil {
		rows = []domain.Prediction{}
	}
	return rows, total, nil
}
