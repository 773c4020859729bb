package champion

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/osse101/Scoreline_Go/internal/concurrency"
	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/event"
	"github.com/osse101/Scoreline_Go/internal/ledger"
	"github.com/osse101/Scoreline_Go/internal/logger"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

// Service defines the interface for season champion predictions
type Service interface {
	// Predict places a champion wager and debits it in the same transaction
	Predict(ctx context.Context, userID string, req domain.ChampionPredictionRequest) (*domain.ChampionPrediction, error)
	// ResolveSeason confirms the champion and settles every pending wager
	ResolveSeason(ctx context.Context, seasonID, championTeamID int64) (*domain.ChampionResolution, error)
	ListByUser(ctx context.Context, userID string) ([]domain.ChampionPrediction, error)
	GetSeasonChampion(ctx context.Context, seasonID int64) (*domain.SeasonChampion, error)
}

// EventPublisher defines the interface for publishing events with retry
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

type service struct {
	repo      repository.Champion
	locks     *concurrency.LockManager
	publisher EventPublisher
	now       func() time.Time
}

// NewService creates a new champion prediction service
func NewService(repo repository.Champion, locks *concurrency.LockManager, publisher EventPublisher) Service {
	return &service{
		repo:      repo,
		locks:     locks,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func validateRequest(req domain.ChampionPredictionRequest) error {
	if req.ConfidenceLevel < domain.MinConfidenceLevel || req.ConfidenceLevel > domain.MaxConfidenceLevel {
		return fmt.Errorf("%w: confidence must be between %d and %d", domain.ErrInvalidInput, domain.MinConfidenceLevel, domain.MaxConfidenceLevel)
	}
	if req.PointsWagered < domain.MinChampionWager {
		return fmt.Errorf("%w: wager must be at least %d", domain.ErrInvalidInput, domain.MinChampionWager)
	}
	if req.SeasonID <= 0 || req.TeamID <= 0 {
		return fmt.Errorf("%w: season and team are required", domain.ErrInvalidInput)
	}
	return nil
}

func (s *service) Predict(ctx context.Context, userID string, req domain.ChampionPredictionRequest) (*domain.ChampionPrediction, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	// Every check below runs under the user row lock
	if _, err := tx.GetUserForUpdate(ctx, userID); err != nil {
		return nil, fmt.Errorf(ErrMsgGetUserFailed, err)
	}

	existing, err := tx.GetChampionPrediction(ctx, userID, req.SeasonID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLookupFailed, err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: champion prediction %d", domain.ErrAlreadyPredicted, existing.ID)
	}

	season, err := tx.GetSeason(ctx, req.SeasonID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSeasonFailed, err)
	}
	if season.IsClosed(s.now()) {
		return nil, fmt.Errorf("%w: season %d ended %s", domain.ErrSeasonClosed, season.ID, season.EndDate.Format(time.DateOnly))
	}
	if !season.HasTeam(req.TeamID) {
		return nil, fmt.Errorf("%w: team %d", domain.ErrTeamNotInSeason, req.TeamID)
	}

	balance, err := tx.SumTransactions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSumFailed, err)
	}
	if balance < req.PointsWagered {
		return nil, fmt.Errorf("%w: balance %d, wager %d", domain.ErrInsufficientPoints, balance, req.PointsWagered)
	}

	cp := &domain.ChampionPrediction{
		UserID:          userID,
		SeasonID:        req.SeasonID,
		PredictedTeamID: req.TeamID,
		ConfidenceLevel: req.ConfidenceLevel,
		PointsWagered:   req.PointsWagered,
		Status:          domain.ChampionStatusPending,
	}
	if err := tx.CreateChampionPrediction(ctx, cp); err != nil {
		if errors.Is(err, domain.ErrAlreadyPredicted) {
			return nil, err
		}
		return nil, fmt.Errorf(ErrMsgCreateFailed, err)
	}

	if _, err := ledger.Post(ctx, tx, domain.LedgerEntry{
		UserID:      userID,
		Type:        domain.TxChampionPrediction,
		Amount:      -req.PointsWagered,
		Description: fmt.Sprintf(WagerDescriptionFormat, req.TeamID, req.SeasonID),
		Reference:   domain.ChampionPredictionReference(cp.ID),
	}); err != nil {
		return nil, fmt.Errorf(ErrMsgWagerFailed, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgChampionPredicted,
		"champion_prediction_id", cp.ID,
		"user_id", userID,
		"season_id", req.SeasonID,
		"team_id", req.TeamID,
		"wager", req.PointsWagered)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewChampionPredictedEvent(cp))
	}
	return cp, nil
}

func (s *service) ResolveSeason(ctx context.Context, seasonID, championTeamID int64) (*domain.ChampionResolution, error) {
	log := logger.FromContext(ctx)

	lock := s.locks.GetLock(concurrency.SeasonKey(seasonID))
	lock.Lock()
	defer lock.Unlock()

	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgBeginTxFailed, err)
	}
	defer repository.SafeRollback(ctx, tx)

	season, err := tx.GetSeason(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetSeasonFailed, err)
	}
	if !season.HasTeam(championTeamID) {
		return nil, fmt.Errorf("%w: team %d", domain.ErrTeamNotInSeason, championTeamID)
	}

	now := s.now()
	confirmed, err := tx.GetSeasonChampionForUpdate(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgConfirmFailed, err)
	}
	switch {
	case confirmed == nil:
		if err := tx.InsertSeasonChampion(ctx, &domain.SeasonChampion{
			SeasonID:       seasonID,
			ChampionTeamID: championTeamID,
			ConfirmedAt:    now,
		}); err != nil {
			return nil, fmt.Errorf(ErrMsgConfirmFailed, err)
		}
	case confirmed.ChampionTeamID != championTeamID:
		return nil, fmt.Errorf("%w: season %d champion is team %d", domain.ErrAlreadyResolved, seasonID, confirmed.ChampionTeamID)
	default:
		log.Info(LogMsgResolutionResumed, "season_id", seasonID)
	}

	pending, err := tx.ListPendingChampionPredictionsForUpdate(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadPendingFailed, err)
	}

	result := &domain.ChampionResolution{SeasonID: seasonID, ChampionTeamID: championTeamID}
	for i := range pending {
		cp := &pending[i]
		paid, err := s.settle(ctx, tx, cp, championTeamID, now)
		if err != nil {
			log.Warn(LogMsgSettleFailed, "season_id", seasonID, "champion_prediction_id", cp.ID, "user_id", cp.UserID, "error", err)
			result.Failures = append(result.Failures, domain.ScoringFailure{
				PredictionID: cp.ID,
				UserID:       cp.UserID,
				Reason:       err.Error(),
			})
			continue
		}
		if cp.PredictedTeamID == championTeamID {
			result.Won++
			result.PointsPaid += paid
		} else {
			result.Lost++
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf(ErrMsgCommitTxFailed, err)
	}

	log.Info(LogMsgSeasonResolved,
		"season_id", seasonID,
		"champion_team_id", championTeamID,
		"won", result.Won,
		"lost", result.Lost,
		"failed", len(result.Failures),
		"points_paid", result.PointsPaid)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewSeasonChampionConfirmedEvent(result))
	}
	return result, nil
}

// settle marks one wager won or lost and pays winners, inside a savepoint
func (s *service) settle(ctx context.Context, tx repository.ChampionTx, cp *domain.ChampionPrediction, championTeamID int64, at time.Time) (int64, error) {
	sp, err := tx.Savepoint(ctx)
	if err != nil {
		return 0, fmt.Errorf(ErrMsgSavepointFailed, err)
	}
	defer repository.SafeRollback(ctx, sp)

	status := domain.ChampionStatusLost
	var payout int64
	if cp.PredictedTeamID == championTeamID {
		status = domain.ChampionStatusWon
		payout = Payout(cp.PointsWagered, cp.ConfidenceLevel)
	}

	if err := sp.SettleChampionPrediction(ctx, cp.ID, status, payout, at); err != nil {
		return 0, fmt.Errorf(ErrMsgSettleFailed, err)
	}

	if payout > 0 {
		if _, err := ledger.Post(ctx, sp, domain.LedgerEntry{
			UserID:      cp.UserID,
			Type:        domain.TxChampionPrediction,
			Amount:      payout,
			Description: fmt.Sprintf(PayoutDescriptionFormat, cp.ID),
			Reference:   domain.ChampionPredictionReference(cp.ID),
		}); err != nil {
			return 0, fmt.Errorf(ErrMsgPayoutFailed, err)
		}
	}

	if err := sp.Commit(ctx); err != nil {
		return 0, err
	}
	return payout, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]domain.ChampionPrediction, error) {
	rows, err := s.repo.ListUserChampionPredictions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListFailed, err)
	}
	if rows == nil {
		rows = []domain.ChampionPrediction{}
	}
	return rows, nil
}

func (s *service) GetSeasonChampion(ctx context.Context, seasonID int64) (*domain.SeasonChampion, error) {
	if _, err := s.repo.GetSeason(ctx, seasonID); err != nil {
		return nil, fmt.Errorf(ErrMsgGetSeasonFailed, err)
	}
	sc, err := s.repo.GetSeasonChampion(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetChampionFailed, err)
	}
	return sc, nil
}
