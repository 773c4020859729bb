package leaderboard

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/Scoreline_Go/internal/concurrency"
	"github.com/osse101/Scoreline_Go/internal/domain"
	"github.com/osse101/Scoreline_Go/internal/event"
	"github.com/osse101/Scoreline_Go/internal/logger"
	"github.com/osse101/Scoreline_Go/internal/repository"
)

// Service defines the interface for leaderboard aggregation and reads
type Service interface {
	// Recompute rebuilds and persists one scope's standings
	Recompute(ctx context.Context, scope domain.Scope) ([]domain.LeaderboardEntry, error)
	// RecomputeActive rebuilds all-time plus every season and round current at now
	RecomputeActive(ctx context.Context) ([]domain.Scope, error)
	GetLeaderboard(ctx context.Context, scope domain.Scope, page domain.Page) (*domain.LeaderboardPage, error)
	GetUserStanding(ctx context.Context, scope domain.Scope, userID string) (*domain.LeaderboardEntry, error)

	HandleMatchScored(ctx context.Context, evt event.Event) error
	HandleChampionResolved(ctx context.Context, evt event.Event) error
}

// EventPublisher defines the interface for publishing events with retry
type EventPublisher interface {
	PublishWithRetry(ctx context.Context, evt event.Event)
}

// Options configures the page cache and current-round resolution
type Options struct {
	CacheSize int
	CacheTTL  time.Duration
	// CurrentRoundOverride pins the current round when non-zero
	CurrentRoundOverride int64
}

type service struct {
	repo      repository.Leaderboard
	locks     *concurrency.LockManager
	publisher EventPublisher
	cache     *pageCache
	override  int64
	now       func() time.Time
}

// NewService creates a new leaderboard service
func NewService(repo repository.Leaderboard, locks *concurrency.LockManager, publisher EventPublisher, opts Options) Service {
	return &service{
		repo:      repo,
		locks:     locks,
		publisher: publisher,
		cache:     newPageCache(opts.CacheSize, opts.CacheTTL),
		override:  opts.CurrentRoundOverride,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// window returns the ledger date bounds for scope
func (s *service) window(ctx context.Context, scope domain.Scope) (domain.ScopeWindow, error) {
	switch scope.Kind {
	case domain.ScopeSeason:
		season, err := s.repo.GetSeason(ctx, scope.ID)
		if err != nil {
			return domain.ScopeWindow{}, fmt.Errorf(ErrMsgGetSeasonFailed, err)
		}
		return domain.ScopeWindow{From: &season.StartDate, To: &season.EndDate}, nil
	case domain.ScopeRound:
		round, err := s.repo.GetRound(ctx, scope.ID)
		if err != nil {
			return domain.ScopeWindow{}, fmt.Errorf(ErrMsgGetRoundFailed, err)
		}
		return domain.ScopeWindow{From: &round.StartDate, To: &round.EndDate}, nil
	}
	return domain.ScopeWindow{}, nil
}

func (s *service) Recompute(ctx context.Context, scope domain.Scope) ([]domain.LeaderboardEntry, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}

	lock := s.locks.GetLock(concurrency.ScopeKey(scope.String()))
	lock.Lock()
	defer lock.Unlock()

	start := time.Now()

	var (
		entries []domain.LeaderboardEntry
		err     error
	)
	if scope.IsChampion() {
		if _, err := s.repo.GetSeason(ctx, scope.ID); err != nil {
			return nil, fmt.Errorf(ErrMsgGetSeasonFailed, err)
		}
		entries, err = s.repo.AggregateChampionStandings(ctx, scope.ID)
	} else {
		var w domain.ScopeWindow
		if w, err = s.window(ctx, scope); err != nil {
			return nil, err
		}
		entries, err = s.repo.AggregateStandings(ctx, scope, w)
	}
	if err != nil {
		return nil, fmt.Errorf(ErrMsgAggregateFailed, scope, err)
	}

	Rank(entries, scope.IsChampion(), s.now())

	if err := s.repo.ReplaceEntries(ctx, scope, entries); err != nil {
		return nil, fmt.Errorf(ErrMsgReplaceFailed, scope, err)
	}
	s.cache.Clear()

	took := time.Since(start)
	logger.FromContext(ctx).Info(LogMsgRecomputed, "scope", scope.String(), "entries", len(entries), "duration", took)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewLeaderboardRecomputedEvent(scope, len(entries), took))
	}
	return entries, nil
}

// activeScopes lists all-time plus the seasons and rounds current at now
func (s *service) activeScopes(ctx context.Context, now time.Time) ([]domain.Scope, error) {
	scopes := []domain.Scope{domain.AllTimeScope()}

	seasons, err := s.repo.ListSeasons(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListScopesFailed, err)
	}
	for i := range seasons {
		if seasons[i].IsCurrent(now) {
			scopes = append(scopes, domain.SeasonScope(seasons[i].ID))
		}
	}

	if s.override > 0 {
		logger.FromContext(ctx).Debug(LogMsgRoundOverride, "round_id", s.override)
		return append(scopes, domain.RoundScope(s.override)), nil
	}

	rounds, err := s.repo.ListRounds(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListScopesFailed, err)
	}
	for i := range rounds {
		if rounds[i].IsCurrent(now) {
			scopes = append(scopes, domain.RoundScope(rounds[i].ID))
		}
	}
	return scopes, nil
}

func (s *service) RecomputeActive(ctx context.Context) ([]domain.Scope, error) {
	log := logger.FromContext(ctx)

	scopes, err := s.activeScopes(ctx, s.now())
	if err != nil {
		return nil, err
	}

	done := make([]domain.Scope, 0, len(scopes))
	for _, scope := range scopes {
		if err := ctx.Err(); err != nil {
			return done, err
		}
		if _, err := s.Recompute(ctx, scope); err != nil {
			log.Error(LogMsgRecomputeFailed, "scope", scope.String(), "error", err)
			continue
		}
		done = append(done, scope)
	}

	log.Info(LogMsgActiveRecomputeDone, "scopes", len(done), "attempted", len(scopes))
	return done, nil
}

func (s *service) GetLeaderboard(ctx context.Context, scope domain.Scope, page domain.Page) (*domain.LeaderboardPage, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	page = page.Normalize()

	if cached, ok := s.cache.Get(scope, page); ok {
		return cached, nil
	}

	entries, total, err := s.repo.GetEntries(ctx, scope, page)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEntriesFailed, scope, err)
	}
	if entries == nil {
		entries = []domain.LeaderboardEntry{}
	}

	result := &domain.LeaderboardPage{
		Scope:   scope,
		Entries: entries,
		Total:   total,
		Limit:   page.Limit,
		Offset:  page.Offset,
	}
	s.cache.Set(scope, page, result)
	return result, nil
}

func (s *service) GetUserStanding(ctx context.Context, scope domain.Scope, userID string) (*domain.LeaderboardEntry, error) {
	if err := scope.Validate(); err != nil {
		return nil, err
	}
	entry, err := s.repo.GetUserEntry(ctx, scope, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetEntriesFailed, scope, err)
	}
	return entry, nil
}

// recomputeAll runs every scope and returns the first failure after trying all
func (s *service) recomputeAll(ctx context.Context, scopes ...domain.Scope) error {
	var firstErr error
	for _, scope := range scopes {
		if _, err := s.Recompute(ctx, scope); err != nil {
			logger.FromContext(ctx).Error(LogMsgRecomputeFailed, "scope", scope.String(), "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// HandleMatchScored refreshes the scopes a scored match contributes to
func (s *service) HandleMatchScored(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.MatchScoredPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodePayload, evt.Type, err)
	}
	if payload.Scored == 0 {
		return nil
	}

	scopes := []domain.Scope{domain.AllTimeScope()}
	if payload.SeasonID > 0 {
		scopes = append(scopes, domain.SeasonScope(payload.SeasonID))
	}
	if payload.RoundID > 0 {
		scopes = append(scopes, domain.RoundScope(payload.RoundID))
	}
	return s.recomputeAll(ctx, scopes...)
}

// HandleChampionResolved refreshes the champion board and the point boards
// the payouts landed in
func (s *service) HandleChampionResolved(ctx context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[event.SeasonChampionConfirmedPayloadV1](evt.Payload)
	if err != nil {
		return fmt.Errorf(ErrMsgDecodePayload, evt.Type, err)
	}
	return s.recomputeAll(ctx,
		domain.ChampionScope(payload.SeasonID),
		domain.SeasonScope(payload.SeasonID),
		domain.AllTimeScope(),
	)
}
