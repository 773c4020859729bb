package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/Scoreline_Go/internal/database"
)

var testDBConnString string

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testDBConnString, terminate = setupContainer(context.Background())
	}

	code := m.Run()

	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupContainer(ctx context.Context) (string, func()) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupContainer: %v\n", r)
		}
	}()

	pgContainer, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return "", func() {}
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		fmt.Printf("WARNING: Failed to get connection string: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	pool, err := database.NewPool(connStr, 5, time.Minute, 5*time.Minute)
	if err == nil {
		_, err = database.Migrate(ctx, pool)
		pool.Close()
	}
	if err != nil {
		fmt.Printf("WARNING: Failed to migrate test database: %v\n", err)
		_ = pgContainer.Terminate(ctx)
		return "", func() {}
	}

	return connStr, func() {
		if err := pgContainer.Terminate(ctx); err != nil {
			fmt.Printf("Failed to terminate container: %v\n", err)
		}
	}
}

// setupIntegrationTest returns a pool on a freshly truncated database
func setupIntegrationTest(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testDBConnString == "" {
		t.Skip("Skipping integration test: database not available")
	}

	pool, err := database.NewPool(testDBConnString, 10, time.Minute, 5*time.Minute)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	// point_transactions rejects DELETE, TRUNCATE bypasses row triggers
	_, err = pool.Exec(context.Background(), `
		TRUNCATE event_log, leaderboard_entries, season_champions, champion_predictions, point_transactions,
			predictions, matches, rounds, season_teams, seasons, teams, users
		RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
	return pool
}

// fixture seeds the rows a provider would own
type fixture struct {
	t    *testing.T
	pool *pgxpool.Pool
}

func (f fixture) user(name string) string {
	f.t.Helper()
	var id string
	err := f.pool.QueryRow(context.Background(),
		`INSERT INTO users (username) VALUES ($1) RETURNING user_id::text`, name).Scan(&id)
	require.NoError(f.t, err)
	return id
}

func (f fixture) season(name string, start, end time.Time, teams ...string) (int64, []int64) {
	f.t.Helper()
	ctx := context.Background()
	var seasonID int64
	err := f.pool.QueryRow(ctx,
		`INSERT INTO seasons (name, start_date, end_date) VALUES ($1, $2, $3) RETURNING season_id`,
		name, start, end).Scan(&seasonID)
	require.NoError(f.t, err)

	ids := make([]int64, 0, len(teams))
	for _, team := range teams {
		var teamID int64
		err := f.pool.QueryRow(ctx,
			`INSERT INTO teams (name) VALUES ($1) RETURNING team_id`, team).Scan(&teamID)
		require.NoError(f.t, err)
		_, err = f.pool.Exec(ctx,
			`INSERT INTO season_teams (season_id, team_id) VALUES ($1, $2)`, seasonID, teamID)
		require.NoError(f.t, err)
		ids = append(ids, teamID)
	}
	return seasonID, ids
}

func (f fixture) round(seasonID int64, name string, start, end time.Time) int64 {
	f.t.Helper()
	var id int64
	err := f.pool.QueryRow(context.Background(), `
		INSERT INTO rounds (season_id, name, start_date, end_date)
		VALUES ($1, $2, $3, $4) RETURNING round_id`, seasonID, name, start, end).Scan(&id)
	require.NoError(f.t, err)
	return id
}

func (f fixture) match(seasonID, roundID, home, away int64, lockTime time.Time) int64 {
	f.t.Helper()
	var id int64
	err := f.pool.QueryRow(context.Background(), `
		INSERT INTO matches (season_id, round_id, home_team_id, away_team_id, lock_time, kickoff_at)
		VALUES ($1, $2, $3, $4, $5, $5) RETURNING match_id`,
		seasonID, roundID, home, away, lockTime).Scan(&id)
	require.NoError(f.t, err)
	return id
}

func (f fixture) finish(matchID int64, home, away int) {
	f.t.Helper()
	_, err := f.pool.Exec(context.Background(), `
		UPDATE matches SET status = 'finished', home_score = $2, away_score = $3
		WHERE match_id = $1`, matchID, home, away)
	require.NoError(f.t, err)
}
