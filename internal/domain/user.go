package domain

import "time"

// User is the core's view of an account. PointsBalance, CurrentStreak and
// MaxStreak are cached read-model fields; the ledger and the scored
// prediction history are authoritative.
type User struct {
	ID            string    `json:"user_id"`
	Username      string    `json:"username"`
	PointsBalance int64     `json:"points_balance"`
	CurrentStreak int       `json:"current_streak"`
	MaxStreak     int       `json:"max_streak"`
	CreatedAt     time.Time `json:"created_at"`
}
