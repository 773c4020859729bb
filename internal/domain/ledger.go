package domain

import (
	"slices"
	"time"
)

// TransactionType classifies a ledger entry
type TransactionType string

const (
	TxPredictionWin      TransactionType = "prediction_win"
	TxReferral           TransactionType = "referral"
	TxDailyBonus         TransactionType = "daily_bonus"
	TxMission            TransactionType = "mission"
	TxRedemption         TransactionType = "redemption"
	TxBadgeReward        TransactionType = "badge_reward"
	TxAdminAdjustment    TransactionType = "admin_adjustment"
	TxSponsorBonus       TransactionType = "sponsor_bonus"
	TxChampionPrediction TransactionType = "champion_prediction"
)

// ReferenceKind names what a ledger entry points at
type ReferenceKind string

const (
	RefNone               ReferenceKind = "none"
	RefPrediction         ReferenceKind = "prediction"
	RefChampionPrediction ReferenceKind = "champion_prediction"
	RefReward             ReferenceKind = "reward"
	RefBadge              ReferenceKind = "badge"
	RefMission            ReferenceKind = "mission"
	RefReferral           ReferenceKind = "referral"
	RefSponsor            ReferenceKind = "sponsor"
)

// allowedReferenceKinds lists the reference kinds each transaction type may carry
var allowedReferenceKinds = map[TransactionType][]ReferenceKind{
	TxPredictionWin:      {RefPrediction},
	TxReferral:           {RefReferral, RefNone},
	TxDailyBonus:         {RefNone},
	TxMission:            {RefMission},
	TxRedemption:         {RefReward},
	TxBadgeReward:        {RefBadge},
	TxAdminAdjustment:    {RefNone, RefPrediction, RefChampionPrediction, RefReward, RefBadge, RefMission, RefReferral, RefSponsor},
	TxSponsorBonus:       {RefSponsor, RefNone},
	TxChampionPrediction: {RefChampionPrediction},
}

// debitTypes may carry negative amounts
var debitTypes = []TransactionType{TxRedemption, TxChampionPrediction, TxAdminAdjustment}

// creditOnlyTypes must carry positive amounts
var creditOnlyTypes = []TransactionType{TxPredictionWin, TxReferral, TxDailyBonus, TxMission, TxBadgeReward, TxSponsorBonus}

// IsValid reports whether t is a known transaction type
func (t TransactionType) IsValid() bool {
	_, ok := allowedReferenceKinds[t]
	return ok
}

// AllowsAmount reports whether amount has an acceptable sign for t.
// Zero-amount entries are never written.
func (t TransactionType) AllowsAmount(amount int64) bool {
	switch {
	case amount == 0:
		return false
	case amount < 0:
		return slices.Contains(debitTypes, t)
	default:
		// champion_prediction carries both the wager debit and the payout credit
		return slices.Contains(creditOnlyTypes, t) || t == TxAdminAdjustment || t == TxChampionPrediction
	}
}

// Reference is a tagged pointer from a ledger entry to the record that caused it
type Reference struct {
	Kind ReferenceKind `json:"kind"`
	ID   int64         `json:"id,omitempty"`
}

// NoReference is the reference of entries that point at nothing
func NoReference() Reference {
	return Reference{Kind: RefNone}
}

// PredictionReference points at a match prediction
func PredictionReference(id int64) Reference {
	return Reference{Kind: RefPrediction, ID: id}
}

// ChampionPredictionReference points at a champion prediction
func ChampionPredictionReference(id int64) Reference {
	return Reference{Kind: RefChampionPrediction, ID: id}
}

// ValidFor reports whether the reference is well-formed and allowed for t
func (r Reference) ValidFor(t TransactionType) bool {
	kinds, ok := allowedReferenceKinds[t]
	if !ok || !slices.Contains(kinds, r.Kind) {
		return false
	}
	if r.Kind == RefNone {
		return r.ID == 0
	}
	return r.ID > 0
}

// PointTransaction is an immutable ledger row
type PointTransaction struct {
	ID          int64           `json:"id"`
	UserID      string          `json:"user_id"`
	Type        TransactionType `json:"type"`
	Amount      int64           `json:"amount"`
	Description string          `json:"description"`
	Reference   Reference       `json:"reference"`
	CreatedAt   time.Time       `json:"created_at"`
}

// LedgerEntry is a transaction to be appended
type LedgerEntry struct {
	UserID      string
	Type        TransactionType
	Amount      int64
	Description string
	Reference   Reference
}

// PointHistory is a page of a user's ledger, newest first
type PointHistory struct {
	UserID       string             `json:"user_id"`
	Balance      int64              `json:"balance"`
	Transactions []PointTransaction `json:"transactions"`
	Total        int                `json:"total"`
	Limit        int                `json:"limit"`
	Offset       int                `json:"offset"`
}

// AdjustPointsRequest is the body of an admin points adjustment
type AdjustPointsRequest struct {
	Amount      int64  `json:"amount" validate:"required,ne=0,min=-1000000,max=1000000"`
	Type        string `json:"type,omitempty" validate:"omitempty,txtype"`
	Description string `json:"description" validate:"max=255"`
}
