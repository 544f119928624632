package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

// CreateCommissionRewardParams represents one commission reward to create for
// a paid invoice
type CreateCommissionRewardParams struct {
	ProgramID            uuid.UUID
	UserID               uuid.UUID
	AttributionID        uuid.UUID
	Level                int
	CurrencyAmount       decimal.Decimal
	CurrencyCode         string
	CommissionRate       decimal.Decimal
	SourceInvoiceID      string
	SourceSubscriptionID string
	PendingUntil         time.Time
}

const sqlCreateCommissionReward = `
INSERT INTO affiliate_rewards (program_id, user_id, attribution_id, type, level, status, currency_amount, currency_code, commission_rate, source_invoice_id, source_subscription_id, pending_until)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id, program_id, user_id, attribution_id, type, level, status, credit_amount, currency_amount, currency_code, commission_rate, source_invoice_id, source_subscription_id, pending_until, ready_at, settled_at, created_at, updated_at
`

// CreateCommissionRewards creates one pending commission reward per chain
// level in a single transaction. The unique index on
// (attribution_id, source_invoice_id) makes a redelivered invoice event fail
// with ErrDuplicate instead of double-creating.
func (s *Store) CreateCommissionRewards(ctx context.Context, params []CreateCommissionRewardParams) ([]AffiliateReward, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	rewards := make([]AffiliateReward, 0, len(params))
	for _, p := range params {
		var reward AffiliateReward
		err = tx.GetContext(ctx, &reward, sqlCreateCommissionReward,
			p.ProgramID,
			p.UserID,
			p.AttributionID,
			RewardTypeSubscriptionCommission,
			p.Level,
			RewardStatusPending,
			p.CurrencyAmount,
			p.CurrencyCode,
			p.CommissionRate,
			p.SourceInvoiceID,
			p.SourceSubscriptionID,
			p.PendingUntil)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, ErrDuplicate
			}
			return nil, fmt.Errorf("failed to create commission reward at level %d: %w", p.Level, err)
		}
		rewards = append(rewards, reward)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return rewards, nil
}

const sqlRewardExistsForInvoice = `
SELECT EXISTS (
	SELECT 1 FROM affiliate_rewards WHERE source_invoice_id = $1
)
`

// RewardExistsForInvoice reports whether any reward already references the
// external invoice ID. This is the idempotency fast path; the unique index is
// the authoritative guard.
func (s *Store) RewardExistsForInvoice(ctx context.Context, sourceInvoiceID string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlRewardExistsForInvoice, sourceInvoiceID)
	if err != nil {
		return false, fmt.Errorf("failed to check reward existence for invoice: %w", err)
	}
	return exists, nil
}

const sqlCommissionRewardExistsForAttribution = `
SELECT EXISTS (
	SELECT 1 FROM affiliate_rewards
	WHERE attribution_id = $1 AND type = 'subscription_commission' AND status <> 'cancelled'
)
`

// CommissionRewardExistsForAttribution reports whether an attribution has
// already earned a commission. Used by non-lifetime programs, which pay each
// chain at most once.
func (s *Store) CommissionRewardExistsForAttribution(ctx context.Context, attributionID uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, sqlCommissionRewardExistsForAttribution, attributionID)
	if err != nil {
		return false, fmt.Errorf("failed to check commission reward existence: %w", err)
	}
	return exists, nil
}

const sqlGetRewardByID = `
SELECT id, program_id, user_id, attribution_id, type, level, status, credit_amount, currency_amount, currency_code, commission_rate, source_invoice_id, source_subscription_id, pending_until, ready_at, settled_at, created_at, updated_at
FROM affiliate_rewards
WHERE id = $1
`

// GetRewardByID retrieves a reward by ID
func (s *Store) GetRewardByID(ctx context.Context, rewardID uuid.UUID) (AffiliateReward, error) {
	var reward AffiliateReward
	err := s.db.GetContext(ctx, &reward, sqlGetRewardByID, rewardID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AffiliateReward{}, ErrNotFound
		}
		return AffiliateReward{}, fmt.Errorf("failed to get reward by id: %w", err)
	}
	return reward, nil
}

const sqlGetMaturedPendingRewards = `
SELECT id, program_id, user_id, attribution_id, type, level, status, credit_amount, currency_amount, currency_code, commission_rate, source_invoice_id, source_subscription_id, pending_until, ready_at, settled_at, created_at, updated_at
FROM affiliate_rewards
WHERE status = 'pending' AND pending_until <= $1
ORDER BY pending_until ASC
LIMIT $2
`

// GetMaturedPendingRewards retrieves pending rewards whose maturation
// timestamp has passed
func (s *Store) GetMaturedPendingRewards(ctx context.Context, referenceDate time.Time, limit int) ([]AffiliateReward, error) {
	var rewards []AffiliateReward
	err := s.db.SelectContext(ctx, &rewards, sqlGetMaturedPendingRewards, referenceDate, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get matured pending rewards: %w", err)
	}
	return rewards, nil
}

const sqlMarkRewardsCleared = `
UPDATE affiliate_rewards
SET status = 'cleared',
    ready_at = ?,
    updated_at = CURRENT_TIMESTAMP
WHERE id IN (?) AND status = 'pending'
`

// MarkRewardsCleared bulk-transitions pending rewards to cleared. Rewards
// that already left the pending state are left untouched. Returns the number
// of rows transitioned.
func (s *Store) MarkRewardsCleared(ctx context.Context, rewardIDs []uuid.UUID, readyAt time.Time) (int64, error) {
	if len(rewardIDs) == 0 {
		return 0, nil
	}

	query, args, err := sqlx.In(sqlMarkRewardsCleared, readyAt, rewardIDs)
	if err != nil {
		return 0, fmt.Errorf("failed to build cleared update: %w", err)
	}
	query = s.db.Rebind(query)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to mark rewards cleared: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

// TransitionRewardParams represents a guarded status transition with its
// audit entry
type TransitionRewardParams struct {
	RewardID     uuid.UUID
	FromStatus   string
	ToStatus     string
	SetReadyAt   *time.Time
	SetSettledAt *time.Time
	// RequireUnsettled additionally guards against acting on a reward that
	// has already been paid out.
	RequireUnsettled bool
	Action           string
	PerformedBy      uuid.UUID
	Notes            *string
}

const sqlTransitionReward = `
UPDATE affiliate_rewards
SET status = $3,
    ready_at = COALESCE($4, ready_at),
    settled_at = COALESCE($5, settled_at),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = $2 AND ($6 = FALSE OR settled_at IS NULL)
RETURNING id, program_id, user_id, attribution_id, type, level, status, credit_amount, currency_amount, currency_code, commission_rate, source_invoice_id, source_subscription_id, pending_until, ready_at, settled_at, created_at, updated_at
`

// TransitionRewardWithAudit performs a status transition guarded by the
// required starting status and appends the audit log entry in the same
// transaction. Returns ErrStateConflict when the reward exists but is not in
// the required starting state.
func (s *Store) TransitionRewardWithAudit(ctx context.Context, params TransitionRewardParams) (AffiliateReward, PayoutAuditLogEntry, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return AffiliateReward{}, PayoutAuditLogEntry{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var reward AffiliateReward
	err = tx.GetContext(ctx, &reward, sqlTransitionReward,
		params.RewardID,
		params.FromStatus,
		params.ToStatus,
		params.SetReadyAt,
		params.SetSettledAt,
		params.RequireUnsettled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Distinguish a missing reward from one in the wrong state.
			var current AffiliateReward
			if getErr := tx.GetContext(ctx, &current, sqlGetRewardByID, params.RewardID); getErr != nil {
				if errors.Is(getErr, sql.ErrNoRows) {
					return AffiliateReward{}, PayoutAuditLogEntry{}, ErrNotFound
				}
				return AffiliateReward{}, PayoutAuditLogEntry{}, fmt.Errorf("failed to get reward for transition: %w", getErr)
			}
			return AffiliateReward{}, PayoutAuditLogEntry{}, ErrStateConflict
		}
		return AffiliateReward{}, PayoutAuditLogEntry{}, fmt.Errorf("failed to transition reward: %w", err)
	}

	var entry PayoutAuditLogEntry
	err = tx.GetContext(ctx, &entry, sqlCreatePayoutAuditLogEntry,
		params.Action,
		UUIDArray{reward.ID},
		params.FromStatus,
		reward.CreditAmount,
		reward.CurrencyAmount,
		reward.CurrencyCode,
		params.PerformedBy,
		params.Notes)
	if err != nil {
		return AffiliateReward{}, PayoutAuditLogEntry{}, fmt.Errorf("failed to create payout audit log entry: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return AffiliateReward{}, PayoutAuditLogEntry{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return reward, entry, nil
}

const sqlGetRewardsByUser = `
SELECT id, program_id, user_id, attribution_id, type, level, status, credit_amount, currency_amount, currency_code, commission_rate, source_invoice_id, source_subscription_id, pending_until, ready_at, settled_at, created_at, updated_at
FROM affiliate_rewards
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// GetRewardsByUser retrieves a user's rewards with pagination
func (s *Store) GetRewardsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]AffiliateReward, error) {
	var rewards []AffiliateReward
	err := s.db.SelectContext(ctx, &rewards, sqlGetRewardsByUser, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get rewards by user: %w", err)
	}
	return rewards, nil
}

const sqlGetClearedUnsettledRewards = `
SELECT id, program_id, user_id, attribution_id, type, level, status, credit_amount, currency_amount, currency_code, commission_rate, source_invoice_id, source_subscription_id, pending_until, ready_at, settled_at, created_at, updated_at
FROM affiliate_rewards
WHERE status = 'cleared' AND settled_at IS NULL
ORDER BY ready_at ASC
LIMIT $1 OFFSET $2
`

// GetClearedUnsettledRewards retrieves cleared rewards awaiting payout
func (s *Store) GetClearedUnsettledRewards(ctx context.Context, limit, offset int) ([]AffiliateReward, error) {
	var rewards []AffiliateReward
	err := s.db.SelectContext(ctx, &rewards, sqlGetClearedUnsettledRewards, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get cleared unsettled rewards: %w", err)
	}
	return rewards, nil
}

// RewardTotals represents aggregated reward amounts for a user
type RewardTotals struct {
	Status        string          `db:"status" json:"status"`
	CreditTotal   int64           `db:"credit_total" json:"credit_total"`
	CurrencyTotal decimal.Decimal `db:"currency_total" json:"currency_total"`
	RewardCount   int64           `db:"reward_count" json:"reward_count"`
}

const sqlGetRewardTotalsByUser = `
SELECT status,
       COALESCE(SUM(credit_amount), 0) AS credit_total,
       COALESCE(SUM(currency_amount), 0) AS currency_total,
       COUNT(*) AS reward_count
FROM affiliate_rewards
WHERE user_id = $1
GROUP BY status
`

// GetRewardTotalsByUser aggregates a user's rewards by status
func (s *Store) GetRewardTotalsByUser(ctx context.Context, userID uuid.UUID) ([]RewardTotals, error) {
	var totals []RewardTotals
	err := s.db.SelectContext(ctx, &totals, sqlGetRewardTotalsByUser, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reward totals by user: %w", err)
	}
	return totals, nil
}
