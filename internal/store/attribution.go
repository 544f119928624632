package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ChainEntryParams represents one level of a referral chain to persist
type ChainEntryParams struct {
	Level          int
	ReferrerUserID uuid.UUID
	ReferralCodeID uuid.UUID
	// CreditAmount > 0 creates a pending registration-credit reward for the
	// referrer at this level.
	CreditAmount int64
}

// CreateAttributionChainParams represents parameters for persisting a full
// referral chain for one registration event
type CreateAttributionChainParams struct {
	ProgramID      uuid.UUID
	ReferredUserID uuid.UUID
	AttributedAt   time.Time
	PendingUntil   time.Time
	Entries        []ChainEntryParams
}

const sqlCreateAttribution = `
INSERT INTO referral_attributions (program_id, referrer_user_id, referred_user_id, referral_code_id, level, parent_attribution_id, status, attributed_at, activated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
RETURNING id, program_id, referrer_user_id, referred_user_id, referral_code_id, level, parent_attribution_id, status, attributed_at, activated_at, cancelled_at, grace_end_at, created_at, updated_at
`

const sqlCreateRegistrationReward = `
INSERT INTO affiliate_rewards (program_id, user_id, attribution_id, type, level, status, credit_amount, pending_until)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, program_id, user_id, attribution_id, type, level, status, credit_amount, currency_amount, currency_code, commission_rate, source_invoice_id, source_subscription_id, pending_until, ready_at, settled_at, created_at, updated_at
`

// CreateAttributionChain persists every level of a referral chain and the
// associated pending registration-credit rewards in a single transaction.
// Each level's parent_attribution_id points at the previously created entry.
// Returns ErrDuplicate when an attribution already exists for the referred
// user at one of the levels.
func (s *Store) CreateAttributionChain(ctx context.Context, params CreateAttributionChainParams) ([]ReferralAttribution, []AffiliateReward, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	attributions := make([]ReferralAttribution, 0, len(params.Entries))
	rewards := make([]AffiliateReward, 0, len(params.Entries))

	var parentID *uuid.UUID
	for _, entry := range params.Entries {
		var attribution ReferralAttribution
		err = tx.GetContext(ctx, &attribution, sqlCreateAttribution,
			params.ProgramID,
			entry.ReferrerUserID,
			params.ReferredUserID,
			entry.ReferralCodeID,
			entry.Level,
			parentID,
			AttributionStatusActive,
			params.AttributedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, nil, ErrDuplicate
			}
			return nil, nil, fmt.Errorf("failed to create attribution at level %d: %w", entry.Level, err)
		}
		attributions = append(attributions, attribution)
		parentID = &attribution.ID

		if entry.CreditAmount <= 0 {
			continue
		}

		var reward AffiliateReward
		err = tx.GetContext(ctx, &reward, sqlCreateRegistrationReward,
			params.ProgramID,
			entry.ReferrerUserID,
			attribution.ID,
			RewardTypeRegistrationCredit,
			entry.Level,
			RewardStatusPending,
			entry.CreditAmount,
			params.PendingUntil)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create registration reward at level %d: %w", entry.Level, err)
		}
		rewards = append(rewards, reward)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return attributions, rewards, nil
}

const sqlGetAttributionByReferredUser = `
SELECT id, program_id, referrer_user_id, referred_user_id, referral_code_id, level, parent_attribution_id, status, attributed_at, activated_at, cancelled_at, grace_end_at, created_at, updated_at
FROM referral_attributions
WHERE program_id = $1 AND referred_user_id = $2 AND level = 1
`

// GetAttributionByReferredUser retrieves the level-1 attribution for a
// referred user, regardless of status
func (s *Store) GetAttributionByReferredUser(ctx context.Context, programID, referredUserID uuid.UUID) (ReferralAttribution, error) {
	var attribution ReferralAttribution
	err := s.db.GetContext(ctx, &attribution, sqlGetAttributionByReferredUser, programID, referredUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralAttribution{}, ErrNotFound
		}
		return ReferralAttribution{}, fmt.Errorf("failed to get attribution by referred user: %w", err)
	}
	return attribution, nil
}

const sqlGetActiveLevel1Attribution = `
SELECT id, program_id, referrer_user_id, referred_user_id, referral_code_id, level, parent_attribution_id, status, attributed_at, activated_at, cancelled_at, grace_end_at, created_at, updated_at
FROM referral_attributions
WHERE program_id = $1 AND referred_user_id = $2 AND level = 1 AND status = 'active'
`

// GetActiveLevel1Attribution retrieves the active direct attribution for a
// user, used to walk the chain upward one level at a time
func (s *Store) GetActiveLevel1Attribution(ctx context.Context, programID, referredUserID uuid.UUID) (ReferralAttribution, error) {
	var attribution ReferralAttribution
	err := s.db.GetContext(ctx, &attribution, sqlGetActiveLevel1Attribution, programID, referredUserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralAttribution{}, ErrNotFound
		}
		return ReferralAttribution{}, fmt.Errorf("failed to get active level-1 attribution: %w", err)
	}
	return attribution, nil
}

const sqlGetPayableAttributionsByReferredUser = `
SELECT id, program_id, referrer_user_id, referred_user_id, referral_code_id, level, parent_attribution_id, status, attributed_at, activated_at, cancelled_at, grace_end_at, created_at, updated_at
FROM referral_attributions
WHERE program_id = $1 AND referred_user_id = $2 AND status IN ('active', 'cancelled')
ORDER BY level ASC
`

// GetPayableAttributionsByReferredUser retrieves active and cancelled
// attributions for a referred user. Cancelled rows are included because they
// may still be inside their grace window.
func (s *Store) GetPayableAttributionsByReferredUser(ctx context.Context, programID, referredUserID uuid.UUID) ([]ReferralAttribution, error) {
	var attributions []ReferralAttribution
	err := s.db.SelectContext(ctx, &attributions, sqlGetPayableAttributionsByReferredUser, programID, referredUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payable attributions: %w", err)
	}
	return attributions, nil
}

const sqlCancelAttributionsForReferredUser = `
UPDATE referral_attributions
SET status = 'cancelled',
    cancelled_at = $2,
    grace_end_at = $3,
    updated_at = CURRENT_TIMESTAMP
WHERE referred_user_id = $1 AND status IN ('active', 'pending')
`

// CancelAttributionsForReferredUser transitions every active or pending
// attribution of a referred user to cancelled with the given grace window.
// Returns the number of rows transitioned.
func (s *Store) CancelAttributionsForReferredUser(ctx context.Context, referredUserID uuid.UUID, cancelledAt, graceEndAt time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, sqlCancelAttributionsForReferredUser, referredUserID, cancelledAt, graceEndAt)
	if err != nil {
		return 0, fmt.Errorf("failed to cancel attributions: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}
	return rows, nil
}

const sqlCountAttributionsByReferrer = `
SELECT level, COUNT(*) AS total
FROM referral_attributions
WHERE program_id = $1 AND referrer_user_id = $2 AND status = 'active'
GROUP BY level
ORDER BY level ASC
`

// AttributionLevelCount represents the number of active referrals at a level
type AttributionLevelCount struct {
	Level int   `db:"level" json:"level"`
	Total int64 `db:"total" json:"total"`
}

// CountAttributionsByReferrer counts a referrer's active attributions per level
func (s *Store) CountAttributionsByReferrer(ctx context.Context, programID, referrerUserID uuid.UUID) ([]AttributionLevelCount, error) {
	var counts []AttributionLevelCount
	err := s.db.SelectContext(ctx, &counts, sqlCountAttributionsByReferrer, programID, referrerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to count attributions by referrer: %w", err)
	}
	return counts, nil
}
