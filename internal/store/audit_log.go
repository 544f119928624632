package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePayoutAuditLogEntryParams represents parameters for appending an
// audit log entry
type CreatePayoutAuditLogEntryParams struct {
	Action         string
	RewardIDs      UUIDArray
	PreviousStatus *string
	CreditAmount   *int64
	CurrencyAmount *decimal.Decimal
	CurrencyCode   *string
	PerformedBy    uuid.UUID
	Notes          *string
}

const sqlCreatePayoutAuditLogEntry = `
INSERT INTO payout_audit_log (action, reward_ids, previous_status, credit_amount, currency_amount, currency_code, performed_by, notes)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, action, reward_ids, previous_status, credit_amount, currency_amount, currency_code, performed_by, notes, created_at
`

// CreatePayoutAuditLogEntry appends an immutable audit log entry. There is no
// update or delete path for this table.
func (s *Store) CreatePayoutAuditLogEntry(ctx context.Context, params CreatePayoutAuditLogEntryParams) (PayoutAuditLogEntry, error) {
	var entry PayoutAuditLogEntry
	err := s.db.GetContext(ctx, &entry, sqlCreatePayoutAuditLogEntry,
		params.Action,
		params.RewardIDs,
		params.PreviousStatus,
		params.CreditAmount,
		params.CurrencyAmount,
		params.CurrencyCode,
		params.PerformedBy,
		params.Notes)
	if err != nil {
		return PayoutAuditLogEntry{}, fmt.Errorf("failed to create payout audit log entry: %w", err)
	}
	return entry, nil
}

const sqlGetPayoutAuditLogByReward = `
SELECT id, action, reward_ids, previous_status, credit_amount, currency_amount, currency_code, performed_by, notes, created_at
FROM payout_audit_log
WHERE $1 = ANY(reward_ids)
ORDER BY created_at ASC
`

// GetPayoutAuditLogByReward retrieves the audit trail for a reward
func (s *Store) GetPayoutAuditLogByReward(ctx context.Context, rewardID uuid.UUID) ([]PayoutAuditLogEntry, error) {
	var entries []PayoutAuditLogEntry
	err := s.db.SelectContext(ctx, &entries, sqlGetPayoutAuditLogByReward, rewardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get payout audit log by reward: %w", err)
	}
	return entries, nil
}
