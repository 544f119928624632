package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateCreditTransactionParams represents parameters for appending a credit
// ledger row
type CreateCreditTransactionParams struct {
	UserID      uuid.UUID
	Amount      int64
	Type        string
	Description string
	RewardID    *uuid.UUID
	Metadata    JSONB
}

const sqlCreateCreditTransaction = `
INSERT INTO credit_transactions (user_id, amount, type, description, reward_id, metadata)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, user_id, amount, type, description, reward_id, metadata, created_at
`

// CreateCreditTransaction appends a row to the credit ledger. A reward-linked
// credit can be written at most once per reward; a second attempt returns
// ErrDuplicate.
func (s *Store) CreateCreditTransaction(ctx context.Context, params CreateCreditTransactionParams) (CreditTransaction, error) {
	var txn CreditTransaction
	err := s.db.GetContext(ctx, &txn, sqlCreateCreditTransaction,
		params.UserID,
		params.Amount,
		params.Type,
		params.Description,
		params.RewardID,
		params.Metadata)
	if err != nil {
		if isUniqueViolation(err) {
			return CreditTransaction{}, ErrDuplicate
		}
		return CreditTransaction{}, fmt.Errorf("failed to create credit transaction: %w", err)
	}
	return txn, nil
}

const sqlGetCreditBalance = `
SELECT COALESCE(SUM(amount), 0)
FROM credit_transactions
WHERE user_id = $1
`

// GetCreditBalance returns the user's current credit balance
func (s *Store) GetCreditBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	var balance int64
	err := s.db.GetContext(ctx, &balance, sqlGetCreditBalance, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to get credit balance: %w", err)
	}
	return balance, nil
}

const sqlGetCreditTransactionsByUser = `
SELECT id, user_id, amount, type, description, reward_id, metadata, created_at
FROM credit_transactions
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3
`

// GetCreditTransactionsByUser retrieves a user's credit ledger with pagination
func (s *Store) GetCreditTransactionsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]CreditTransaction, error) {
	var txns []CreditTransaction
	err := s.db.SelectContext(ctx, &txns, sqlGetCreditTransactionsByUser, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get credit transactions by user: %w", err)
	}
	return txns, nil
}
