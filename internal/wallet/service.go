package wallet

import (
	"context"
	"errors"
	"fmt"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=mocks_test.go -package=wallet

// WalletStore defines the database operations required by Service
type WalletStore interface {
	CreateCreditTransaction(ctx context.Context, params store.CreateCreditTransactionParams) (store.CreditTransaction, error)
	GetCreditBalance(ctx context.Context, userID uuid.UUID) (int64, error)
	GetCreditTransactionsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]store.CreditTransaction, error)
}

// Service is the platform credit ledger behind the CreditWallet contract.
type Service struct {
	store  WalletStore
	logger *observability.Logger
}

func New(store WalletStore, logger *observability.Logger) Service {
	return Service{
		store:  store,
		logger: logger,
	}
}

// AddCredits appends a credit transaction for the user. When the metadata
// carries a reward_id, the ledger accepts that reward at most once; a repeat
// application is treated as already done and returns nil.
func (s Service) AddCredits(ctx context.Context, userID uuid.UUID, amount int64, creditType, description string, metadata map[string]interface{}) error {
	if amount <= 0 {
		return fmt.Errorf("credit amount must be positive, got %d", amount)
	}

	var rewardID *uuid.UUID
	if metadata != nil {
		if raw, ok := metadata["reward_id"].(string); ok {
			parsed, err := uuid.Parse(raw)
			if err != nil {
				return fmt.Errorf("invalid reward_id in metadata: %w", err)
			}
			rewardID = &parsed
		}
	}

	_, err := s.store.CreateCreditTransaction(ctx, store.CreateCreditTransactionParams{
		UserID:      userID,
		Amount:      amount,
		Type:        creditType,
		Description: description,
		RewardID:    rewardID,
		Metadata:    store.JSONB(metadata),
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})
			s.logger.Info(ctx, "credits already applied for reward, skipping")
			return nil
		}
		s.logger.Error(ctx, "failed to add credits", err)
		return err
	}
	return nil
}

// GetBalance returns the user's current credit balance
func (s Service) GetBalance(ctx context.Context, userID uuid.UUID) (int64, error) {
	balance, err := s.store.GetCreditBalance(ctx, userID)
	if err != nil {
		s.logger.Error(ctx, "failed to get credit balance", err)
		return 0, err
	}
	return balance, nil
}

// GetTransactions retrieves the user's credit ledger with pagination
func (s Service) GetTransactions(ctx context.Context, userID uuid.UUID, limit, offset int) ([]store.CreditTransaction, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	txns, err := s.store.GetCreditTransactionsByUser(ctx, userID, limit, offset)
	if err != nil {
		s.logger.Error(ctx, "failed to get credit transactions", err)
		return nil, err
	}
	if txns == nil {
		txns = []store.CreditTransaction{}
	}
	return txns, nil
}
