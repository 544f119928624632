package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

import (
	"context"
	"time"

	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

// AffiliateStore defines the database operations required by AffiliateProcessor
type AffiliateStore interface {
	GetActiveProgram(ctx context.Context) (store.AffiliateProgram, error)
	GetProgramLevels(ctx context.Context, programID uuid.UUID) ([]store.ProgramLevel, error)
	CreateProgram(ctx context.Context, params store.CreateProgramParams) (store.AffiliateProgram, error)

	CreateReferralCode(ctx context.Context, params store.CreateReferralCodeParams) (store.ReferralCode, error)
	GetActiveReferralCodeByUser(ctx context.Context, userID, programID uuid.UUID) (store.ReferralCode, error)
	GetReferralCodeByCode(ctx context.Context, code string) (store.ReferralCode, error)

	GetAttributionByReferredUser(ctx context.Context, programID, referredUserID uuid.UUID) (store.ReferralAttribution, error)
	GetActiveLevel1Attribution(ctx context.Context, programID, referredUserID uuid.UUID) (store.ReferralAttribution, error)
	CreateAttributionChain(ctx context.Context, params store.CreateAttributionChainParams) ([]store.ReferralAttribution, []store.AffiliateReward, error)
	GetPayableAttributionsByReferredUser(ctx context.Context, programID, referredUserID uuid.UUID) ([]store.ReferralAttribution, error)
	CancelAttributionsForReferredUser(ctx context.Context, referredUserID uuid.UUID, cancelledAt, graceEndAt time.Time) (int64, error)
	CountAttributionsByReferrer(ctx context.Context, programID, referrerUserID uuid.UUID) ([]store.AttributionLevelCount, error)

	RewardExistsForInvoice(ctx context.Context, sourceInvoiceID string) (bool, error)
	CommissionRewardExistsForAttribution(ctx context.Context, attributionID uuid.UUID) (bool, error)
	CreateCommissionRewards(ctx context.Context, params []store.CreateCommissionRewardParams) ([]store.AffiliateReward, error)
	GetMaturedPendingRewards(ctx context.Context, referenceDate time.Time, limit int) ([]store.AffiliateReward, error)
	MarkRewardsCleared(ctx context.Context, rewardIDs []uuid.UUID, readyAt time.Time) (int64, error)
	GetRewardByID(ctx context.Context, rewardID uuid.UUID) (store.AffiliateReward, error)
	TransitionRewardWithAudit(ctx context.Context, params store.TransitionRewardParams) (store.AffiliateReward, store.PayoutAuditLogEntry, error)
	GetRewardsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]store.AffiliateReward, error)
	GetClearedUnsettledRewards(ctx context.Context, limit, offset int) ([]store.AffiliateReward, error)
	GetRewardTotalsByUser(ctx context.Context, userID uuid.UUID) ([]store.RewardTotals, error)
	GetPayoutAuditLogByReward(ctx context.Context, rewardID uuid.UUID) ([]store.PayoutAuditLogEntry, error)
}

// CreditWallet is the narrow contract to the platform wallet. Maturation is
// its only caller.
type CreditWallet interface {
	AddCredits(ctx context.Context, userID uuid.UUID, amount int64, creditType, description string, metadata map[string]interface{}) error
}
