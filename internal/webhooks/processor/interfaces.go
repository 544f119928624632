package processor

import (
	"context"
	"time"

	affiliate "affiliate-server/internal/affiliate/processor"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

// AffiliateService defines the referral operations driven by payment events
type AffiliateService interface {
	HandleInvoicePaid(ctx context.Context, event affiliate.InvoicePaidEvent) ([]store.AffiliateReward, error)
	HandleSubscriptionCancellation(ctx context.Context, userID uuid.UUID, occurredAt time.Time) (int64, error)
}
