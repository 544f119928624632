package processor

import (
	"context"
	"errors"
	"time"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var centsPerUnit = decimal.NewFromInt(100)

// InvoicePaidEvent represents a paid invoice delivered by the payment webhook
// dispatcher
type InvoicePaidEvent struct {
	UserID                 uuid.UUID
	ExternalInvoiceID      string
	ExternalSubscriptionID string
	TotalAmountCents       int64
	CurrencyCode           string
	OccurredAt             time.Time
}

// HandleInvoicePaid creates one pending commission reward per qualifying
// chain level above the paying user. Redelivery of the same invoice event is
// a no-op signalled by ErrDuplicateEvent.
func (p *AffiliateProcessor) HandleInvoicePaid(ctx context.Context, event InvoicePaidEvent) ([]store.AffiliateReward, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: event.UserID.String()},
		observability.Field{Key: "invoice_id", Value: event.ExternalInvoiceID},
	)

	program, err := p.store.GetActiveProgram(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "no active program, skipping invoice")
			return nil, nil
		}
		p.logger.Error(ctx, "failed to get active program", err)
		return nil, err
	}

	// Fast path; the unique index on (attribution_id, source_invoice_id) is
	// the authoritative guard below.
	exists, err := p.store.RewardExistsForInvoice(ctx, event.ExternalInvoiceID)
	if err != nil {
		p.logger.Error(ctx, "failed idempotency check for invoice", err)
		return nil, err
	}
	if exists {
		p.logger.Info(ctx, "invoice already rewarded, skipping")
		return nil, ErrDuplicateEvent
	}

	attributions, err := p.store.GetPayableAttributionsByReferredUser(ctx, program.ID, event.UserID)
	if err != nil {
		p.logger.Error(ctx, "failed to get payable attributions", err)
		return nil, err
	}
	if len(attributions) == 0 {
		return nil, nil
	}

	levels, err := p.store.GetProgramLevels(ctx, program.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to get program levels", err)
		return nil, err
	}
	levelConfig := indexLevels(levels)

	invoiceTotal := decimal.NewFromInt(event.TotalAmountCents).Div(centsPerUnit)
	pendingUntil := event.OccurredAt.AddDate(0, 0, program.RewardPendingDays)

	var params []store.CreateCommissionRewardParams
	for _, attribution := range attributions {
		// A cancelled attribution still earns inside its grace window.
		if attribution.Status == store.AttributionStatusCancelled {
			if attribution.GraceEndAt == nil || !event.OccurredAt.Before(*attribution.GraceEndAt) {
				continue
			}
		}

		if !program.LifetimeCommissions {
			rewarded, err := p.store.CommissionRewardExistsForAttribution(ctx, attribution.ID)
			if err != nil {
				p.logger.Error(ctx, "failed to check prior commission for attribution", err)
				return nil, err
			}
			if rewarded {
				continue
			}
		}

		rate := commissionRateForLevel(program, levelConfig, attribution.Level)
		if !rate.IsPositive() {
			continue
		}
		amount := invoiceTotal.Mul(rate).Round(2)
		if !amount.IsPositive() {
			continue
		}

		params = append(params, store.CreateCommissionRewardParams{
			ProgramID:            program.ID,
			UserID:               attribution.ReferrerUserID,
			AttributionID:        attribution.ID,
			Level:                attribution.Level,
			CurrencyAmount:       amount,
			CurrencyCode:         event.CurrencyCode,
			CommissionRate:       rate,
			SourceInvoiceID:      event.ExternalInvoiceID,
			SourceSubscriptionID: event.ExternalSubscriptionID,
			PendingUntil:         pendingUntil,
		})
	}

	if len(params) == 0 {
		return nil, nil
	}

	rewards, err := p.store.CreateCommissionRewards(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// A concurrent delivery of the same event won the race.
			p.logger.Info(ctx, "invoice rewarded concurrently, skipping")
			return nil, ErrDuplicateEvent
		}
		p.logger.Error(ctx, "failed to create commission rewards", err)
		return nil, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "rewards_created", Value: len(rewards)})
	p.logger.Info(ctx, "commission rewards created for invoice")
	return rewards, nil
}

// HandleSubscriptionCancellation cancels every attribution that points at the
// churned user, opening the program's grace window. Existing rewards are left
// untouched; only future invoice events are affected.
func (p *AffiliateProcessor) HandleSubscriptionCancellation(ctx context.Context, userID uuid.UUID, occurredAt time.Time) (int64, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	program, err := p.store.GetActiveProgram(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "no active program, skipping cancellation")
			return 0, nil
		}
		p.logger.Error(ctx, "failed to get active program", err)
		return 0, err
	}

	graceEndAt := occurredAt.AddDate(0, 0, program.SubscriptionGraceDays)
	cancelled, err := p.store.CancelAttributionsForReferredUser(ctx, userID, occurredAt, graceEndAt)
	if err != nil {
		p.logger.Error(ctx, "failed to cancel attributions", err)
		return 0, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "attributions_cancelled", Value: cancelled})
	p.logger.Info(ctx, "attributions cancelled for churned subscription")
	return cancelled, nil
}

// commissionRateForLevel resolves the commission rate for a chain level.
// Level 1 falls back to the program's base rate when no override exists;
// deeper levels earn only with an explicit override.
func commissionRateForLevel(program store.AffiliateProgram, levels map[int]store.ProgramLevel, level int) decimal.Decimal {
	if config, ok := levels[level]; ok && config.CommissionRate != nil {
		return *config.CommissionRate
	}
	if level == 1 {
		return program.BaseCommissionRate
	}
	return decimal.Zero
}
