package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	affiliate "affiliate-server/internal/affiliate/processor"
	"affiliate-server/internal/observability"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/subscription"
)

// WebhookProcessor translates Stripe events into affiliate ledger operations.
// The platform stamps user_id into subscription metadata at checkout; events
// without that mapping belong to customers outside the referral program and
// are acknowledged without action.
type WebhookProcessor struct {
	WebhookSecret string
	affiliates    AffiliateService
	logger        *observability.Logger
}

func New(stripeKey string, webhookSecret string, affiliates AffiliateService, logger *observability.Logger) WebhookProcessor {
	stripe.Key = stripeKey
	return WebhookProcessor{
		WebhookSecret: webhookSecret,
		affiliates:    affiliates,
		logger:        logger,
	}
}

func (p *WebhookProcessor) HandleWebhook(ctx context.Context, event stripe.Event) error {
	switch event.Type {
	case "invoice.paid":
		var invoice stripe.Invoice
		err := json.Unmarshal(event.Data.Raw, &invoice)
		if err != nil {
			p.logger.Error(ctx, "failed to unmarshal invoice", err)
			return err
		}
		return p.InvoicePaid(ctx, invoice)

	case "customer.subscription.deleted":
		var subscription stripe.Subscription
		err := json.Unmarshal(event.Data.Raw, &subscription)
		if err != nil {
			p.logger.Error(ctx, "failed to unmarshal subscription", err)
			return err
		}
		return p.SubscriptionDeleted(ctx, subscription)

	default:
		p.logger.Warn(ctx, fmt.Sprintf("Unhandled event type: %s", event.Type))
	}

	return nil
}

// InvoicePaid creates pending commission rewards for the paying user's
// referral chain. Stripe redelivers events, so a duplicate is success.
func (p *WebhookProcessor) InvoicePaid(ctx context.Context, invoice stripe.Invoice) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "invoice_id", Value: invoice.ID})

	userID, ok, err := p.resolveInvoiceUser(ctx, invoice)
	if err != nil {
		p.logger.Error(ctx, "invoice carries malformed user_id metadata", err)
		return err
	}
	if !ok {
		p.logger.Info(ctx, "invoice has no user mapping, ignoring")
		return nil
	}

	var subscriptionID string
	if invoice.Subscription != nil {
		subscriptionID = invoice.Subscription.ID
	}

	_, err = p.affiliates.HandleInvoicePaid(ctx, affiliate.InvoicePaidEvent{
		UserID:                 userID,
		ExternalInvoiceID:      invoice.ID,
		ExternalSubscriptionID: subscriptionID,
		TotalAmountCents:       invoice.Total,
		CurrencyCode:           strings.ToUpper(string(invoice.Currency)),
		OccurredAt:             time.Unix(invoice.Created, 0).UTC(),
	})
	if err != nil {
		if errors.Is(err, affiliate.ErrDuplicateEvent) {
			p.logger.Info(ctx, "invoice event already processed")
			return nil
		}
		p.logger.Error(ctx, "failed to process paid invoice", err)
		return err
	}
	return nil
}

// SubscriptionDeleted cancels the churned user's attributions, opening the
// grace window for trailing invoices.
func (p *WebhookProcessor) SubscriptionDeleted(ctx context.Context, subscription stripe.Subscription) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "subscription_id", Value: subscription.ID})

	raw, ok := subscription.Metadata["user_id"]
	if !ok || raw == "" {
		p.logger.Info(ctx, "subscription has no user mapping, ignoring")
		return nil
	}
	userID, err := uuid.Parse(raw)
	if err != nil {
		p.logger.Error(ctx, "subscription carries malformed user_id metadata", err)
		return err
	}

	occurredAt := time.Unix(subscription.CanceledAt, 0).UTC()
	if subscription.CanceledAt == 0 {
		occurredAt = time.Now().UTC()
	}

	_, err = p.affiliates.HandleSubscriptionCancellation(ctx, userID, occurredAt)
	if err != nil {
		p.logger.Error(ctx, "failed to process subscription cancellation", err)
		return err
	}
	return nil
}

// resolveInvoiceUser finds the platform user behind an invoice. The event
// usually carries user_id in subscription metadata; when Stripe omits it, the
// subscription is fetched directly.
func (p *WebhookProcessor) resolveInvoiceUser(ctx context.Context, invoice stripe.Invoice) (uuid.UUID, bool, error) {
	var raw string
	if invoice.SubscriptionDetails != nil {
		raw = invoice.SubscriptionDetails.Metadata["user_id"]
	}
	if raw == "" {
		raw = invoice.Metadata["user_id"]
	}
	if raw == "" && invoice.Subscription != nil {
		sub, err := subscription.Get(invoice.Subscription.ID, nil)
		if err != nil {
			p.logger.Error(ctx, "failed to fetch subscription for invoice", err)
			return uuid.Nil, false, err
		}
		raw = sub.Metadata["user_id"]
	}
	if raw == "" {
		return uuid.Nil, false, nil
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, false, err
	}
	return userID, true, nil
}
