package processor

import (
	"context"
	"errors"
	"time"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

// ApprovePayout transitions a PENDING reward to CLEARED ahead of its
// maturation window and appends the audit entry. Acting on a reward in any
// other state returns ErrRewardStateConflict.
func (p *AffiliateProcessor) ApprovePayout(ctx context.Context, rewardID, adminUserID uuid.UUID, notes *string) (store.AffiliateReward, error) {
	now := time.Now().UTC()
	return p.transitionReward(ctx, store.TransitionRewardParams{
		RewardID:    rewardID,
		FromStatus:  store.RewardStatusPending,
		ToStatus:    store.RewardStatusCleared,
		SetReadyAt:  &now,
		Action:      store.PayoutActionApproved,
		PerformedBy: adminUserID,
		Notes:       notes,
	})
}

// RejectPayout transitions a PENDING reward to CANCELLED and appends the
// audit entry.
func (p *AffiliateProcessor) RejectPayout(ctx context.Context, rewardID, adminUserID uuid.UUID, notes *string) (store.AffiliateReward, error) {
	return p.transitionReward(ctx, store.TransitionRewardParams{
		RewardID:    rewardID,
		FromStatus:  store.RewardStatusPending,
		ToStatus:    store.RewardStatusCancelled,
		Action:      store.PayoutActionRejected,
		PerformedBy: adminUserID,
		Notes:       notes,
	})
}

// MarkPayoutPaid records that a CLEARED reward has actually been paid out.
// A reward that is not cleared, or was already settled, returns
// ErrRewardStateConflict.
func (p *AffiliateProcessor) MarkPayoutPaid(ctx context.Context, rewardID, adminUserID uuid.UUID, notes *string) (store.AffiliateReward, error) {
	now := time.Now().UTC()
	return p.transitionReward(ctx, store.TransitionRewardParams{
		RewardID:         rewardID,
		FromStatus:       store.RewardStatusCleared,
		ToStatus:         store.RewardStatusCleared,
		SetSettledAt:     &now,
		RequireUnsettled: true,
		Action:           store.PayoutActionPaid,
		PerformedBy:      adminUserID,
		Notes:            notes,
	})
}

func (p *AffiliateProcessor) transitionReward(ctx context.Context, params store.TransitionRewardParams) (store.AffiliateReward, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "reward_id", Value: params.RewardID.String()},
		observability.Field{Key: "payout_action", Value: params.Action},
		observability.Field{Key: "performed_by", Value: params.PerformedBy.String()},
	)

	reward, _, err := p.store.TransitionRewardWithAudit(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AffiliateReward{}, ErrRewardNotFound
		}
		if errors.Is(err, store.ErrStateConflict) {
			return store.AffiliateReward{}, ErrRewardStateConflict
		}
		p.logger.Error(ctx, "failed to apply payout action", err)
		return store.AffiliateReward{}, err
	}

	p.logger.Info(ctx, "payout action applied")
	return reward, nil
}

// GetPayoutQueue lists cleared rewards awaiting settlement
func (p *AffiliateProcessor) GetPayoutQueue(ctx context.Context, limit, offset int) ([]store.AffiliateReward, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rewards, err := p.store.GetClearedUnsettledRewards(ctx, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list payout queue", err)
		return nil, err
	}
	if rewards == nil {
		rewards = []store.AffiliateReward{}
	}
	return rewards, nil
}

// GetRewardAuditTrail retrieves the append-only audit trail for a reward
func (p *AffiliateProcessor) GetRewardAuditTrail(ctx context.Context, rewardID uuid.UUID) ([]store.PayoutAuditLogEntry, error) {
	if _, err := p.store.GetRewardByID(ctx, rewardID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRewardNotFound
		}
		p.logger.Error(ctx, "failed to get reward", err)
		return nil, err
	}

	entries, err := p.store.GetPayoutAuditLogByReward(ctx, rewardID)
	if err != nil {
		p.logger.Error(ctx, "failed to get audit trail", err)
		return nil, err
	}
	if entries == nil {
		entries = []store.PayoutAuditLogEntry{}
	}
	return entries, nil
}
