package processor

import (
	"context"
	"time"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

// ReleaseMaturedRewards transitions pending rewards whose maturation
// timestamp has passed to cleared, applying registration credits to the
// wallet first. A reward whose wallet credit fails is left pending so the
// next sweep retries it; the failure never aborts the rest of the sweep.
// Returns the number of rewards cleared.
func (p *AffiliateProcessor) ReleaseMaturedRewards(ctx context.Context, referenceDate time.Time) (int, error) {
	rewards, err := p.store.GetMaturedPendingRewards(ctx, referenceDate, p.maturationBatch)
	if err != nil {
		p.logger.Error(ctx, "failed to select matured rewards", err)
		return 0, err
	}
	if len(rewards) == 0 {
		return 0, nil
	}

	clearable := make([]uuid.UUID, 0, len(rewards))
	for _, reward := range rewards {
		if reward.Type == store.RewardTypeRegistrationCredit && reward.CreditAmount != nil && *reward.CreditAmount > 0 {
			err := p.wallet.AddCredits(ctx, reward.UserID, *reward.CreditAmount,
				store.CreditTransactionTypeReferralReward,
				"Referral registration reward",
				map[string]interface{}{
					"reward_id":      reward.ID.String(),
					"attribution_id": reward.AttributionID.String(),
					"level":          reward.Level,
				})
			if err != nil {
				rewardCtx := observability.WithFields(ctx,
					observability.Field{Key: "reward_id", Value: reward.ID.String()},
					observability.Field{Key: "user_id", Value: reward.UserID.String()},
				)
				p.logger.Error(rewardCtx, "failed to apply credits for matured reward, leaving pending", err)
				continue
			}
		}
		clearable = append(clearable, reward.ID)
	}

	if len(clearable) == 0 {
		return 0, nil
	}

	cleared, err := p.store.MarkRewardsCleared(ctx, clearable, referenceDate)
	if err != nil {
		p.logger.Error(ctx, "failed to mark rewards cleared", err)
		return 0, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "rewards_selected", Value: len(rewards)},
		observability.Field{Key: "rewards_cleared", Value: cleared},
	)
	p.logger.Info(ctx, "matured rewards released")
	return int(cleared), nil
}
