package processor

import (
	"context"
	"errors"

	"affiliate-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReferralStatsResponse represents a referrer's summary
type ReferralStatsResponse struct {
	ReferralsByLevel []store.AttributionLevelCount `json:"referrals_by_level"`
	TotalReferrals   int64                         `json:"total_referrals"`
	PendingCredits   int64                         `json:"pending_credits"`
	ClearedCredits   int64                         `json:"cleared_credits"`
	PendingCurrency  decimal.Decimal               `json:"pending_currency"`
	ClearedCurrency  decimal.Decimal               `json:"cleared_currency"`
}

// GetReferralStats aggregates a referrer's active referrals and reward totals
func (p *AffiliateProcessor) GetReferralStats(ctx context.Context, userID uuid.UUID) (ReferralStatsResponse, error) {
	program, err := p.store.GetActiveProgram(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ReferralStatsResponse{}, ErrProgramNotConfigured
		}
		p.logger.Error(ctx, "failed to get active program", err)
		return ReferralStatsResponse{}, err
	}

	counts, err := p.store.CountAttributionsByReferrer(ctx, program.ID, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to count referrals", err)
		return ReferralStatsResponse{}, err
	}
	if counts == nil {
		counts = []store.AttributionLevelCount{}
	}

	totals, err := p.store.GetRewardTotalsByUser(ctx, userID)
	if err != nil {
		p.logger.Error(ctx, "failed to get reward totals", err)
		return ReferralStatsResponse{}, err
	}

	stats := ReferralStatsResponse{
		ReferralsByLevel: counts,
		PendingCurrency:  decimal.Zero,
		ClearedCurrency:  decimal.Zero,
	}
	for _, count := range counts {
		stats.TotalReferrals += count.Total
	}
	for _, total := range totals {
		switch total.Status {
		case store.RewardStatusPending:
			stats.PendingCredits = total.CreditTotal
			stats.PendingCurrency = total.CurrencyTotal
		case store.RewardStatusCleared:
			stats.ClearedCredits = total.CreditTotal
			stats.ClearedCurrency = total.CurrencyTotal
		}
	}

	return stats, nil
}

// ListRewards retrieves a user's reward history with pagination
func (p *AffiliateProcessor) ListRewards(ctx context.Context, userID uuid.UUID, limit, offset int) ([]store.AffiliateReward, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	rewards, err := p.store.GetRewardsByUser(ctx, userID, limit, offset)
	if err != nil {
		p.logger.Error(ctx, "failed to list rewards", err)
		return nil, err
	}
	if rewards == nil {
		rewards = []store.AffiliateReward{}
	}
	return rewards, nil
}
