package processor

import (
	"context"
	"errors"
	"time"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

// ApplyReferralCodeResult represents the chain persisted for a registration
type ApplyReferralCodeResult struct {
	Attributions []store.ReferralAttribution `json:"attributions"`
	Rewards      []store.AffiliateReward     `json:"rewards"`
}

// ApplyReferralCode attributes a newly registered user to the referral chain
// behind the redeemed code and creates the pending registration-credit
// rewards. The whole chain is persisted atomically. Re-applying a code for an
// already-attributed user is a no-op.
func (p *AffiliateProcessor) ApplyReferralCode(ctx context.Context, code string, referredUserID uuid.UUID, now time.Time) (ApplyReferralCodeResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "referred_user_id", Value: referredUserID.String()},
		observability.Field{Key: "referral_code", Value: code},
	)

	program, err := p.store.GetActiveProgram(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ApplyReferralCodeResult{}, ErrProgramNotConfigured
		}
		p.logger.Error(ctx, "failed to get active program", err)
		return ApplyReferralCodeResult{}, err
	}

	referralCode, err := p.validateCodeForProgram(ctx, code, program)
	if err != nil {
		return ApplyReferralCodeResult{}, err
	}

	if referralCode.UserID == referredUserID {
		return ApplyReferralCodeResult{}, ErrSelfReferral
	}

	// A user is attributed to a chain exactly once.
	_, err = p.store.GetAttributionByReferredUser(ctx, program.ID, referredUserID)
	if err == nil {
		p.logger.Info(ctx, "user already attributed, skipping")
		return ApplyReferralCodeResult{}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to check existing attribution", err)
		return ApplyReferralCodeResult{}, err
	}

	chain, err := p.buildAttributionChain(ctx, program, referralCode, referredUserID)
	if err != nil {
		return ApplyReferralCodeResult{}, err
	}

	levels, err := p.store.GetProgramLevels(ctx, program.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to get program levels", err)
		return ApplyReferralCodeResult{}, err
	}
	levelConfig := indexLevels(levels)

	params := store.CreateAttributionChainParams{
		ProgramID:      program.ID,
		ReferredUserID: referredUserID,
		AttributedAt:   now,
		PendingUntil:   now.AddDate(0, 0, program.RewardPendingDays),
	}
	for _, entry := range chain {
		params.Entries = append(params.Entries, store.ChainEntryParams{
			Level:          entry.Level,
			ReferrerUserID: entry.ReferrerUserID,
			ReferralCodeID: entry.ReferralCodeID,
			CreditAmount:   registrationCreditForLevel(program, levelConfig, entry.Level),
		})
	}

	attributions, rewards, err := p.store.CreateAttributionChain(ctx, params)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// A concurrent registration event attributed the user first.
			p.logger.Info(ctx, "concurrent attribution detected, skipping")
			return ApplyReferralCodeResult{}, nil
		}
		p.logger.Error(ctx, "failed to create attribution chain", err)
		return ApplyReferralCodeResult{}, err
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "chain_depth", Value: len(attributions)},
		observability.Field{Key: "rewards_created", Value: len(rewards)},
	)
	p.logger.Info(ctx, "referral chain attributed")

	return ApplyReferralCodeResult{Attributions: attributions, Rewards: rewards}, nil
}

// registrationCreditForLevel resolves the signup credit for a chain level.
// Level 1 falls back to the program's registration credit when no override
// exists; deeper levels earn only with an explicit override.
func registrationCreditForLevel(program store.AffiliateProgram, levels map[int]store.ProgramLevel, level int) int64 {
	if config, ok := levels[level]; ok && config.CreditReward != nil {
		return *config.CreditReward
	}
	if level == 1 {
		return program.RegistrationCredit
	}
	return 0
}

func indexLevels(levels []store.ProgramLevel) map[int]store.ProgramLevel {
	indexed := make(map[int]store.ProgramLevel, len(levels))
	for _, level := range levels {
		indexed[level.Level] = level
	}
	return indexed
}
