package processor

import (
	"context"
	"errors"
	"fmt"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
)

// ChainEntry represents one resolved level of a referral chain
type ChainEntry struct {
	Level          int       `json:"level"`
	ReferrerUserID uuid.UUID `json:"referrer_user_id"`
	ReferralCodeID uuid.UUID `json:"referral_code_id"`
}

// buildAttributionChain resolves the ordered list of upstream referrers for a
// newly referred user, starting with the redeemed code's owner at level 1 and
// walking each referrer's own level-1 attribution upward, bounded by the
// program's max_levels. A referrer that re-appears (a data-integrity cycle)
// truncates the chain instead of looping.
func (p *AffiliateProcessor) buildAttributionChain(ctx context.Context, program store.AffiliateProgram, code store.ReferralCode, referredUserID uuid.UUID) ([]ChainEntry, error) {
	chain := []ChainEntry{{
		Level:          1,
		ReferrerUserID: code.UserID,
		ReferralCodeID: code.ID,
	}}

	visited := map[uuid.UUID]bool{
		referredUserID: true,
		code.UserID:    true,
	}

	current := code.UserID
	for level := 2; level <= program.MaxLevels; level++ {
		upstream, err := p.store.GetActiveLevel1Attribution(ctx, program.ID, current)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// Current referrer is organic; the chain ends here.
				break
			}
			p.logger.Error(ctx, "failed to look up upstream attribution", err)
			return nil, fmt.Errorf("failed to look up upstream attribution at level %d: %w", level, err)
		}

		if visited[upstream.ReferrerUserID] {
			ctx = observability.WithFields(ctx,
				observability.Field{Key: "referrer_user_id", Value: upstream.ReferrerUserID.String()},
				observability.Field{Key: "level", Value: level},
			)
			p.logger.Warn(ctx, "referral chain cycle detected, truncating chain")
			break
		}

		chain = append(chain, ChainEntry{
			Level:          level,
			ReferrerUserID: upstream.ReferrerUserID,
			ReferralCodeID: upstream.ReferralCodeID,
		})
		visited[upstream.ReferrerUserID] = true
		current = upstream.ReferrerUserID
	}

	return chain, nil
}
