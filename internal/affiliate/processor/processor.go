package processor

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"affiliate-server/internal/observability"
	"affiliate-server/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrSelfReferral         = errors.New("user cannot redeem their own referral code")
	ErrInvalidReferralCode  = errors.New("referral code not found, inactive or for a different program")
	ErrProgramNotConfigured = errors.New("no active affiliate program configured")
	ErrDuplicateEvent       = errors.New("event already processed")
	ErrRewardNotFound       = errors.New("reward not found")
	ErrRewardStateConflict  = errors.New("reward not in required state for this action")
	ErrInvalidProgram       = errors.New("invalid program configuration")
)

const (
	referralCodeLength   = 10
	referralCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

	// Retries for the negligible chance of a generated code colliding with
	// an existing one.
	maxCodeGenerationAttempts = 5
)

// AffiliateProcessor implements referral attribution, the reward ledger and
// payout audit actions as a stateless service over its injected dependencies.
type AffiliateProcessor struct {
	store           AffiliateStore
	wallet          CreditWallet
	logger          *observability.Logger
	maturationBatch int
}

func New(store AffiliateStore, wallet CreditWallet, logger *observability.Logger, maturationBatch int) AffiliateProcessor {
	if maturationBatch <= 0 {
		maturationBatch = 500
	}
	return AffiliateProcessor{
		store:           store,
		wallet:          wallet,
		logger:          logger,
		maturationBatch: maturationBatch,
	}
}

// CreateProgramRequest represents a request to configure a new program
type CreateProgramRequest struct {
	Name                  string                `json:"name"`
	BaseCommissionRate    decimal.Decimal       `json:"base_commission_rate"`
	MaxLevels             int                   `json:"max_levels"`
	RegistrationCredit    int64                 `json:"registration_credit"`
	SubscriptionGraceDays int                   `json:"subscription_grace_days"`
	RewardPendingDays     int                   `json:"reward_pending_days"`
	LifetimeCommissions   bool                  `json:"lifetime_commissions"`
	Levels                []ProgramLevelRequest `json:"levels"`
}

// ProgramLevelRequest represents a per-level override in a program request
type ProgramLevelRequest struct {
	Level          int              `json:"level"`
	CommissionRate *decimal.Decimal `json:"commission_rate,omitempty"`
	CreditReward   *int64           `json:"credit_reward,omitempty"`
}

// CreateProgram configures a new active program, replacing the previous one.
// Programs are immutable once created; there is no update path.
func (p *AffiliateProcessor) CreateProgram(ctx context.Context, req CreateProgramRequest) (store.AffiliateProgram, error) {
	if req.MaxLevels < 1 {
		return store.AffiliateProgram{}, fmt.Errorf("%w: max_levels must be at least 1", ErrInvalidProgram)
	}
	if req.BaseCommissionRate.IsNegative() {
		return store.AffiliateProgram{}, fmt.Errorf("%w: base_commission_rate must not be negative", ErrInvalidProgram)
	}
	for _, level := range req.Levels {
		if level.Level < 1 || level.Level > req.MaxLevels {
			return store.AffiliateProgram{}, fmt.Errorf("%w: level %d outside 1..%d", ErrInvalidProgram, level.Level, req.MaxLevels)
		}
	}

	params := store.CreateProgramParams{
		Name:                  req.Name,
		BaseCommissionRate:    req.BaseCommissionRate,
		MaxLevels:             req.MaxLevels,
		RegistrationCredit:    req.RegistrationCredit,
		SubscriptionGraceDays: req.SubscriptionGraceDays,
		RewardPendingDays:     req.RewardPendingDays,
		LifetimeCommissions:   req.LifetimeCommissions,
	}
	for _, level := range req.Levels {
		params.Levels = append(params.Levels, store.CreateProgramLevelParams{
			Level:          level.Level,
			CommissionRate: level.CommissionRate,
			CreditReward:   level.CreditReward,
		})
	}

	program, err := p.store.CreateProgram(ctx, params)
	if err != nil {
		p.logger.Error(ctx, "failed to create program", err)
		return store.AffiliateProgram{}, err
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "program_id", Value: program.ID.String()})
	p.logger.Info(ctx, "affiliate program created")
	return program, nil
}

// ProgramResponse pairs a program with its per-level overrides
type ProgramResponse struct {
	Program store.AffiliateProgram `json:"program"`
	Levels  []store.ProgramLevel   `json:"levels"`
}

// GetActiveProgram returns the currently active program and its levels
func (p *AffiliateProcessor) GetActiveProgram(ctx context.Context) (ProgramResponse, error) {
	program, err := p.store.GetActiveProgram(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ProgramResponse{}, ErrProgramNotConfigured
		}
		p.logger.Error(ctx, "failed to get active program", err)
		return ProgramResponse{}, err
	}

	levels, err := p.store.GetProgramLevels(ctx, program.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to get program levels", err)
		return ProgramResponse{}, err
	}
	if levels == nil {
		levels = []store.ProgramLevel{}
	}

	return ProgramResponse{Program: program, Levels: levels}, nil
}

// EnsureCode returns the user's active referral code for the active program,
// generating a new unique one on first use.
func (p *AffiliateProcessor) EnsureCode(ctx context.Context, userID uuid.UUID) (store.ReferralCode, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	program, err := p.store.GetActiveProgram(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReferralCode{}, ErrProgramNotConfigured
		}
		p.logger.Error(ctx, "failed to get active program", err)
		return store.ReferralCode{}, err
	}

	code, err := p.store.GetActiveReferralCodeByUser(ctx, userID, program.ID)
	if err == nil {
		return code, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		p.logger.Error(ctx, "failed to get referral code by user", err)
		return store.ReferralCode{}, err
	}

	for attempt := 0; attempt < maxCodeGenerationAttempts; attempt++ {
		generated, err := generateReferralCode()
		if err != nil {
			return store.ReferralCode{}, fmt.Errorf("failed to generate referral code: %w", err)
		}

		code, err = p.store.CreateReferralCode(ctx, store.CreateReferralCodeParams{
			UserID:    userID,
			ProgramID: program.ID,
			Code:      generated,
		})
		if err == nil {
			p.logger.Info(ctx, "referral code created")
			return code, nil
		}
		if !errors.Is(err, store.ErrDuplicate) {
			p.logger.Error(ctx, "failed to create referral code", err)
			return store.ReferralCode{}, err
		}

		// Either the generated string collided or a concurrent request
		// created the user's code first. The latter wins the race.
		existing, getErr := p.store.GetActiveReferralCodeByUser(ctx, userID, program.ID)
		if getErr == nil {
			return existing, nil
		}
		if !errors.Is(getErr, store.ErrNotFound) {
			p.logger.Error(ctx, "failed to re-check referral code after collision", getErr)
			return store.ReferralCode{}, getErr
		}
	}

	return store.ReferralCode{}, fmt.Errorf("failed to generate a unique referral code after %d attempts", maxCodeGenerationAttempts)
}

// ValidateCode returns the referral code only if it is active and belongs to
// the currently active program.
func (p *AffiliateProcessor) ValidateCode(ctx context.Context, code string) (store.ReferralCode, error) {
	program, err := p.store.GetActiveProgram(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReferralCode{}, ErrProgramNotConfigured
		}
		p.logger.Error(ctx, "failed to get active program", err)
		return store.ReferralCode{}, err
	}
	return p.validateCodeForProgram(ctx, code, program)
}

func (p *AffiliateProcessor) validateCodeForProgram(ctx context.Context, code string, program store.AffiliateProgram) (store.ReferralCode, error) {
	referralCode, err := p.store.GetReferralCodeByCode(ctx, code)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ReferralCode{}, ErrInvalidReferralCode
		}
		p.logger.Error(ctx, "failed to get referral code", err)
		return store.ReferralCode{}, err
	}

	if !referralCode.IsActive || referralCode.ProgramID != program.ID {
		return store.ReferralCode{}, ErrInvalidReferralCode
	}
	return referralCode, nil
}

func generateReferralCode() (string, error) {
	alphabetLen := big.NewInt(int64(len(referralCodeAlphabet)))
	code := make([]byte, referralCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", err
		}
		code[i] = referralCodeAlphabet[n.Int64()]
	}
	return string(code), nil
}
