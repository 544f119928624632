package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateProgramParams represents parameters for creating an affiliate program
type CreateProgramParams struct {
	Name                  string
	BaseCommissionRate    decimal.Decimal
	MaxLevels             int
	RegistrationCredit    int64
	SubscriptionGraceDays int
	RewardPendingDays     int
	LifetimeCommissions   bool
	Levels                []CreateProgramLevelParams
}

// CreateProgramLevelParams represents a per-level override for a new program
type CreateProgramLevelParams struct {
	Level          int
	CommissionRate *decimal.Decimal
	CreditReward   *int64
}

const sqlDeactivateActivePrograms = `
UPDATE affiliate_programs
SET is_active = FALSE, deactivated_at = CURRENT_TIMESTAMP
WHERE is_active = TRUE
`

const sqlCreateProgram = `
INSERT INTO affiliate_programs (name, base_commission_rate, max_levels, registration_credit, subscription_grace_days, reward_pending_days, lifetime_commissions, is_active)
VALUES ($1, $2, $3, $4, $5, $6, $7, TRUE)
RETURNING id, name, base_commission_rate, max_levels, registration_credit, subscription_grace_days, reward_pending_days, lifetime_commissions, is_active, created_at, deactivated_at
`

const sqlCreateProgramLevel = `
INSERT INTO program_levels (program_id, level, commission_rate, credit_reward)
VALUES ($1, $2, $3, $4)
RETURNING id, program_id, level, commission_rate, credit_reward, created_at
`

// CreateProgram creates a new active program with its level overrides and
// deactivates the previously active one, all in a single transaction.
func (s *Store) CreateProgram(ctx context.Context, params CreateProgramParams) (AffiliateProgram, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return AffiliateProgram{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, sqlDeactivateActivePrograms); err != nil {
		return AffiliateProgram{}, fmt.Errorf("failed to deactivate active programs: %w", err)
	}

	var program AffiliateProgram
	err = tx.GetContext(ctx, &program, sqlCreateProgram,
		params.Name,
		params.BaseCommissionRate,
		params.MaxLevels,
		params.RegistrationCredit,
		params.SubscriptionGraceDays,
		params.RewardPendingDays,
		params.LifetimeCommissions)
	if err != nil {
		return AffiliateProgram{}, fmt.Errorf("failed to create program: %w", err)
	}

	for _, level := range params.Levels {
		var programLevel ProgramLevel
		err = tx.GetContext(ctx, &programLevel, sqlCreateProgramLevel,
			program.ID,
			level.Level,
			level.CommissionRate,
			level.CreditReward)
		if err != nil {
			return AffiliateProgram{}, fmt.Errorf("failed to create program level %d: %w", level.Level, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return AffiliateProgram{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return program, nil
}

const sqlGetActiveProgram = `
SELECT id, name, base_commission_rate, max_levels, registration_credit, subscription_grace_days, reward_pending_days, lifetime_commissions, is_active, created_at, deactivated_at
FROM affiliate_programs
WHERE is_active = TRUE
`

// GetActiveProgram retrieves the currently active program
func (s *Store) GetActiveProgram(ctx context.Context) (AffiliateProgram, error) {
	var program AffiliateProgram
	err := s.db.GetContext(ctx, &program, sqlGetActiveProgram)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AffiliateProgram{}, ErrNotFound
		}
		return AffiliateProgram{}, fmt.Errorf("failed to get active program: %w", err)
	}
	return program, nil
}

const sqlGetProgramByID = `
SELECT id, name, base_commission_rate, max_levels, registration_credit, subscription_grace_days, reward_pending_days, lifetime_commissions, is_active, created_at, deactivated_at
FROM affiliate_programs
WHERE id = $1
`

// GetProgramByID retrieves a program by ID
func (s *Store) GetProgramByID(ctx context.Context, programID uuid.UUID) (AffiliateProgram, error) {
	var program AffiliateProgram
	err := s.db.GetContext(ctx, &program, sqlGetProgramByID, programID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AffiliateProgram{}, ErrNotFound
		}
		return AffiliateProgram{}, fmt.Errorf("failed to get program by id: %w", err)
	}
	return program, nil
}

const sqlGetProgramLevels = `
SELECT id, program_id, level, commission_rate, credit_reward, created_at
FROM program_levels
WHERE program_id = $1
ORDER BY level ASC
`

// GetProgramLevels retrieves the level overrides for a program
func (s *Store) GetProgramLevels(ctx context.Context, programID uuid.UUID) ([]ProgramLevel, error) {
	var levels []ProgramLevel
	err := s.db.SelectContext(ctx, &levels, sqlGetProgramLevels, programID)
	if err != nil {
		return nil, fmt.Errorf("failed to get program levels: %w", err)
	}
	return levels, nil
}
