package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateReferralCodeParams represents parameters for creating a referral code
type CreateReferralCodeParams struct {
	UserID    uuid.UUID
	ProgramID uuid.UUID
	Code      string
}

const sqlCreateReferralCode = `
INSERT INTO referral_codes (user_id, program_id, code)
VALUES ($1, $2, $3)
RETURNING id, user_id, program_id, code, is_active, created_at
`

// CreateReferralCode creates a new referral code. Returns ErrDuplicate when
// the code string collides with an existing one or the user already holds an
// active code for the program.
func (s *Store) CreateReferralCode(ctx context.Context, params CreateReferralCodeParams) (ReferralCode, error) {
	var code ReferralCode
	err := s.db.GetContext(ctx, &code, sqlCreateReferralCode,
		params.UserID,
		params.ProgramID,
		params.Code)
	if err != nil {
		if isUniqueViolation(err) {
			return ReferralCode{}, ErrDuplicate
		}
		return ReferralCode{}, fmt.Errorf("failed to create referral code: %w", err)
	}
	return code, nil
}

const sqlGetActiveReferralCodeByUser = `
SELECT id, user_id, program_id, code, is_active, created_at
FROM referral_codes
WHERE user_id = $1 AND program_id = $2 AND is_active = TRUE
`

// GetActiveReferralCodeByUser retrieves the user's active code for a program
func (s *Store) GetActiveReferralCodeByUser(ctx context.Context, userID, programID uuid.UUID) (ReferralCode, error) {
	var code ReferralCode
	err := s.db.GetContext(ctx, &code, sqlGetActiveReferralCodeByUser, userID, programID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralCode{}, ErrNotFound
		}
		return ReferralCode{}, fmt.Errorf("failed to get active referral code by user: %w", err)
	}
	return code, nil
}

const sqlGetReferralCodeByCode = `
SELECT id, user_id, program_id, code, is_active, created_at
FROM referral_codes
WHERE code = $1
`

// GetReferralCodeByCode retrieves a referral code by its code string
func (s *Store) GetReferralCodeByCode(ctx context.Context, code string) (ReferralCode, error) {
	var referralCode ReferralCode
	err := s.db.GetContext(ctx, &referralCode, sqlGetReferralCodeByCode, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ReferralCode{}, ErrNotFound
		}
		return ReferralCode{}, fmt.Errorf("failed to get referral code by code: %w", err)
	}
	return referralCode, nil
}

const sqlDeactivateReferralCode = `
UPDATE referral_codes
SET is_active = FALSE
WHERE id = $1 AND is_active = TRUE
`

// DeactivateReferralCode soft-deactivates a referral code
func (s *Store) DeactivateReferralCode(ctx context.Context, codeID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeactivateReferralCode, codeID)
	if err != nil {
		return fmt.Errorf("failed to deactivate referral code: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
