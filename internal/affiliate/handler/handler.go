package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"affiliate-server/internal/affiliate/processor"
	"affiliate-server/internal/apierrors"
	"affiliate-server/internal/observability"
	"affiliate-server/internal/wallet"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.AffiliateProcessor
	wallet    wallet.Service
	logger    *observability.Logger
}

func New(processor processor.AffiliateProcessor, wallet wallet.Service, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		wallet:    wallet,
		logger:    logger,
	}
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrProgramNotConfigured):
		apierrors.NotFound(c, "No active affiliate program")
	case errors.Is(err, processor.ErrInvalidReferralCode):
		apierrors.BadRequest(c, "INVALID_REFERRAL_CODE", "Referral code is invalid or inactive")
	case errors.Is(err, processor.ErrSelfReferral):
		apierrors.BadRequest(c, "SELF_REFERRAL", "You cannot redeem your own referral code")
	case errors.Is(err, processor.ErrInvalidProgram):
		apierrors.BadRequest(c, "INVALID_PROGRAM", err.Error())
	case errors.Is(err, processor.ErrRewardNotFound):
		apierrors.NotFound(c, "Reward not found")
	case errors.Is(err, processor.ErrRewardStateConflict):
		apierrors.Conflict(c, "REWARD_STATE_CONFLICT", "Reward is not in the required state for this action")
	default:
		apierrors.InternalError(c, err)
	}
}

// userIDFromContext extracts the authenticated user set by the JWT middleware
func userIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get("User-ID")
	if !exists {
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(raw.(string))
	if err != nil {
		return uuid.Nil, false
	}
	return userID, true
}

func paginationParams(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

// HandleGetReferralCode handles GET /affiliate/code. It returns the caller's
// referral code, creating one on first use.
func (h *Handler) HandleGetReferralCode(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "unauthorized")
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	code, err := h.processor.EnsureCode(ctx, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, code)
}

// HandleValidateCode handles GET /affiliate/code/validate?code=X without
// authentication, so signup pages can check a code before account creation.
func (h *Handler) HandleValidateCode(c *gin.Context) {
	ctx := c.Request.Context()

	code := c.Query("code")
	if code == "" {
		apierrors.BadRequest(c, "INVALID_INPUT", "code query parameter is required")
		return
	}

	_, err := h.processor.ValidateCode(ctx, code)
	if err != nil {
		if errors.Is(err, processor.ErrInvalidReferralCode) || errors.Is(err, processor.ErrProgramNotConfigured) {
			c.JSON(http.StatusOK, gin.H{"valid": false})
			return
		}
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// RedeemCodeRequest represents the HTTP request for redeeming a referral code
type RedeemCodeRequest struct {
	ReferralCode string `json:"referral_code" binding:"required"`
}

// HandleRedeemCode handles POST /affiliate/redeem. The caller becomes the
// referred user; redeeming twice is a no-op.
func (h *Handler) HandleRedeemCode(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "unauthorized")
		return
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	var req RedeemCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.processor.ApplyReferralCode(ctx, req.ReferralCode, userID, time.Now().UTC())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleGetStats handles GET /affiliate/stats
func (h *Handler) HandleGetStats(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "unauthorized")
		return
	}

	stats, err := h.processor.GetReferralStats(ctx, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HandleListRewards handles GET /affiliate/rewards
func (h *Handler) HandleListRewards(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "unauthorized")
		return
	}

	limit, offset := paginationParams(c)
	rewards, err := h.processor.ListRewards(ctx, userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

// HandleGetCreditBalance handles GET /affiliate/credits/balance
func (h *Handler) HandleGetCreditBalance(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "unauthorized")
		return
	}

	balance, err := h.wallet.GetBalance(ctx, userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"balance": balance})
}

// HandleListCreditTransactions handles GET /affiliate/credits/transactions
func (h *Handler) HandleListCreditTransactions(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := userIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "unauthorized")
		return
	}

	limit, offset := paginationParams(c)
	txns, err := h.wallet.GetTransactions(ctx, userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transactions": txns})
}
