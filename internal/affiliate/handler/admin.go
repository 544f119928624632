package handler

import (
	"net/http"

	"affiliate-server/internal/affiliate/processor"
	"affiliate-server/internal/apierrors"
	"affiliate-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HandleCreateProgram handles POST /admin/affiliate/programs. Creating a
// program deactivates the previous one; programs are never edited in place.
func (h *Handler) HandleCreateProgram(c *gin.Context) {
	ctx := c.Request.Context()

	var req processor.CreateProgramRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	program, err := h.processor.CreateProgram(ctx, req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, program)
}

// HandleGetActiveProgram handles GET /admin/affiliate/programs/active
func (h *Handler) HandleGetActiveProgram(c *gin.Context) {
	ctx := c.Request.Context()

	program, err := h.processor.GetActiveProgram(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, program)
}

// HandleGetPayoutQueue handles GET /admin/affiliate/payouts
func (h *Handler) HandleGetPayoutQueue(c *gin.Context) {
	ctx := c.Request.Context()

	limit, offset := paginationParams(c)
	rewards, err := h.processor.GetPayoutQueue(ctx, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rewards": rewards})
}

// PayoutActionRequest carries optional operator notes for a payout action
type PayoutActionRequest struct {
	Notes *string `json:"notes,omitempty"`
}

type payoutAction func(h *Handler, c *gin.Context, rewardID, adminUserID uuid.UUID, notes *string)

func (h *Handler) handlePayoutAction(c *gin.Context, action payoutAction) {
	adminUserID, ok := userIDFromContext(c)
	if !ok {
		apierrors.Unauthorized(c, "unauthorized")
		return
	}

	rewardID, err := uuid.Parse(c.Param("reward_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "invalid reward id")
		return
	}

	var req PayoutActionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.ValidationError(c, err)
			return
		}
	}

	action(h, c, rewardID, adminUserID, req.Notes)
}

// HandleApprovePayout handles POST /admin/affiliate/rewards/:reward_id/approve
func (h *Handler) HandleApprovePayout(c *gin.Context) {
	h.handlePayoutAction(c, func(h *Handler, c *gin.Context, rewardID, adminUserID uuid.UUID, notes *string) {
		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "reward_id", Value: rewardID.String()})

		reward, err := h.processor.ApprovePayout(ctx, rewardID, adminUserID, notes)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, reward)
	})
}

// HandleRejectPayout handles POST /admin/affiliate/rewards/:reward_id/reject
func (h *Handler) HandleRejectPayout(c *gin.Context) {
	h.handlePayoutAction(c, func(h *Handler, c *gin.Context, rewardID, adminUserID uuid.UUID, notes *string) {
		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "reward_id", Value: rewardID.String()})

		reward, err := h.processor.RejectPayout(ctx, rewardID, adminUserID, notes)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, reward)
	})
}

// HandleMarkPayoutPaid handles POST /admin/affiliate/rewards/:reward_id/paid
func (h *Handler) HandleMarkPayoutPaid(c *gin.Context) {
	h.handlePayoutAction(c, func(h *Handler, c *gin.Context, rewardID, adminUserID uuid.UUID, notes *string) {
		ctx := observability.WithFields(c.Request.Context(),
			observability.Field{Key: "reward_id", Value: rewardID.String()})

		reward, err := h.processor.MarkPayoutPaid(ctx, rewardID, adminUserID, notes)
		if err != nil {
			h.handleError(c, err)
			return
		}
		c.JSON(http.StatusOK, reward)
	})
}

// HandleGetRewardAuditTrail handles GET /admin/affiliate/rewards/:reward_id/audit
func (h *Handler) HandleGetRewardAuditTrail(c *gin.Context) {
	ctx := c.Request.Context()

	rewardID, err := uuid.Parse(c.Param("reward_id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "invalid reward id")
		return
	}

	entries, err := h.processor.GetRewardAuditTrail(ctx, rewardID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
