package api

import (
	"net/http"

	affiliateHandler "affiliate-server/internal/affiliate/handler"
	"affiliate-server/internal/auth"
	webhookHandler "affiliate-server/internal/webhooks/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router           *gin.RouterGroup
	auth             auth.Auth
	affiliateHandler affiliateHandler.Handler
	webhookHandler   webhookHandler.Handler
}

func New(router *gin.RouterGroup, auth auth.Auth, affiliateHandler affiliateHandler.Handler,
	webhookHandler webhookHandler.Handler) API {
	return API{
		router:           router,
		auth:             auth,
		affiliateHandler: affiliateHandler,
		webhookHandler:   webhookHandler,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")
	{
		// Public: signup pages validate codes before account creation
		apiGroup.GET("/affiliate/code/validate", a.affiliateHandler.HandleValidateCode)
	}
	protectedGroup := apiGroup.Group("/affiliate", a.auth.HandleJWTMiddleware)
	{
		protectedGroup.GET("/code", a.affiliateHandler.HandleGetReferralCode)
		protectedGroup.POST("/redeem", a.affiliateHandler.HandleRedeemCode)
		protectedGroup.GET("/stats", a.affiliateHandler.HandleGetStats)
		protectedGroup.GET("/rewards", a.affiliateHandler.HandleListRewards)
		protectedGroup.GET("/credits/balance", a.affiliateHandler.HandleGetCreditBalance)
		protectedGroup.GET("/credits/transactions", a.affiliateHandler.HandleListCreditTransactions)
	}
	adminGroup := apiGroup.Group("/admin/affiliate", a.auth.HandleJWTMiddleware, a.auth.HandleAdminMiddleware)
	{
		adminGroup.POST("/programs", a.affiliateHandler.HandleCreateProgram)
		adminGroup.GET("/programs/active", a.affiliateHandler.HandleGetActiveProgram)
		adminGroup.GET("/payouts", a.affiliateHandler.HandleGetPayoutQueue)
		adminGroup.POST("/rewards/:reward_id/approve", a.affiliateHandler.HandleApprovePayout)
		adminGroup.POST("/rewards/:reward_id/reject", a.affiliateHandler.HandleRejectPayout)
		adminGroup.POST("/rewards/:reward_id/paid", a.affiliateHandler.HandleMarkPayoutPaid)
		adminGroup.GET("/rewards/:reward_id/audit", a.affiliateHandler.HandleGetRewardAuditTrail)
	}
	apiGroup.POST("/billing/webhook", a.webhookHandler.HandleWebhook)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
