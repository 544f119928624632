package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"affiliate-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrExpiredToken    = errors.New("token expired")
	ErrParseJWTToken   = errors.New("failed to parse token")
	ErrInvalidJWTToken = errors.New("invalid token")
)

const RoleAdmin = "admin"

// BaseClaims is the claim set issued by the platform's identity service
type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
	Role           string           `json:"role"`
}

func (b *BaseClaims) GetExpirationTime() (*jwt.NumericDate, error) {
	return b.ExpirationTime, nil
}

func (b *BaseClaims) GetIssuedAt() (*jwt.NumericDate, error) {
	return b.IssuedAt, nil
}

func (b *BaseClaims) GetNotBefore() (*jwt.NumericDate, error) {
	return b.NotBefore, nil
}

func (b *BaseClaims) GetIssuer() (string, error) {
	return b.Issuer, nil
}

func (b *BaseClaims) GetSubject() (string, error) {
	return b.Subject, nil
}

func (b *BaseClaims) GetAudience() (jwt.ClaimStrings, error) {
	return b.Audience, nil
}

// Auth validates platform-issued JWTs and guards routes
type Auth struct {
	jwtSecret string
	logger    *observability.Logger
}

func New(jwtSecret string, logger *observability.Logger) Auth {
	return Auth{
		jwtSecret: jwtSecret,
		logger:    logger,
	}
}

func (a *Auth) ValidateJWTToken(ctx context.Context, token string) (BaseClaims, error) {
	var baseClaims BaseClaims
	t, err := jwt.ParseWithClaims(token, &baseClaims, func(token *jwt.Token) (interface{}, error) {
		// Check the signing method
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(a.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			a.logger.Error(ctx, "token expired", err)
			return BaseClaims{}, ErrExpiredToken
		}

		a.logger.Error(ctx, "failed to parse token", err)
		return BaseClaims{}, ErrParseJWTToken
	}
	if !t.Valid {
		return BaseClaims{}, ErrInvalidJWTToken
	}

	claims, ok := t.Claims.(*BaseClaims)
	if !ok {
		a.logger.Error(ctx, "failed to extract claims", err)
		return BaseClaims{}, ErrParseJWTToken
	}

	return *claims, nil
}

// HandleJWTMiddleware authenticates the request and stores the subject and
// role in the gin context for downstream handlers.
func (a *Auth) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is missing or invalid"})
		c.Abort()
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := a.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	sub, err := claims.GetSubject()
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		c.Abort()
		return
	}
	c.Set("User-ID", sub)
	c.Set("User-Role", claims.Role)
	c.Next()
}

// HandleAdminMiddleware allows only tokens carrying the admin role. It must
// run after HandleJWTMiddleware.
func (a *Auth) HandleAdminMiddleware(c *gin.Context) {
	role := c.GetString("User-Role")
	if role != RoleAdmin {
		c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
		c.Abort()
		return
	}
	c.Next()
}
