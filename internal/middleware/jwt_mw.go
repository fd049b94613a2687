package middleware

import (
	"errors"
	"net/http"
	"strings"

	"survey_platform/internal/logging"
	"survey_platform/internal/metrics"
	"survey_platform/internal/service"
	"survey_platform/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthClaimsKey = "authClaims"
	AuthEmailKey  = "authEmail"
)

const guardAuth = "auth"

// JWTAuthMiddleware verifies the session token of the Authorization header and
// stores the decoded claims in the request context.
func JWTAuthMiddleware(auth service.AuthService, rec *metrics.Recorder, log logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			rec.RecordAuthDecision(ctx, guardAuth, metrics.OutcomeUnauthorized)
			abortUnauthorized(c)
			return
		}

		// The scheme word is not checked; the token is the second segment.
		var tokenString string
		if parts := strings.Fields(authHeader); len(parts) > 1 {
			tokenString = parts[1]
		}

		claims, err := auth.Authenticate(ctx, tokenString)
		if err != nil {
			if errors.Is(err, service.ErrUnauthorized) {
				rec.RecordAuthDecision(ctx, guardAuth, metrics.OutcomeUnauthorized)
				abortUnauthorized(c)
				return
			}
			log.Error(ctx, "authenticate request", "err", err)
			rec.RecordAuthDecision(ctx, guardAuth, metrics.OutcomeError)
			abortInternal(c)
			return
		}

		rec.RecordAuthDecision(ctx, guardAuth, metrics.OutcomeAllowed)
		c.Set(AuthClaimsKey, claims)
		c.Set(AuthEmailKey, claims.Email)

		c.Next()
	}
}

// GetAuthClaims returns the claims set by JWTAuthMiddleware, or nil.
func GetAuthClaims(c *gin.Context) *utils.JWTClaims {
	v, exists := c.Get(AuthClaimsKey)
	if !exists {
		return nil
	}
	claims, _ := v.(*utils.JWTClaims)
	return claims
}

// GetAuthEmail returns the authenticated email, or "" when there is none.
func GetAuthEmail(c *gin.Context) string {
	return c.GetString(AuthEmailKey)
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
}

func abortForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
}

func abortInternal(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
}
