package handler

import (
	"net/http"

	"survey_platform/internal/logging"
	"survey_platform/internal/middleware"
	"survey_platform/internal/model"
	"survey_platform/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles session token requests
type AuthHandler struct {
	service service.AuthService
	log     logging.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(s service.AuthService, log logging.Logger) *AuthHandler {
	return &AuthHandler{service: s, log: log.With("handler", "auth")}
}

// IssueToken exchanges a client-asserted identity for a session token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req model.Identity
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	token, err := h.service.IssueToken(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, "issue token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout revokes the presented token until it expires.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Revoke(c.Request.Context(), middleware.GetAuthClaims(c)); err != nil {
		respondError(c, h.log, "revoke token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// RegisterAuthRoutes registers auth routes. /logout exists only when a
// revocation store is configured.
func (h *AuthHandler) RegisterAuthRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.POST("/jwt", h.IssueToken)
	if h.service.RevocationEnabled() {
		rg.POST("/logout", authMW, h.Logout)
	}
}
