package handler

import (
	"errors"
	"net/http"

	"survey_platform/internal/logging"
	"survey_platform/internal/service"
	"survey_platform/internal/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps a service error to its HTTP status. Unmapped errors are
// logged and reported as a bare 500 so store and gateway details never leak.
func respondError(c *gin.Context, log logging.Logger, op string, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "unauthorized access"})
	case errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrInvalidRole),
		errors.Is(err, service.ErrInvalidPrice),
		errors.Is(err, utils.ErrMissingEmail):
		c.JSON(http.StatusBadRequest, gin.H{"message": rootMessage(err)})
	case errors.Is(err, service.ErrSurveyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": service.ErrSurveyNotFound.Error()})
	case errors.Is(err, service.ErrAlreadyVoted):
		c.JSON(http.StatusConflict, gin.H{"message": service.ErrAlreadyVoted.Error()})
	case errors.Is(err, service.ErrRevocationDisabled):
		c.JSON(http.StatusNotImplemented, gin.H{"message": service.ErrRevocationDisabled.Error()})
	case errors.Is(err, service.ErrPaymentGateway):
		log.Error(c.Request.Context(), op, "err", err)
		c.JSON(http.StatusBadGateway, gin.H{"message": service.ErrPaymentGateway.Error()})
	default:
		log.Error(c.Request.Context(), op, "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
	}
}

func rootMessage(err error) string {
	for _, sentinel := range []error{service.ErrInvalidID, service.ErrInvalidRole, service.ErrInvalidPrice, utils.ErrMissingEmail} {
		if errors.Is(err, sentinel) {
			return sentinel.Error()
		}
	}
	return err.Error()
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request: " + err.Error()})
}
