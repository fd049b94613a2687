package middleware

import (
	"context"

	"survey_platform/internal/logging"
	"survey_platform/internal/metrics"
	"survey_platform/internal/model"

	"github.com/gin-gonic/gin"
)

// RoleChecker reports whether the stored role of a user equals role.
type RoleChecker interface {
	HasRole(ctx context.Context, email string, role model.Role) (bool, error)
}

// RoleMiddleware admits the request only if the authenticated user's stored
// role equals role. It must run after JWTAuthMiddleware. The role is read from
// the store on every request, so role changes apply immediately.
func RoleMiddleware(checker RoleChecker, role model.Role, rec *metrics.Recorder, log logging.Logger) gin.HandlerFunc {
	guard := string(role)
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		email := GetAuthEmail(c)
		if email == "" {
			rec.RecordAuthDecision(ctx, guard, metrics.OutcomeForbidden)
			abortForbidden(c)
			return
		}

		ok, err := checker.HasRole(ctx, email, role)
		if err != nil {
			log.Error(ctx, "check user role", "role", guard, "err", err)
			rec.RecordAuthDecision(ctx, guard, metrics.OutcomeError)
			abortInternal(c)
			return
		}
		if !ok {
			rec.RecordAuthDecision(ctx, guard, metrics.OutcomeForbidden)
			abortForbidden(c)
			return
		}

		rec.RecordAuthDecision(ctx, guard, metrics.OutcomeAllowed)
		c.Next()
	}
}

// AdminMiddleware checks if the user is an admin
func AdminMiddleware(checker RoleChecker, rec *metrics.Recorder, log logging.Logger) gin.HandlerFunc {
	return RoleMiddleware(checker, model.RoleAdmin, rec, log)
}

// SurveyorMiddleware checks if the user is a surveyor
func SurveyorMiddleware(checker RoleChecker, rec *metrics.Recorder, log logging.Logger) gin.HandlerFunc {
	return RoleMiddleware(checker, model.RoleSurveyor, rec, log)
}
