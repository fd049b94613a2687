package handler

import (
	"net/http"

	"survey_platform/internal/logging"
	"survey_platform/internal/model"
	"survey_platform/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles user and role requests
type UserHandler struct {
	service service.UserService
	log     logging.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(s service.UserService, log logging.Logger) *UserHandler {
	return &UserHandler{service: s, log: log.With("handler", "users")}
}

// ListUsers handles listing all users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateUser handles idempotent user registration
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.log, "create user", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// roleCheck answers {<key>: bool} for the role of the :email path parameter.
func (h *UserHandler) roleCheck(role model.Role, key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := h.service.HasRole(c.Request.Context(), c.Param("email"), role)
		if err != nil {
			respondError(c, h.log, "check role", err)
			return
		}
		c.JSON(http.StatusOK, gin.H{key: ok})
	}
}

func (h *UserHandler) grantRole(role model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		res, err := h.service.GrantRole(c.Request.Context(), c.Param("id"), role)
		if err != nil {
			respondError(c, h.log, "grant role", err)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// DeleteUser handles user deletion
func (h *UserHandler) DeleteUser(c *gin.Context) {
	res, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "delete user", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RegisterUserRoutes registers user routes
func (h *UserHandler) RegisterUserRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	users := rg.Group("/users")
	{
		users.POST("", h.CreateUser)
		users.GET("/pro-user/:email", h.roleCheck(model.RoleProUser, "prouser"))

		users.GET("/admin/:email", authMW, h.roleCheck(model.RoleAdmin, "admin"))
		users.GET("/surveyor/:email", authMW, h.roleCheck(model.RoleSurveyor, "surveyor"))

		users.GET("", authMW, adminMW, h.ListUsers)
		users.PATCH("/admin/:id", authMW, adminMW, h.grantRole(model.RoleAdmin))
		users.PATCH("/surveyor/:id", authMW, adminMW, h.grantRole(model.RoleSurveyor))
		users.DELETE("/:id", authMW, adminMW, h.DeleteUser)
	}
}
