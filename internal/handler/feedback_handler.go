package handler

import (
	"net/http"

	"survey_platform/internal/logging"
	"survey_platform/internal/middleware"
	"survey_platform/internal/model"
	"survey_platform/internal/service"

	"github.com/gin-gonic/gin"
)

// FeedbackHandler handles comment and report requests
type FeedbackHandler struct {
	service service.FeedbackService
	log     logging.Logger
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(s service.FeedbackService, log logging.Logger) *FeedbackHandler {
	return &FeedbackHandler{service: s, log: log.With("handler", "feedback")}
}

// ListComments handles listing comments, optionally for one survey
func (h *FeedbackHandler) ListComments(c *gin.Context) {
	comments, err := h.service.ListComments(c.Request.Context(), c.Query("surveyId"))
	if err != nil {
		respondError(c, h.log, "list comments", err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

// AddComment handles a comment by the authenticated user
func (h *FeedbackHandler) AddComment(c *gin.Context) {
	var req model.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.AddComment(c.Request.Context(), middleware.GetAuthEmail(c), req)
	if err != nil {
		respondError(c, h.log, "add comment", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ListReports handles listing all reports
func (h *FeedbackHandler) ListReports(c *gin.Context) {
	reports, err := h.service.ListReports(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "list reports", err)
		return
	}
	c.JSON(http.StatusOK, reports)
}

// AddReport handles a report by the authenticated user
func (h *FeedbackHandler) AddReport(c *gin.Context) {
	var req model.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.AddReport(c.Request.Context(), middleware.GetAuthEmail(c), req)
	if err != nil {
		respondError(c, h.log, "add report", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RegisterFeedbackRoutes registers comment and report routes on the /api/v1 group
func (h *FeedbackHandler) RegisterFeedbackRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.GET("/comment", h.ListComments)
	rg.POST("/comment", authMW, h.AddComment)

	rg.GET("/report", authMW, adminMW, h.ListReports)
	rg.POST("/report", authMW, h.AddReport)
}
