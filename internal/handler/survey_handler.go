package handler

import (
	"net/http"

	"survey_platform/internal/logging"
	"survey_platform/internal/middleware"
	"survey_platform/internal/model"
	"survey_platform/internal/service"

	"github.com/gin-gonic/gin"
)

// SurveyHandler handles survey and vote requests
type SurveyHandler struct {
	service service.SurveyService
	log     logging.Logger
}

// NewSurveyHandler creates a new SurveyHandler
func NewSurveyHandler(s service.SurveyService, log logging.Logger) *SurveyHandler {
	return &SurveyHandler{service: s, log: log.With("handler", "surveys")}
}

// ListSurveys handles listing all surveys
func (h *SurveyHandler) ListSurveys(c *gin.Context) {
	surveys, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "list surveys", err)
		return
	}
	c.JSON(http.StatusOK, surveys)
}

// LatestSurveys handles listing the newest surveys
func (h *SurveyHandler) LatestSurveys(c *gin.Context) {
	surveys, err := h.service.Latest(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "latest surveys", err)
		return
	}
	c.JSON(http.StatusOK, surveys)
}

// GetSurvey handles fetching one survey by ID
func (h *SurveyHandler) GetSurvey(c *gin.Context) {
	survey, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "get survey", err)
		return
	}
	c.JSON(http.StatusOK, survey)
}

// CreateSurvey handles survey creation
func (h *SurveyHandler) CreateSurvey(c *gin.Context) {
	var req model.SurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.Create(c.Request.Context(), middleware.GetAuthEmail(c), req)
	if err != nil {
		respondError(c, h.log, "create survey", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// UpdateSurvey handles overwriting a survey's editable fields
func (h *SurveyHandler) UpdateSurvey(c *gin.Context) {
	var req model.SurveyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.Update(c.Request.Context(), c.Param("surveyId"), req)
	if err != nil {
		respondError(c, h.log, "update survey", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// DeleteSurvey handles survey deletion
func (h *SurveyHandler) DeleteSurvey(c *gin.Context) {
	res, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.log, "delete survey", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// VoteSurvey handles a yes/no vote by the authenticated user
func (h *SurveyHandler) VoteSurvey(c *gin.Context) {
	var req model.VoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.Vote(c.Request.Context(), c.Param("id"), middleware.GetAuthEmail(c), req.Vote)
	if err != nil {
		respondError(c, h.log, "vote survey", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RegisterSurveyRoutes registers survey routes on the /api/v1 group
func (h *SurveyHandler) RegisterSurveyRoutes(rg *gin.RouterGroup, authMW, surveyorMW gin.HandlerFunc) {
	rg.GET("/show-survey", h.ListSurveys)
	rg.GET("/latest-survey", h.LatestSurveys)
	rg.GET("/update-survey/:id", h.GetSurvey)

	rg.POST("/create-survey", authMW, surveyorMW, h.CreateSurvey)
	rg.PATCH("/:surveyId/update-survey", authMW, surveyorMW, h.UpdateSurvey)
	rg.DELETE("/delete-survey/:id", authMW, surveyorMW, h.DeleteSurvey)

	rg.POST("/vote-survey/:id", authMW, h.VoteSurvey)
}
