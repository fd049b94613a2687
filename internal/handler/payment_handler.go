package handler

import (
	"net/http"

	"survey_platform/internal/logging"
	"survey_platform/internal/middleware"
	"survey_platform/internal/model"
	"survey_platform/internal/service"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles payment intent and payment record requests
type PaymentHandler struct {
	service service.PaymentService
	log     logging.Logger
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(s service.PaymentService, log logging.Logger) *PaymentHandler {
	return &PaymentHandler{service: s, log: log.With("handler", "payments")}
}

// CreatePaymentIntent handles creating a gateway payment intent
func (h *PaymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req model.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	secret, err := h.service.CreateIntent(c.Request.Context(), *req.Price)
	if err != nil {
		respondError(c, h.log, "create payment intent", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

// ListPayments handles listing all payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, h.log, "list payments", err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// RecordPayment stores a payment by the authenticated user and promotes them to prouser.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req model.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := h.service.Record(c.Request.Context(), middleware.GetAuthEmail(c), req)
	if err != nil {
		respondError(c, h.log, "record payment", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// RegisterPaymentRoutes registers payment routes
func (h *PaymentHandler) RegisterPaymentRoutes(rg *gin.RouterGroup, authMW, adminMW gin.HandlerFunc) {
	rg.POST("/create-payment-intent", authMW, h.CreatePaymentIntent)

	rg.GET("/payments", authMW, adminMW, h.ListPayments)
	rg.POST("/payments", authMW, h.RecordPayment)
}
