package handlers

import (
	"net/http"

	"AtobaraiGateway/internal/domain/payment"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	service *payment.PaymentService
}

func NewPaymentHandler(s *payment.PaymentService) PaymentHandler {
	return PaymentHandler{service: s}
}

// Process runs one authorization attempt. The gateway outcome, refusals and
// provider errors included, is data: it always answers 200 with the
// normalized response body.
func (h *PaymentHandler) Process(c *gin.Context) {
	var data payment.PaymentData
	if err := c.ShouldBindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if data.PaymentID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing payment_id"})
		return
	}

	response := h.service.ProcessPayment(c.Request.Context(), data)

	c.JSON(http.StatusOK, response)
}

type voidRequest struct {
	NPTransactionID string `json:"np_transaction_id" binding:"required"`
}

func (h *PaymentHandler) Void(c *gin.Context) {
	var req voidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	response := h.service.VoidPayment(c.Request.Context(), req.NPTransactionID)

	c.JSON(http.StatusOK, response)
}

func (h *PaymentHandler) ReportFulfillment(c *gin.Context) {
	var report payment.FulfillmentReport
	if err := c.ShouldBindJSON(&report); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if report.NPTransactionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing np_transaction_id"})
		return
	}

	response := h.service.ReportFulfillment(c.Request.Context(), report)

	c.JSON(http.StatusOK, response)
}
