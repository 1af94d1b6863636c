package handler

import (
	"net/http"

	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stpnv0/StayBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) InitiatePayment(c *ginext.Context) {
	var req dto.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	payment, err := h.paymentService.InitiatePayment(c.Request.Context(), req.BookingID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToInitiatePaymentResponse(payment))
}

// PaymentCallback receives the gateway's verdict for a transaction. Repeated
// deliveries of the same verdict are answered with the current state.
func (h *Handler) PaymentCallback(c *ginext.Context) {
	var req dto.PaymentCallbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	outcome, err := domain.ParseOutcome(req.Outcome)
	if err != nil {
		h.handleError(c, err)
		return
	}

	payment, err := h.paymentService.Reconcile(c.Request.Context(), req.TransactionID, outcome)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentCallbackResponse{
		PaymentID: payment.ID,
		Status:    string(payment.Status),
	})
}

func (h *Handler) GetPayment(c *ginext.Context) {
	id, ok := parseID(c, "id", "payment")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPayment(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}
