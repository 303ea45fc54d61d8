package handlers

import (
	"net/http"

	"tourbook/models"
	"tourbook/services/booking"
	"tourbook/utils"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	Bookings booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Bookings: svc}
}

// CreateOrderHandler handles POST /api/bookings/create-order.
func (h *BookingHandler) CreateOrderHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.InitiateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, err := h.Bookings.InitiateBooking(c.Request.Context(), actor, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// ConfirmPaymentHandler handles POST /api/bookings/confirm-payment.
func (h *BookingHandler) ConfirmPaymentHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	var req models.ConfirmPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	b, err := h.Bookings.ConfirmPayment(c.Request.Context(), actor, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment confirmed", "booking": b})
}

// PayRemainingHandler handles POST /api/bookings/pay-remaining/:id.
func (h *BookingHandler) PayRemainingHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	b, err := h.Bookings.PayRemaining(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Remaining balance paid", "booking": b})
}

// MyBookingsHandler handles GET /api/bookings/mine.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.Bookings.ListMyBookings(c.Request.Context(), actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	view, err := h.Bookings.GetBooking(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// ReceiptHandler handles GET /api/bookings/:id/receipt.
func (h *BookingHandler) ReceiptHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	id := c.Param("id")
	pdf, err := h.Bookings.Receipt(c.Request.Context(), actor, id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="receipt-`+id+`.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// AllBookingsHandler handles GET /api/bookings/admin/all.
func (h *BookingHandler) AllBookingsHandler(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	views, err := h.Bookings.ListAllBookings(c.Request.Context(), actor)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
