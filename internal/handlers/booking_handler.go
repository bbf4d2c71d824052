package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/travelmate/booking-backend/internal/middleware"
	"github.com/travelmate/booking-backend/internal/models"
	"github.com/travelmate/booking-backend/internal/services"
)

// BookingHandler handles booking lifecycle endpoints
type BookingHandler struct {
	reservations *services.ReservationService
	logger       *logrus.Logger
}

// NewBookingHandler creates a new BookingHandler
func NewBookingHandler(reservations *services.ReservationService, logger *logrus.Logger) *BookingHandler {
	return &BookingHandler{
		reservations: reservations,
		logger:       logger,
	}
}

// CreateBooking handles POST /api/v1/bookings
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userCtx, ok := middleware.GetUserContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req models.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// The booking always belongs to the authenticated user
	req.UserID = userCtx.UserID
	req.ClientIP = c.ClientIP()
	req.UserAgent = c.Request.UserAgent()

	booking, err := h.reservations.CreateBooking(&req)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// CancelBooking handles DELETE /api/v1/bookings/:id
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	userCtx, ok := middleware.GetUserContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookingID := c.Param("id")

	booking, err := h.reservations.GetBooking(bookingID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}
	if booking.UserID != userCtx.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "You don't have permission to cancel this booking"})
		return
	}

	ack, err := h.reservations.CancelBooking(bookingID)
	if err != nil {
		h.respondBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, ack)
}

// MyBookings handles GET /api/v1/my-bookings
func (h *BookingHandler) MyBookings(c *gin.Context) {
	userCtx, ok := middleware.GetUserContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookings, err := h.reservations.ListBookingsForUser(userCtx.UserID)
	if err != nil {
		h.logger.WithError(err).WithField("user_id", userCtx.UserID).Error("Failed to list bookings")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}

	c.JSON(http.StatusOK, bookings)
}

// respondBookingError maps engine errors to HTTP status codes
func (h *BookingHandler) respondBookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrInsufficientInventory):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrAlreadyCancelled):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrBusy):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	case errors.Is(err, models.ErrConsistency):
		h.logger.WithError(err).Error("Consistency violation surfaced to API")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error, booking state preserved"})
	default:
		h.logger.WithError(err).Error("Unexpected booking error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
