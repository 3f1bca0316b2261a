package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"roomi/models"
	"roomi/services/booking"
	"roomi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves the reservation endpoints.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(service booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: service, Logger: logger}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var input models.BookingCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.CreateBooking(input)
	if err != nil {
		h.Logger.Error("failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create booking", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetBooking handles GET /bookings/:confirmationNumber.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	confirmationNumber := c.Param("confirmationNumber")

	bk, err := h.Service.GetBooking(confirmationNumber)
	if err != nil {
		if errors.Is(err, booking.ErrBookingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch booking", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"found":   true,
		"booking": bk,
	})
}

// SearchBookings handles GET /bookings/search/by-name.
func (h *BookingHandler) SearchBookings(c *gin.Context) {
	guestName := c.Query("guest_name")
	if guestName == "" {
		utils.JSONError(c, http.StatusBadRequest, "guest_name is required", "")
		return
	}

	bookings, err := h.Service.SearchByName(guestName)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to search bookings", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	c.JSON(http.StatusOK, gin.H{
		"found":    len(bookings) > 0,
		"count":    len(bookings),
		"bookings": bookings,
	})
}

// CancelBooking handles DELETE /bookings/:confirmationNumber.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	confirmationNumber := c.Param("confirmationNumber")
	reason := c.Query("reason")

	resp, err := h.Service.CancelBooking(confirmationNumber, reason)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		case errors.Is(err, booking.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{
				"error":               "Booking already cancelled",
				"confirmation_number": confirmationNumber,
			})
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to cancel booking", err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListBookings handles GET /bookings.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	status := c.Query("status")
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 20
	}

	bookings, err := h.Service.ListBookings(status, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(bookings),
		"bookings": bookings,
	})
}
