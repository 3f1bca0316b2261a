package handlers

import (
	"net/http"
	"strconv"

	"roomi/services/booking"
	"roomi/services/room"
	"roomi/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler serves back-office endpoints.
type AdminHandler struct {
	Bookings booking.BookingService
	Catalog  room.CatalogService
}

func NewAdminHandler(bookings booking.BookingService, catalog room.CatalogService) *AdminHandler {
	return &AdminHandler{Bookings: bookings, Catalog: catalog}
}

// ListBookings handles GET /admin/bookings with an elevated limit cap.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	status := c.Query("status")
	limit, err := strconv.ParseInt(c.DefaultQuery("limit", "100"), 10, 64)
	if err != nil || limit <= 0 {
		limit = 100
	}

	bookings, err := h.Bookings.ListBookings(status, limit)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count":    len(bookings),
		"bookings": bookings,
	})
}

// ReseedCatalog handles POST /admin/rooms/seed. Idempotent.
func (h *AdminHandler) ReseedCatalog(c *gin.Context) {
	if err := h.Catalog.Bootstrap(); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to reseed catalog", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "room catalog reseeded"})
}
