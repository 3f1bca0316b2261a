package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle aggregates every route handler for registration.
type HandlerBundle struct {
	// Booking endpoints.
	CreateBooking  gin.HandlerFunc
	GetBooking     gin.HandlerFunc
	SearchBookings gin.HandlerFunc
	CancelBooking  gin.HandlerFunc
	ListBookings   gin.HandlerFunc

	// Room endpoints.
	GetRoomTypes      gin.HandlerFunc
	CheckAvailability gin.HandlerFunc
	GetHotelInfo      gin.HandlerFunc

	// Agent endpoints.
	AgentChat  gin.HandlerFunc
	AgentVoice gin.HandlerFunc

	// Admin endpoints.
	AdminListBookings gin.HandlerFunc
	AdminReseed       gin.HandlerFunc
}
