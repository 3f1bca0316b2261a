package handlers

import (
	"net/http"

	"roomi/services/room"
	"roomi/utils"

	"github.com/gin-gonic/gin"
)

// RoomHandler serves the room catalog and hotel info endpoints.
type RoomHandler struct {
	Catalog room.CatalogService
}

func NewRoomHandler(catalog room.CatalogService) *RoomHandler {
	return &RoomHandler{Catalog: catalog}
}

// GetRoomTypes handles GET /rooms/types.
func (h *RoomHandler) GetRoomTypes(c *gin.Context) {
	filter := c.DefaultQuery("filter_type", "all")

	resp, err := h.Catalog.ListRoomTypes(filter)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list room types", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CheckAvailability handles GET /rooms/availability.
func (h *RoomHandler) CheckAvailability(c *gin.Context) {
	checkIn := c.Query("check_in")
	checkOut := c.Query("check_out")
	roomType := c.DefaultQuery("room_type", "any")
	guests := c.DefaultQuery("guests", "2")

	resp, err := h.Catalog.CheckAvailability(checkIn, checkOut, roomType, guests)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to check availability", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetHotelInfo handles GET /rooms/info.
func (h *RoomHandler) GetHotelInfo(c *gin.Context) {
	infoType := c.DefaultQuery("info_type", "all")
	c.JSON(http.StatusOK, h.Catalog.HotelInfo(infoType))
}
