package room

import "roomi/models"

// CatalogService exposes the read-mostly room catalog and hotel metadata.
type CatalogService interface {
	ListRoomTypes(filter string) (*models.RoomTypesResponse, error)
	CheckAvailability(checkIn, checkOut, roomType, guests string) (*models.AvailabilityResponse, error)
	HotelInfo(section string) map[string]any
	Bootstrap() error
}
