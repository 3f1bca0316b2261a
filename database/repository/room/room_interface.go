package roomRepo

import "roomi/models"

// RoomTypeRepository defines the interface for room catalog data access.
type RoomTypeRepository interface {
	// Seed upserts the given room types keyed by code. Safe to run more
	// than once; re-running never duplicates catalog rows.
	Seed(roomTypes []models.RoomType) error
	List() ([]models.RoomType, error)
	GetByCode(code string) (*models.RoomType, error)
}
