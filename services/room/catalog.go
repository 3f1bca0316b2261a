package room

import (
	"fmt"
	"strings"

	roomRepo "roomi/database/repository/room"
	"roomi/models"

	"go.uber.org/zap"
)

// BudgetRateCeiling splits the catalog into budget and premium tiers.
const BudgetRateCeiling = 150

// DefaultCatalogService implements CatalogService on top of the room store.
type DefaultCatalogService struct {
	Repo   roomRepo.RoomTypeRepository
	Logger *zap.Logger
}

// Bootstrap seeds the default catalog. Runs before the server accepts
// traffic, so there is no lazy check-then-insert on the read path.
func (s *DefaultCatalogService) Bootstrap() error {
	if err := s.Repo.Seed(DefaultRoomTypes); err != nil {
		return fmt.Errorf("failed to bootstrap room catalog: %w", err)
	}
	s.Logger.Info("room catalog bootstrapped", zap.Int("room_types", len(DefaultRoomTypes)))
	return nil
}

// FilterRoomTypes partitions the catalog by rate tier. filter is one of
// "all", "budget" (rate <= BudgetRateCeiling) or "premium" (rate above it).
func FilterRoomTypes(roomTypes []models.RoomType, filter string) []models.RoomType {
	switch strings.ToLower(filter) {
	case "budget":
		var out []models.RoomType
		for _, rt := range roomTypes {
			if rt.Rate <= BudgetRateCeiling {
				out = append(out, rt)
			}
		}
		return out
	case "premium":
		var out []models.RoomType
		for _, rt := range roomTypes {
			if rt.Rate > BudgetRateCeiling {
				out = append(out, rt)
			}
		}
		return out
	default:
		return roomTypes
	}
}

// ListRoomTypes returns the catalog filtered by rate tier.
func (s *DefaultCatalogService) ListRoomTypes(filter string) (*models.RoomTypesResponse, error) {
	roomTypes, err := s.Repo.List()
	if err != nil {
		return nil, err
	}

	filtered := FilterRoomTypes(roomTypes, filter)

	rates := make([]string, 0, len(filtered))
	for _, rt := range filtered {
		rates = append(rates, fmt.Sprintf("%s at $%.0f", rt.Type, rt.Rate))
	}

	return &models.RoomTypesResponse{
		RoomTypes: filtered,
		Count:     len(filtered),
		Message:   fmt.Sprintf("We have %s per night.", strings.Join(rates, ", ")),
	}, nil
}

// CheckAvailability reports availability for the requested range. There is
// no conflict check against existing bookings; every range answers
// available with the matching catalog entries.
func (s *DefaultCatalogService) CheckAvailability(checkIn, checkOut, roomType, guests string) (*models.AvailabilityResponse, error) {
	roomTypes, err := s.Repo.List()
	if err != nil {
		return nil, err
	}

	rooms := roomTypes
	if rt := strings.ToLower(strings.TrimSpace(roomType)); rt != "" && rt != "any" {
		var matched []models.RoomType
		for _, candidate := range roomTypes {
			if strings.Contains(strings.ToLower(candidate.Type), rt) || strings.EqualFold(candidate.Code, roomType) {
				matched = append(matched, candidate)
			}
		}
		rooms = matched
	}

	return &models.AvailabilityResponse{
		Available: true,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Rooms:     rooms,
		Message:   fmt.Sprintf("We have rooms available from %s to %s.", checkIn, checkOut),
	}, nil
}
