package models

// RoomType is a named class of room with a fixed nightly rate and capacity.
type RoomType struct {
	Type        string   `bson:"type" json:"type"`
	Code        string   `bson:"code" json:"code"`
	Rate        float64  `bson:"rate" json:"rate"`
	Description string   `bson:"description" json:"description"`
	MaxGuests   int      `bson:"max_guests" json:"max_guests"`
	Amenities   []string `bson:"amenities" json:"amenities"`
	TotalRooms  int      `bson:"total_rooms" json:"total_rooms"`
}

// RoomTypesResponse lists room categories for the /rooms/types endpoint.
type RoomTypesResponse struct {
	RoomTypes []RoomType `json:"room_types"`
	Count     int        `json:"count"`
	Message   string     `json:"message"`
}

// AvailabilityResponse echoes the catalog for a requested date range.
type AvailabilityResponse struct {
	Available bool       `json:"available"`
	CheckIn   string     `json:"check_in"`
	CheckOut  string     `json:"check_out"`
	Rooms     []RoomType `json:"rooms"`
	Message   string     `json:"message"`
}
