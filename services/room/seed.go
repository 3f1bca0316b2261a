package room

import "roomi/models"

// DefaultRoomTypes is the catalog seeded into an empty store at bootstrap.
var DefaultRoomTypes = []models.RoomType{
	{
		Type:        "Standard Room",
		Code:        "STD",
		Rate:        120,
		Description: "Comfortable room with modern amenities, 300 sq ft",
		MaxGuests:   3,
		Amenities:   []string{"WiFi", "TV", "Safe", "Coffee Maker"},
		TotalRooms:  20,
	},
	{
		Type:        "Deluxe Room",
		Code:        "DLX",
		Rate:        150,
		Description: "Spacious room with premium views, 400 sq ft",
		MaxGuests:   3,
		Amenities:   []string{"WiFi", "TV", "Safe", "Coffee Maker", "Bathrobe", "Work Desk"},
		TotalRooms:  20,
	},
	{
		Type:        "Junior Suite",
		Code:        "STE-J",
		Rate:        220,
		Description: "Luxurious suite with separate living area, 550 sq ft",
		MaxGuests:   3,
		Amenities:   []string{"WiFi", "TV", "Safe", "Living Area", "Mini Bar"},
		TotalRooms:  6,
	},
	{
		Type:        "Executive Suite",
		Code:        "STE-E",
		Rate:        350,
		Description: "Premium suite with panoramic city views, 800 sq ft",
		MaxGuests:   4,
		Amenities:   []string{"WiFi", "TV", "Safe", "Living Area", "Dining Table", "Kitchenette"},
		TotalRooms:  3,
	},
	{
		Type:        "Family Room",
		Code:        "FAM",
		Rate:        250,
		Description: "Large room perfect for families, 600 sq ft",
		MaxGuests:   5,
		Amenities:   []string{"WiFi", "TV", "Safe", "Extra Beds", "Kids Pack"},
		TotalRooms:  1,
	},
}
