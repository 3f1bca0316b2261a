// File: services/agent/gemini.go
package agent

import (
	"context"
	"fmt"

	"roomi/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const geminiModelName = "models/gemini-1.5-pro"

// systemInstruction is the Roomi receptionist persona. The create_booking
// precondition is reinforced here and enforced again in the tool adapter.
const systemInstruction = `You are Roomi, a friendly hotel receptionist for Grand Hotel. Help guests book rooms.

Flow: Ask check-in date, check-out date, guests count, then room type, then name, phone, email. Use tools to check availability and create bookings. Only call create_booking after you have collected the guest's name, phone number and email address.

Keep responses SHORT (1-2 sentences). Ask ONE thing at a time. Be warm and helpful.`

// InitialGreeting opens every new session.
const InitialGreeting = "Thank you for calling Grand Hotel. This is Roomi, your virtual reservation assistant. How may I help you today?"

// hotelTools declares the six guest-facing intents exposed to the model.
var hotelTools = []*genai.Tool{
	{
		FunctionDeclarations: []*genai.FunctionDeclaration{
			{
				Name:        "check_availability",
				Description: "Check room availability for given check-in and check-out dates. Call this when the guest asks about availability or wants to book a room.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"check_in":  {Type: genai.TypeString, Description: "Check-in date (e.g., 'January 20' or '2026-01-20')"},
						"check_out": {Type: genai.TypeString, Description: "Check-out date"},
						"room_type": {Type: genai.TypeString, Description: "Type of room (standard, deluxe, suite, any). Default is 'any'"},
						"guests":    {Type: genai.TypeString, Description: "Number of guests staying as text. Default is '2'"},
					},
					Required: []string{"check_in", "check_out"},
				},
			},
			{
				Name:        "create_booking",
				Description: "Create a new room reservation. IMPORTANT: Only call this AFTER you have collected ALL of the following from the guest: guest_name (real name, not null), phone number, email address, room type and dates. If any info is missing, ask the guest first.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"guest_name":       {Type: genai.TypeString, Description: "Full name of the guest - REQUIRED, must be a real name"},
						"check_in":         {Type: genai.TypeString, Description: "Check-in date - REQUIRED"},
						"check_out":        {Type: genai.TypeString, Description: "Check-out date - REQUIRED"},
						"room_type":        {Type: genai.TypeString, Description: "Type of room - REQUIRED"},
						"phone":            {Type: genai.TypeString, Description: "Guest phone number - REQUIRED"},
						"email":            {Type: genai.TypeString, Description: "Guest email address - REQUIRED"},
						"guests":           {Type: genai.TypeString, Description: "Number of guests as text (default '2')"},
						"special_requests": {Type: genai.TypeString, Description: "Any special requests"},
					},
					Required: []string{"guest_name", "check_in", "check_out", "room_type", "phone", "email"},
				},
			},
			{
				Name:        "get_room_types",
				Description: "Get all available room types with their descriptions, amenities and pricing. Call this when the guest asks about room options.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"filter_type": {Type: genai.TypeString, Description: "Filter by room category - 'all', 'budget', 'premium'. Default is 'all'"},
					},
				},
			},
			{
				Name:        "get_hotel_info",
				Description: "Get general hotel information like check-in time, checkout time, address, and policies.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"info_type": {Type: genai.TypeString, Description: "Type of info needed - 'all', 'timings', 'policies', 'location'. Default is 'all'"},
					},
				},
			},
			{
				Name:        "get_booking",
				Description: "Retrieve details of an existing booking by confirmation number or guest name.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"confirmation_number": {Type: genai.TypeString, Description: "The booking confirmation number"},
						"guest_name":          {Type: genai.TypeString, Description: "Guest name to search for"},
					},
				},
			},
			{
				Name:        "cancel_booking",
				Description: "Cancel an existing booking. Call this when the guest wants to cancel their reservation.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"confirmation_number": {Type: genai.TypeString, Description: "The booking confirmation number to cancel"},
					},
					Required: []string{"confirmation_number"},
				},
			},
		},
	},
}

// GeminiClient wraps the generative model configured with the hotel tools.
type GeminiClient struct {
	model *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel(geminiModelName)
	model.SetTemperature(0.3)
	model.Tools = hotelTools
	model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(systemInstruction)}}

	return &GeminiClient{model: model}, nil
}

// NewSession starts a chat session replaying the stored history.
func (g *GeminiClient) NewSession(history []models.AgentTurn) *genai.ChatSession {
	cs := g.model.StartChat()
	for _, turn := range history {
		cs.History = append(cs.History, &genai.Content{
			Role:  turn.Role,
			Parts: []genai.Part{genai.Text(turn.Text)},
		})
	}
	return cs
}
