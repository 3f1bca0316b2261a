package models

// AgentRequest is a single guest utterance sent to the conversational agent.
type AgentRequest struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// AgentResponse carries the agent's spoken reply for one turn.
type AgentResponse struct {
	SessionID  string `json:"session_id"`
	Reply      string `json:"reply"`
	Transcript string `json:"transcript,omitempty"` // Set when the turn originated from audio
}

// AgentTurn is one entry of persisted conversation history.
type AgentTurn struct {
	Role string `json:"role"` // "user" or "model"
	Text string `json:"text"`
}

// AgentContext is the per-session state kept between turns.
type AgentContext struct {
	History []AgentTurn `json:"history"`
}

// FollowUpPayload is the queued task payload for post-booking follow-ups.
type FollowUpPayload struct {
	ConfirmationNumber string `json:"confirmation_number"`
	GuestName          string `json:"guest_name"`
	Email              string `json:"email"`
	CheckIn            string `json:"check_in"`
}
