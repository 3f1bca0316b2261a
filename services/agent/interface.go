package agent

import (
	"context"

	"roomi/models"
)

// AgentService runs one conversational turn for a guest session.
type AgentService interface {
	ProcessTurn(ctx context.Context, req models.AgentRequest) (*models.AgentResponse, error)
}
