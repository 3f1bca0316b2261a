package handlers

import (
	"net/http"

	"roomi/models"
	"roomi/services/agent"
	"roomi/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AgentHandler serves the conversational endpoints.
type AgentHandler struct {
	Service agent.AgentService
	Logger  *zap.Logger
}

func NewAgentHandler(service agent.AgentService, logger *zap.Logger) *AgentHandler {
	return &AgentHandler{Service: service, Logger: logger}
}

// Chat handles POST /agent/chat: one text turn of the conversation.
func (h *AgentHandler) Chat(c *gin.Context) {
	var req models.AgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Service.ProcessTurn(c.Request.Context(), req)
	if err != nil {
		h.Logger.Error("agent turn failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "agent turn failed", err.Error())
		return
	}

	c.JSON(http.StatusOK, resp)
}
