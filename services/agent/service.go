// File: services/agent/service.go
package agent

import (
	"context"
	"fmt"
	"strings"

	"roomi/models"

	genai "github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxToolRounds caps function-call round trips within a single turn.
const maxToolRounds = 6

// maxHistoryTurns bounds the persisted conversation history per session.
const maxHistoryTurns = 40

// DefaultAgentService implements AgentService with Gemini function calling
// over the dual-path tool resolver.
type DefaultAgentService struct {
	LLM      *GeminiClient
	Tools    ToolRunner
	CtxStore *RedisContextStore
	Logger   *zap.Logger
}

func NewDefaultAgentService(llm *GeminiClient, tools ToolRunner, ctxStore *RedisContextStore, logger *zap.Logger) *DefaultAgentService {
	return &DefaultAgentService{LLM: llm, Tools: tools, CtxStore: ctxStore, Logger: logger}
}

// ProcessTurn loads the session context, runs the model with tool dispatch
// until it produces a final text reply, and persists the updated history.
func (s *DefaultAgentService) ProcessTurn(ctx context.Context, req models.AgentRequest) (*models.AgentResponse, error) {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	agentCtx, err := s.CtxStore.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	// A fresh session with no utterance gets the scripted greeting.
	if strings.TrimSpace(req.Text) == "" && len(agentCtx.History) == 0 {
		agentCtx.History = append(agentCtx.History, models.AgentTurn{Role: "model", Text: InitialGreeting})
		if err := s.CtxStore.Set(ctx, sessionID, agentCtx); err != nil {
			return nil, fmt.Errorf("save context: %w", err)
		}
		return &models.AgentResponse{SessionID: sessionID, Reply: InitialGreeting}, nil
	}

	cs := s.LLM.NewSession(agentCtx.History)

	resp, err := cs.SendMessage(ctx, genai.Text(req.Text))
	if err != nil {
		return nil, fmt.Errorf("model error: %w", err)
	}

	for round := 0; round < maxToolRounds; round++ {
		calls := functionCalls(resp)
		if len(calls) == 0 {
			break
		}

		var parts []genai.Part
		for _, call := range calls {
			result := s.invokeTool(ctx, call)
			parts = append(parts, genai.FunctionResponse{
				Name:     call.Name,
				Response: result.Payload,
			})
		}

		resp, err = cs.SendMessage(ctx, parts...)
		if err != nil {
			return nil, fmt.Errorf("model error after tool call: %w", err)
		}
	}

	reply := responseText(resp)
	if reply == "" {
		reply = "I'm sorry, could you say that again?"
	}

	agentCtx.History = append(agentCtx.History,
		models.AgentTurn{Role: "user", Text: req.Text},
		models.AgentTurn{Role: "model", Text: reply},
	)
	if len(agentCtx.History) > maxHistoryTurns {
		agentCtx.History = agentCtx.History[len(agentCtx.History)-maxHistoryTurns:]
	}
	if err := s.CtxStore.Set(ctx, sessionID, agentCtx); err != nil {
		return nil, fmt.Errorf("save context: %w", err)
	}

	return &models.AgentResponse{SessionID: sessionID, Reply: reply}, nil
}

// invokeTool dispatches one model function call. Every outcome is a
// well-formed payload; the model never sees a raw error.
func (s *DefaultAgentService) invokeTool(ctx context.Context, call genai.FunctionCall) *ToolResult {
	args := stringifyArgs(call.Args)
	result, err := s.Tools.Run(ctx, call.Name, args)
	if err != nil {
		s.Logger.Warn("tool dispatch failed", zap.String("tool", call.Name), zap.Error(err))
		return &ToolResult{
			Name:   call.Name,
			Source: SourceDegraded,
			Payload: map[string]any{
				"success": false,
				"message": "That didn't work. Please try rephrasing the request.",
			},
		}
	}

	s.Logger.Info("tool invoked",
		zap.String("tool", call.Name),
		zap.String("source", string(result.Source)))
	return result
}

// functionCalls extracts pending function calls from a model response.
func functionCalls(resp *genai.GenerateContentResponse) []genai.FunctionCall {
	var calls []genai.FunctionCall
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if fc, ok := part.(genai.FunctionCall); ok {
				calls = append(calls, fc)
			}
		}
	}
	return calls
}

// responseText concatenates the text parts of a model response.
func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return strings.TrimSpace(sb.String())
}

// stringifyArgs flattens model-provided arguments into the string map the
// tool layer expects. Models occasionally send numbers for text fields.
func stringifyArgs(args map[string]any) map[string]string {
	out := make(map[string]string, len(args))
	for k, v := range args {
		switch val := v.(type) {
		case string:
			out[k] = val
		case float64:
			if val == float64(int64(val)) {
				out[k] = fmt.Sprintf("%d", int64(val))
			} else {
				out[k] = fmt.Sprintf("%v", val)
			}
		default:
			out[k] = fmt.Sprintf("%v", v)
		}
	}
	return out
}
