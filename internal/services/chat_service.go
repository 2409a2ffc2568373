package services

import (
	"context"
	"fmt"

	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	mem "tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

type ChatServiceInterface interface {
	Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error)
}

type ChatService struct {
	client   utils.ChatClientInterface
	sessions mem.ChatSessionStore
}

func NewChatService(client utils.ChatClientInterface, sessions mem.ChatSessionStore) ChatServiceInterface {
	return &ChatService{client: client, sessions: sessions}
}

// Chat answers one turn with the session's prior history as context.
// History is updated only after a successful reply so a failed upstream
// call leaves the session untouched.
func (s *ChatService) Chat(ctx context.Context, req request_models.ChatRequest) (*response_models.ChatResponse, error) {
	if s.client == nil {
		return nil, utils.ErrChatUnavailable
	}

	history := s.sessions.History(req.SessionID)
	reply, err := s.client.Reply(ctx, history, req.Message)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrChatUnavailable, err)
	}

	s.sessions.Append(req.SessionID, utils.ChatMessage{Role: "user", Content: req.Message})
	s.sessions.Append(req.SessionID, utils.ChatMessage{Role: "assistant", Content: reply})
	return &response_models.ChatResponse{Reply: reply}, nil
}
