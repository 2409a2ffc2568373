package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"tripwise/internal/models/request_models"
	mem "tripwise/pkg/memcache"
	"tripwise/pkg/utils"
)

type fakeChatClient struct {
	lastHistory []utils.ChatMessage
	reply       string
	err         error
}

func (f *fakeChatClient) Reply(_ context.Context, history []utils.ChatMessage, _ string) (string, error) {
	f.lastHistory = history
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestChatService_ReplyRecordsBothTurns(t *testing.T) {
	sessions := mem.NewChatSessions(time.Minute, 20)
	client := &fakeChatClient{reply: "Visit in spring."}
	svc := NewChatService(client, sessions)

	resp, err := svc.Chat(context.Background(), request_models.ChatRequest{
		SessionID: "s1", Message: "When should I visit Kyoto?",
	})
	if err != nil {
		t.Fatalf("chat: %v", err)
	}
	if resp.Reply != "Visit in spring." {
		t.Errorf("reply = %q", resp.Reply)
	}

	history := sessions.History("s1")
	if len(history) != 2 {
		t.Fatalf("history = %d messages, want user + assistant", len(history))
	}
	if history[0].Role != "user" || history[1].Role != "assistant" {
		t.Errorf("history roles = %s, %s", history[0].Role, history[1].Role)
	}
}

func TestChatService_HistoryFlowsIntoFollowUps(t *testing.T) {
	sessions := mem.NewChatSessions(time.Minute, 20)
	client := &fakeChatClient{reply: "ok"}
	svc := NewChatService(client, sessions)

	ctx := context.Background()
	if _, err := svc.Chat(ctx, request_models.ChatRequest{SessionID: "s1", Message: "first"}); err != nil {
		t.Fatalf("chat: %v", err)
	}
	if _, err := svc.Chat(ctx, request_models.ChatRequest{SessionID: "s1", Message: "second"}); err != nil {
		t.Fatalf("chat: %v", err)
	}

	if len(client.lastHistory) != 2 {
		t.Errorf("follow-up saw %d history messages, want 2", len(client.lastHistory))
	}
}

func TestChatService_FailedReplyLeavesSessionUntouched(t *testing.T) {
	sessions := mem.NewChatSessions(time.Minute, 20)
	client := &fakeChatClient{err: errors.New("rate limited")}
	svc := NewChatService(client, sessions)

	_, err := svc.Chat(context.Background(), request_models.ChatRequest{SessionID: "s1", Message: "hi"})
	if !errors.Is(err, utils.ErrChatUnavailable) {
		t.Fatalf("err = %v, want ErrChatUnavailable", err)
	}
	if got := sessions.History("s1"); len(got) != 0 {
		t.Errorf("failed turn recorded %d messages", len(got))
	}
}

func TestChatService_NilClientUnavailable(t *testing.T) {
	svc := NewChatService(nil, mem.NewChatSessions(time.Minute, 20))

	_, err := svc.Chat(context.Background(), request_models.ChatRequest{SessionID: "s1", Message: "hi"})
	if !errors.Is(err, utils.ErrChatUnavailable) {
		t.Fatalf("err = %v, want ErrChatUnavailable", err)
	}
}
