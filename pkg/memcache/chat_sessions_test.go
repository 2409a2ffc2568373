package mem

import (
	"testing"
	"time"

	"tripwise/pkg/utils"
)

func TestChatSessions_CapsHistory(t *testing.T) {
	s := NewChatSessions(time.Minute, 4)
	for i := 0; i < 10; i++ {
		s.Append("s1", utils.ChatMessage{Role: "user", Content: "m"})
	}

	if got := len(s.History("s1")); got != 4 {
		t.Errorf("history = %d messages, want capped at 4", got)
	}
}

func TestChatSessions_ExpiresAfterQuietPeriod(t *testing.T) {
	s := NewChatSessions(20*time.Millisecond, 10)
	s.Append("s1", utils.ChatMessage{Role: "user", Content: "hello"})

	time.Sleep(40 * time.Millisecond)
	if got := s.History("s1"); got != nil {
		t.Errorf("expired session returned %d messages", len(got))
	}
}

func TestChatSessions_SessionsAreIsolated(t *testing.T) {
	s := NewChatSessions(time.Minute, 10)
	s.Append("a", utils.ChatMessage{Role: "user", Content: "one"})
	s.Append("b", utils.ChatMessage{Role: "user", Content: "two"})

	if got := s.History("a"); len(got) != 1 || got[0].Content != "one" {
		t.Errorf("session a history = %+v", got)
	}
	s.Drop("a")
	if s.History("a") != nil {
		t.Error("dropped session still has history")
	}
	if len(s.History("b")) != 1 {
		t.Error("dropping one session must not touch another")
	}
}
