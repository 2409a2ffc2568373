package mem

import (
	"sync"
	"time"

	"tripwise/pkg/utils"
)

// ChatSessionStore keeps per-session conversation history so the
// chatbot can answer follow-ups. Sessions expire after a quiet period;
// history is capped so a chatty session cannot grow without bound.
type ChatSessionStore interface {
	Append(sessionID string, msg utils.ChatMessage)
	History(sessionID string) []utils.ChatMessage
	Drop(sessionID string)
}

type chatSession struct {
	messages  []utils.ChatMessage
	expiresAt time.Time
}

type ChatSessions struct {
	mu       sync.RWMutex
	data     map[string]*chatSession
	ttl      time.Duration
	maxTurns int
}

func NewChatSessions(ttl time.Duration, maxTurns int) *ChatSessions {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if maxTurns <= 0 {
		maxTurns = 20
	}
	return &ChatSessions{
		data:     make(map[string]*chatSession),
		ttl:      ttl,
		maxTurns: maxTurns,
	}
}

func (s *ChatSessions) Append(sessionID string, msg utils.ChatMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.data[sessionID]
	if !ok || time.Now().After(sess.expiresAt) {
		sess = &chatSession{}
		s.data[sessionID] = sess
	}
	sess.messages = append(sess.messages, msg)
	if len(sess.messages) > s.maxTurns {
		sess.messages = sess.messages[len(sess.messages)-s.maxTurns:]
	}
	sess.expiresAt = time.Now().Add(s.ttl)
}

func (s *ChatSessions) History(sessionID string) []utils.ChatMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.data[sessionID]
	if !ok || time.Now().After(sess.expiresAt) {
		return nil
	}
	out := make([]utils.ChatMessage, len(sess.messages))
	copy(out, sess.messages)
	return out
}

func (s *ChatSessions) Drop(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
}
