// Package chat holds the AI conversation state: an append-only transcript,
// the backend-assigned session id and the wallet the conversation is scoped
// to. The session is owned by the update loop and mutated only through its
// methods.
package chat

import "strings"

// Role of a transcript turn.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// FailureReply is appended verbatim when a chat request fails. The failure is
// terminal from the transcript's point of view; the user resends manually.
const FailureReply = "Sorry, there was an error processing your request. Please try again."

// Turn is one transcript entry. Turns are never reordered or deleted within
// a session.
type Turn struct {
	Role    Role
	Content string
}

// Session is one conversation. The id is empty until the backend assigns one
// on the first successful turn.
type Session struct {
	chatID   string
	walletID string
	turns    []Turn
}

// ChatID returns the backend session id, or "" before the first reply.
func (s *Session) ChatID() string { return s.chatID }

// WalletID returns the wallet the conversation is scoped to, or "" for
// general chat.
func (s *Session) WalletID() string { return s.walletID }

// SetWallet scopes subsequent turns to walletID ("" for general chat). The
// transcript is untouched; only new turns carry the new context.
func (s *Session) SetWallet(walletID string) { s.walletID = walletID }

// Turns returns the transcript in order.
func (s *Session) Turns() []Turn { return s.turns }

// Empty reports whether the transcript has no turns yet.
func (s *Session) Empty() bool { return len(s.turns) == 0 }

// AppendUser optimistically appends a user turn and returns the trimmed
// text. Blank or whitespace-only input is rejected locally: no transcript
// change, no backend call.
func (s *Session) AppendUser(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", false
	}
	s.turns = append(s.turns, Turn{Role: RoleUser, Content: trimmed})
	return trimmed, true
}

// Adopt stores the backend-assigned session id from the first reply. Later
// replies repeat the same id; adopting it again is harmless.
func (s *Session) Adopt(chatID string) {
	if s.chatID == "" {
		s.chatID = chatID
	}
}

// AppendAssistant appends the assistant's reply.
func (s *Session) AppendAssistant(text string) {
	s.turns = append(s.turns, Turn{Role: RoleAssistant, Content: text})
}

// AppendFailure appends the fixed user-visible failure turn.
func (s *Session) AppendFailure() {
	s.turns = append(s.turns, Turn{Role: RoleAssistant, Content: FailureReply})
}

// Reset discards the transcript and session id, beginning a fresh
// conversation. The wallet context is kept.
func (s *Session) Reset() {
	s.chatID = ""
	s.turns = nil
}
