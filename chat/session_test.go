package chat

import "testing"

func TestAppendUser(t *testing.T) {
	t.Run("trims and appends", func(t *testing.T) {
		var s Session
		text, ok := s.AppendUser("  hello  ")
		if !ok {
			t.Fatal("Non-blank message must be accepted")
		}
		if text != "hello" {
			t.Errorf("Expected trimmed text, got %q", text)
		}
		turns := s.Turns()
		if len(turns) != 1 || turns[0].Role != RoleUser || turns[0].Content != "hello" {
			t.Errorf("Unexpected transcript: %+v", turns)
		}
	})

	t.Run("blank message is a no-op", func(t *testing.T) {
		var s Session
		if _, ok := s.AppendUser("   \t  "); ok {
			t.Fatal("Whitespace-only message must be rejected")
		}
		if !s.Empty() {
			t.Error("Rejected message must not touch the transcript")
		}
	})
}

func TestAdopt(t *testing.T) {
	t.Run("adopts backend id once", func(t *testing.T) {
		var s Session
		s.Adopt("chat-1")
		if s.ChatID() != "chat-1" {
			t.Fatalf("Expected chat-1, got %q", s.ChatID())
		}

		// Later replies must not rebind the session
		s.Adopt("chat-2")
		if s.ChatID() != "chat-1" {
			t.Errorf("Session id must be sticky, got %q", s.ChatID())
		}
	})

	t.Run("ignores empty id", func(t *testing.T) {
		var s Session
		s.Adopt("")
		if s.ChatID() != "" {
			t.Errorf("Empty id must not be adopted, got %q", s.ChatID())
		}
	})
}

func TestAppendFailure(t *testing.T) {
	var s Session
	s.AppendUser("what is my balance")
	s.AppendFailure()

	turns := s.Turns()
	if len(turns) != 2 {
		t.Fatalf("Expected 2 turns, got %d", len(turns))
	}
	if turns[1].Role != RoleAssistant {
		t.Errorf("Failure reply must come from the assistant, got %s", turns[1].Role)
	}
	if turns[1].Content != FailureReply {
		t.Errorf("Unexpected failure text: %q", turns[1].Content)
	}
}

func TestReset(t *testing.T) {
	var s Session
	s.SetWallet("w1")
	s.AppendUser("hi")
	s.Adopt("chat-1")
	s.AppendAssistant("hello")

	s.Reset()

	if !s.Empty() {
		t.Error("Reset must clear the transcript")
	}
	if s.ChatID() != "" {
		t.Error("Reset must drop the session id")
	}
	if s.WalletID() != "w1" {
		t.Error("Reset must keep the wallet context")
	}
}
