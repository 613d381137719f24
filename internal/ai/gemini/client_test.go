package gemini

import (
	"context"
	"testing"

	"github.com/talentscout/intake/internal/ai"
)

func TestNewClientRequiresAPIKey(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(context.Background(), "  ", ""); err == nil {
		t.Fatalf("expected error for empty api key")
	}
}

func TestSplitMessages(t *testing.T) {
	t.Parallel()

	system, contents, err := splitMessages([]ai.Message{
		{Role: ai.RoleSystem, Content: "You are an assistant."},
		{Role: ai.RoleUser, Content: "hello"},
		{Role: ai.RoleAssistant, Content: "hi there"},
		{Role: ai.RoleUser, Content: "  "},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if system != "You are an assistant." {
		t.Fatalf("unexpected system instruction: %q", system)
	}
	if len(contents) != 2 {
		t.Fatalf("expected blank message to be dropped, got %d contents", len(contents))
	}
	if contents[1].Role != "model" {
		t.Fatalf("expected assistant role to map to model, got %q", contents[1].Role)
	}
}

func TestSplitMessagesRejectsUnknownRole(t *testing.T) {
	t.Parallel()

	_, _, err := splitMessages([]ai.Message{{Role: "tool", Content: "x"}})
	if err == nil {
		t.Fatalf("expected error for unknown role")
	}
}
