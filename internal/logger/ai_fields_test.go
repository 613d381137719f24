package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestStringFieldsSkipsEmptyEntries(t *testing.T) {
	t.Parallel()

	fields := StringFields(
		StringField{Key: "  ", Value: "ignored"},
		StringField{Key: "provider", Value: "   "},
		StringField{Key: " model ", Value: " gemini-2.0-flash "},
	)

	if len(fields) != 1 {
		t.Fatalf("expected 1 field, got %d", len(fields))
	}
	if fields[0].Key != "model" {
		t.Fatalf("expected trimmed key, got %q", fields[0].Key)
	}
}

func TestWithFieldsNilLogger(t *testing.T) {
	t.Parallel()

	if WithFields(nil) == nil {
		t.Fatalf("expected fallback no-op logger")
	}
	if WithFields(nil, zap.String("k", "v")) == nil {
		t.Fatalf("expected fallback no-op logger with fields")
	}
}

func TestCommonFields(t *testing.T) {
	t.Parallel()

	fields := CommonFields("gemini", "")
	if len(fields) != 1 {
		t.Fatalf("expected empty model to be omitted, got %d fields", len(fields))
	}
	if fields[0].Key != FieldProvider {
		t.Fatalf("unexpected field key %q", fields[0].Key)
	}
}
