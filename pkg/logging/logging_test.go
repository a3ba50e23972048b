package logging

import (
	"errors"
	"log/slog"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestOrg(t *testing.T) {
	attr := Org("acme")
	if attr.Key != FieldOrg {
		t.Errorf("expected key %q, got %q", FieldOrg, attr.Key)
	}
	if attr.Value.String() != "acme" {
		t.Errorf("expected value %q, got %q", "acme", attr.Value.String())
	}
}

func TestEventID(t *testing.T) {
	attr := EventID("aabbccdd")
	if attr.Key != FieldEventID {
		t.Errorf("expected key %q, got %q", FieldEventID, attr.Key)
	}
	if attr.Value.String() != "aabbccdd" {
		t.Errorf("expected value %q, got %q", "aabbccdd", attr.Value.String())
	}
}

func TestError(t *testing.T) {
	attr := Error(errors.New("boom"))
	if attr.Key != FieldError {
		t.Errorf("expected key %q, got %q", FieldError, attr.Key)
	}
	if attr.Value.String() != "boom" {
		t.Errorf("expected value %q, got %q", "boom", attr.Value.String())
	}
}

func TestNewReturnsLogger(t *testing.T) {
	for _, format := range []string{"json", "text", ""} {
		l := New(slog.LevelInfo, format)
		if l == nil || l.Logger == nil {
			t.Fatalf("New(info, %q) returned nil logger", format)
		}
	}
}
