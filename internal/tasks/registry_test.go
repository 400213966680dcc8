package tasks_test

import (
	"context"
	"errors"
	"testing"

	"chirp/internal/tasks"
)

func TestInvokePassesCorrelationToken(t *testing.T) {
	registry := tasks.NewRegistry()
	var gotToken string
	registry.Register("DISPLAY", func(_ context.Context, token string) {
		gotToken = token
	})

	if err := registry.Invoke(context.Background(), "DISPLAY", "frame-42"); err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if gotToken != "frame-42" {
		t.Fatalf("expected token frame-42, got %q", gotToken)
	}
}

func TestInvokeUnknownTask(t *testing.T) {
	registry := tasks.NewRegistry()
	err := registry.Invoke(context.Background(), "MISSING", "token")
	if !errors.Is(err, tasks.ErrUnknownTask) {
		t.Fatalf("expected ErrUnknownTask, got %v", err)
	}
}

func TestRegisterReplacesHandler(t *testing.T) {
	registry := tasks.NewRegistry()
	calls := make([]string, 0, 2)
	registry.Register("TASK", func(context.Context, string) { calls = append(calls, "first") })
	registry.Register("TASK", func(context.Context, string) { calls = append(calls, "second") })

	if err := registry.Invoke(context.Background(), "TASK", ""); err != nil {
		t.Fatalf("Invoke failed: %v", err)
	}
	if len(calls) != 1 || calls[0] != "second" {
		t.Fatalf("expected only the replacement handler to run, got %v", calls)
	}
}

func TestRegisterNilRemoves(t *testing.T) {
	registry := tasks.NewRegistry()
	registry.Register("TASK", func(context.Context, string) {})
	registry.Register("TASK", nil)
	if err := registry.Invoke(context.Background(), "TASK", ""); !errors.Is(err, tasks.ErrUnknownTask) {
		t.Fatalf("expected ErrUnknownTask after nil registration, got %v", err)
	}
	if names := registry.Names(); len(names) != 0 {
		t.Fatalf("expected no registered names, got %v", names)
	}
}

func TestNamesSorted(t *testing.T) {
	registry := tasks.NewRegistry()
	for _, name := range []string{"ZULU", "ALPHA", "MIKE"} {
		registry.Register(name, func(context.Context, string) {})
	}
	names := registry.Names()
	expected := []string{"ALPHA", "MIKE", "ZULU"}
	if len(names) != len(expected) {
		t.Fatalf("expected %v, got %v", expected, names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Fatalf("expected %v, got %v", expected, names)
		}
	}
}
