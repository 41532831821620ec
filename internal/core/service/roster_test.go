package service

import (
	"context"
	"errors"
	"testing"

	"github.com/fitclub/club-api/internal/core/domain"
)

func TestRosterEngine_Resolve_CollapsesDuplicates(t *testing.T) {
	users := newStubUserRepo()
	alice := users.seed("alice")
	bob := users.seed("bob")
	engine := NewRosterEngine(users, discardLogger)

	withDup, err := engine.ResolveParticipants(context.Background(), []string{alice.ID, alice.ID, bob.ID}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	clean, err := engine.ResolveParticipants(context.Background(), []string{alice.ID, bob.ID}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(withDup) != 2 || len(clean) != 2 {
		t.Fatalf("duplicate ids must collapse: got %d and %d members", len(withDup), len(clean))
	}
	for i := range clean {
		if withDup[i].ID != clean[i].ID {
			t.Errorf("resolution not idempotent under duplicates: %v vs %v", withDup, clean)
		}
	}
}

func TestRosterEngine_Resolve_RemovesExcludedID(t *testing.T) {
	users := newStubUserRepo()
	alice := users.seed("alice")
	trainer := users.seed("trainer", domain.RoleTrainer)
	engine := NewRosterEngine(users, discardLogger)

	resolved, err := engine.ResolveParticipants(context.Background(), []string{alice.ID, trainer.ID}, trainer.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved) != 1 || resolved[0].ID != alice.ID {
		t.Fatalf("excluded id must be dropped before resolution, got %v", resolved)
	}
}

func TestRosterEngine_Resolve_FailsWholeOperationOnMissingUser(t *testing.T) {
	users := newStubUserRepo()
	alice := users.seed("alice")
	engine := NewRosterEngine(users, discardLogger)

	_, err := engine.ResolveParticipants(context.Background(), []string{alice.ID, "ghost"}, "")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRosterEngine_Resolve_EmptyInput(t *testing.T) {
	users := newStubUserRepo()
	engine := NewRosterEngine(users, discardLogger)

	resolved, err := engine.ResolveParticipants(context.Background(), nil, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved) != 0 {
		t.Fatalf("expected empty set, got %v", resolved)
	}
}

func TestRosterEngine_Resolve_SkipsEmptyIDs(t *testing.T) {
	users := newStubUserRepo()
	alice := users.seed("alice")
	engine := NewRosterEngine(users, discardLogger)

	resolved, err := engine.ResolveParticipants(context.Background(), []string{"", alice.ID}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resolved) != 1 {
		t.Fatalf("expected 1 member, got %d", len(resolved))
	}
}
