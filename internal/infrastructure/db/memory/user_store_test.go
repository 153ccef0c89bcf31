package memory

import (
	"context"
	"testing"

	"github.com/nzwalks/walks-api/internal/core/domain"
)

func TestUserStore_FindByUsername(t *testing.T) {
	store := NewUserStore([]*domain.User{
		{ID: "1", Username: "alice", PasswordHash: "hash", Roles: []string{domain.RoleReader}},
	})

	u, err := store.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("expected user, got %v", err)
	}
	if u.Username != "alice" || len(u.Roles) != 1 {
		t.Fatalf("unexpected user: %+v", u)
	}

	if _, err := store.FindByUsername(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserStore_ReturnsCopies(t *testing.T) {
	store := NewUserStore([]*domain.User{
		{ID: "1", Username: "alice", Roles: []string{domain.RoleReader}},
	})

	u, _ := store.FindByUsername(context.Background(), "alice")
	u.Username = "mallory"

	again, _ := store.FindByUsername(context.Background(), "alice")
	if again.Username != "alice" {
		t.Fatalf("store snapshot was mutated through a returned record")
	}
}
