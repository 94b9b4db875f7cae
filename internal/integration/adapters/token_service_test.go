package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/property-manager/backend/internal/domain/entity"
)

func TestTokenService(t *testing.T) {
	ctx := context.Background()
	svc := NewTokenService("test-secret", time.Hour)
	user := entity.NewUser("alice", "hash", entity.RoleManager, nil)

	t.Run("round trip preserves identity claims", func(t *testing.T) {
		token, err := svc.GenerateToken(ctx, user)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}

		claims, err := svc.ValidateToken(ctx, token)
		if err != nil {
			t.Fatalf("ValidateToken: %v", err)
		}
		if claims.UserID != user.ID {
			t.Errorf("UserID = %s, want %s", claims.UserID, user.ID)
		}
		if claims.Username != "alice" {
			t.Errorf("Username = %q, want %q", claims.Username, "alice")
		}
		if claims.Role != entity.RoleManager {
			t.Errorf("Role = %q, want %q", claims.Role, entity.RoleManager)
		}
		if !claims.ExpiresAt.After(time.Now()) {
			t.Error("token should not be expired")
		}
	})

	t.Run("rejects tokens signed with another secret", func(t *testing.T) {
		other := NewTokenService("other-secret", time.Hour)
		token, err := other.GenerateToken(ctx, user)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}

		if _, err := svc.ValidateToken(ctx, token); err == nil {
			t.Error("expected validation to fail for a foreign signature")
		}
	})

	t.Run("rejects expired tokens", func(t *testing.T) {
		expired := NewTokenService("test-secret", -time.Minute)
		token, err := expired.GenerateToken(ctx, user)
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}

		if _, err := svc.ValidateToken(ctx, token); err == nil {
			t.Error("expected validation to fail for an expired token")
		}
	})

	t.Run("rejects garbage input", func(t *testing.T) {
		if _, err := svc.ValidateToken(ctx, "not-a-token"); err == nil {
			t.Error("expected validation to fail for malformed input")
		}
	})
}
