package token

import (
	"testing"
	"time"

	"github.com/loopcrm/crm-backend/internal/core/domain"
)

func TestManager_IssueAndVerify(t *testing.T) {
	m := NewManager("secret", time.Hour)

	raw, err := m.Issue("user-1", domain.RoleSales)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	claims, err := m.Verify(raw)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if claims.Subject != "user-1" {
		t.Errorf("subject = %q, want user-1", claims.Subject)
	}
	if claims.Role != domain.RoleSales {
		t.Errorf("role = %q, want sales", claims.Role)
	}
	if !claims.ExpiresAt.After(claims.IssuedAt.Time) {
		t.Errorf("expiry %v not after issued-at %v", claims.ExpiresAt, claims.IssuedAt)
	}

	id := claims.Identity()
	if id.UserID != "user-1" || id.Role != domain.RoleSales {
		t.Errorf("unexpected identity: %+v", id)
	}
}

func TestManager_Verify_WrongSecret(t *testing.T) {
	raw, err := NewManager("secret-a", time.Hour).Issue("user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := NewManager("secret-b", time.Hour).Verify(raw); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestManager_Verify_Expired(t *testing.T) {
	m := NewManager("secret", -time.Minute)
	// NewManager clamps non-positive TTLs, so build the expired token by
	// bypassing the clamp.
	m.ttl = -time.Minute

	raw, err := m.Issue("user-1", domain.RoleAdmin)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	if _, err := m.Verify(raw); err != ErrExpiredToken {
		t.Fatalf("expected ErrExpiredToken, got %v", err)
	}
}

func TestManager_Verify_Malformed(t *testing.T) {
	m := NewManager("secret", time.Hour)
	if _, err := m.Verify("not-a-token"); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestNewManager_DefaultTTL(t *testing.T) {
	m := NewManager("secret", 0)
	if m.ttl != defaultTTL {
		t.Fatalf("ttl = %v, want %v", m.ttl, defaultTTL)
	}
}
