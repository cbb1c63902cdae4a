package jwt

import (
	"testing"
	"time"

	"salon-agenda/config"
)

func testManager() *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret-at-least-32-characters!",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 30 * 24 * time.Hour,
	})
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	m := testManager()

	token, err := m.GenerateAccessToken("user-1", "client")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID = %q, want user-1", claims.UserID)
	}
	if claims.Role != "client" {
		t.Errorf("Role = %q, want client", claims.Role)
	}
	if claims.TokenType != "access" {
		t.Errorf("TokenType = %q, want access", claims.TokenType)
	}
	if claims.ID == "" {
		t.Error("expected a non-empty jti")
	}
}

func TestGenerateRefreshToken_TokenType(t *testing.T) {
	m := testManager()

	token, err := m.GenerateRefreshToken("user-1", "admin", true)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	claims, err := m.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.TokenType != "refresh" {
		t.Errorf("TokenType = %q, want refresh", claims.TokenType)
	}
	if !claims.RememberMe {
		t.Error("expected RememberMe to survive the round trip")
	}
}

func TestGenerateRefreshToken_RememberMeExtendsTTL(t *testing.T) {
	m := testManager()

	short, err := m.GenerateRefreshToken("user-1", "client", false)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}
	long, err := m.GenerateRefreshToken("user-1", "client", true)
	if err != nil {
		t.Fatalf("GenerateRefreshToken: %v", err)
	}

	shortClaims, err := m.ParseToken(short)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	longClaims, err := m.ParseToken(long)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}

	if !longClaims.ExpiresAt.Time.After(shortClaims.ExpiresAt.Time) {
		t.Errorf("remember-me token expires %v, not after %v",
			longClaims.ExpiresAt.Time, shortClaims.ExpiresAt.Time)
	}
}

func TestParseToken_WrongSecret(t *testing.T) {
	m := testManager()

	token, err := m.GenerateAccessToken("user-1", "client")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	other := NewManager(&config.AuthConfig{
		JWTSecret:               "a-completely-different-signing-secret",
		AccessTokenTTL:          15 * time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 30 * 24 * time.Hour,
	})

	if _, err := other.ParseToken(token); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestParseToken_Expired(t *testing.T) {
	m := NewManager(&config.AuthConfig{
		JWTSecret:               "test-secret-at-least-32-characters!",
		AccessTokenTTL:          -time.Minute,
		RefreshTokenTTLDefault:  24 * time.Hour,
		RefreshTokenTTLRemember: 30 * 24 * time.Hour,
	})

	token, err := m.GenerateAccessToken("user-1", "client")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	if _, err := m.ParseToken(token); err != ErrTokenExpired {
		t.Errorf("expected ErrTokenExpired, got %v", err)
	}
}

func TestParseToken_Garbage(t *testing.T) {
	m := testManager()

	if _, err := m.ParseToken("not.a.token"); err != ErrTokenInvalid {
		t.Errorf("expected ErrTokenInvalid, got %v", err)
	}
}

func TestUniqueJTIPerToken(t *testing.T) {
	m := testManager()

	a, _ := m.GenerateAccessToken("user-1", "client")
	b, _ := m.GenerateAccessToken("user-1", "client")

	ca, err := m.ParseToken(a)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	cb, err := m.ParseToken(b)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if ca.ID == cb.ID {
		t.Error("expected distinct jti per issued token")
	}
}
