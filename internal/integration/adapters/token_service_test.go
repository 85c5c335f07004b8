package adapters

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestTokenService_RoundTrip(t *testing.T) {
	service := NewTokenService("test-secret")
	ctx := context.Background()
	userID := uuid.New()

	pair, err := service.GenerateTokenPair(ctx, userID, "alice@example.com")
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be non-empty")
	}

	claims, err := service.ValidateAccessToken(ctx, pair.AccessToken)
	if err != nil {
		t.Fatalf("failed to validate access token: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("expected user ID %s, got %s", userID, claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("expected email to round-trip, got %q", claims.Email)
	}
}

func TestTokenService_RejectsRefreshTokenAsAccess(t *testing.T) {
	service := NewTokenService("test-secret")
	ctx := context.Background()

	pair, err := service.GenerateTokenPair(ctx, uuid.New(), "alice@example.com")
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	if _, err := service.ValidateAccessToken(ctx, pair.RefreshToken); err == nil {
		t.Fatal("refresh token must not validate as an access token")
	}
}

func TestTokenService_RejectsWrongSecret(t *testing.T) {
	ctx := context.Background()

	pair, err := NewTokenService("secret-a").GenerateTokenPair(ctx, uuid.New(), "alice@example.com")
	if err != nil {
		t.Fatalf("failed to generate token pair: %v", err)
	}

	if _, err := NewTokenService("secret-b").ValidateAccessToken(ctx, pair.AccessToken); err == nil {
		t.Fatal("token signed with a different secret must be rejected")
	}
}

func TestTokenService_RejectsGarbage(t *testing.T) {
	service := NewTokenService("test-secret")

	if _, err := service.ValidateAccessToken(context.Background(), "not-a-jwt"); err == nil {
		t.Fatal("malformed token must be rejected")
	}
}

func TestPasswordService_HashAndVerify(t *testing.T) {
	service := NewPasswordService()

	hash, err := service.HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("hash must not equal the plain password")
	}

	if err := service.VerifyPassword(hash, "correct horse battery staple"); err != nil {
		t.Errorf("expected matching password to verify: %v", err)
	}
	if err := service.VerifyPassword(hash, "wrong password"); err == nil {
		t.Error("expected mismatched password to fail verification")
	}
}

func TestPasswordService_ValidatePasswordStrength(t *testing.T) {
	service := NewPasswordService()

	if err := service.ValidatePasswordStrength("short"); err == nil {
		t.Error("expected short password to be rejected")
	}
	if err := service.ValidatePasswordStrength("long enough"); err != nil {
		t.Errorf("expected valid password to pass: %v", err)
	}
}
