package utils

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	InitJWT("test-secret", 15*time.Minute, time.Hour)

	token, err := GenerateAccessToken(42, RoleHospital)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	claims, err := ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("ValidateAccessToken failed: %v", err)
	}
	if claims.AccountID != 42 {
		t.Errorf("account id %d, want 42", claims.AccountID)
	}
	if claims.Role != RoleHospital {
		t.Errorf("role %q, want %q", claims.Role, RoleHospital)
	}
}

func TestValidateRejectsTamperedToken(t *testing.T) {
	InitJWT("test-secret", 15*time.Minute, time.Hour)

	token, err := GenerateAccessToken(42, RolePatient)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := ValidateAccessToken(token + "x"); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	InitJWT("secret-one", 15*time.Minute, time.Hour)
	token, err := GenerateAccessToken(1, RoleAdmin)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	InitJWT("secret-two", 15*time.Minute, time.Hour)
	if _, err := ValidateAccessToken(token); err == nil {
		t.Fatal("expected token signed with a different secret to be rejected")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	InitJWT("test-secret", -time.Minute, time.Hour)

	token, err := GenerateAccessToken(1, RolePatient)
	if err != nil {
		t.Fatalf("GenerateAccessToken failed: %v", err)
	}

	if _, err := ValidateAccessToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestRefreshTokenHashingIsDeterministic(t *testing.T) {
	token, err := GenerateRefreshToken()
	if err != nil {
		t.Fatalf("GenerateRefreshToken failed: %v", err)
	}
	if token == "" {
		t.Fatal("empty refresh token")
	}

	if HashRefreshToken(token) != HashRefreshToken(token) {
		t.Error("hashing the same token twice must give the same digest")
	}
	if HashRefreshToken(token) == token {
		t.Error("stored value must not equal the raw token")
	}

	other, _ := GenerateRefreshToken()
	if other == token {
		t.Error("refresh tokens must be unique")
	}
}
