package crypto

import (
	"testing"
	"time"
)

func TestGenerateAndValidateToken(t *testing.T) {
	const secret = "test-secret"
	const userID = int64(7)

	token, err := GenerateToken(userID, secret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty string")
	}

	claims, err := ValidateToken(token, secret)
	if err != nil {
		t.Fatalf("ValidateToken() unexpected error: %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("ValidateToken() UserID = %d, want %d", claims.UserID, userID)
	}
	if claims.Issuer != tokenIssuer {
		t.Errorf("ValidateToken() Issuer = %q, want %q", claims.Issuer, tokenIssuer)
	}
}

func TestValidateTokenRejections(t *testing.T) {
	good, err := GenerateToken(7, "correct-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	expired, err := GenerateToken(7, "correct-secret", -time.Minute)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret string
	}{
		{"garbage token", "not-a-valid-token", "correct-secret"},
		{"wrong secret", good, "wrong-secret"},
		{"expired token", expired, "correct-secret"},
		{"empty token", "", "correct-secret"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateToken(tt.token, tt.secret); err == nil {
				t.Error("ValidateToken() expected error")
			}
		})
	}
}
