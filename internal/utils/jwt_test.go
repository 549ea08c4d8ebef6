package utils

import (
	"testing"
	"time"

	"github.com/pankajshindecodes-stack/Eventroop/models"
)

func TestGenerateJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(123)
	lifetime := time.Hour
	key := "secret-key"

	token, err := GenerateJWTToken(issuer, userID, models.UserTypeOwner, models.TokenTypeAccess, lifetime, key)

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	// Verify claims
	if token.Claims.Issuer != issuer {
		t.Errorf("expected issuer %s, got %s", issuer, token.Claims.Issuer)
	}
	if token.Claims.Subject != "123" {
		t.Errorf("expected subject '123', got %s", token.Claims.Subject)
	}
	if token.Claims.TokenType != models.TokenTypeAccess {
		t.Errorf("expected token type %s, got %s", models.TokenTypeAccess, token.Claims.TokenType)
	}
	if token.Claims.UserType != models.UserTypeOwner {
		t.Errorf("expected role %s, got %s", models.UserTypeOwner, token.Claims.UserType)
	}
	if token.Claims.ID == "" {
		t.Error("expected non-empty jti claim")
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		issuer    string
		tokenType string
		lifetime  time.Duration
		key       string
	}{
		{"empty issuer", "", models.TokenTypeAccess, time.Hour, "key"},
		{"zero lifetime", "iss", models.TokenTypeAccess, 0, "key"},
		{"empty key", "iss", models.TokenTypeAccess, time.Hour, ""},
		{"unknown token type", "iss", "session", time.Hour, "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.issuer, 1, models.UserTypeCustomer, tt.tokenType, tt.lifetime, tt.key)
			if err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestGenerateTokenPair_Success(t *testing.T) {
	access, refresh, err := GenerateTokenPair("iss", 7, models.UserTypeStaff, time.Minute, time.Hour, "key")

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if access.Claims.TokenType != models.TokenTypeAccess {
		t.Errorf("expected access token, got %s", access.Claims.TokenType)
	}
	if refresh.Claims.TokenType != models.TokenTypeRefresh {
		t.Errorf("expected refresh token, got %s", refresh.Claims.TokenType)
	}
	if access.Claims.ID == refresh.Claims.ID {
		t.Error("expected distinct jti claims for access and refresh tokens")
	}
	if access.SignedString == refresh.SignedString {
		t.Error("expected distinct signed strings for access and refresh tokens")
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	issuer := "test-issuer"
	userID := int64(456)
	key := "secret-key"

	// First generate a valid token
	genToken, _ := GenerateJWTToken(issuer, userID, models.UserTypeManager, models.TokenTypeAccess, 5*time.Minute, key)

	// Now validate it
	parsedToken, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)

	if err != nil {
		t.Fatalf("expected token to be valid, got error: %v", err)
	}
	if parsedToken.UserID != userID {
		t.Errorf("expected userID %d, got %d", userID, parsedToken.UserID)
	}
	if parsedToken.Claims.UserType != models.UserTypeManager {
		t.Errorf("expected role %s, got %s", models.UserTypeManager, parsedToken.Claims.UserType)
	}
	if parsedToken.Claims.TokenType != models.TokenTypeAccess {
		t.Errorf("expected token type %s, got %s", models.TokenTypeAccess, parsedToken.Claims.TokenType)
	}
	if parsedToken.Claims.ID != genToken.Claims.ID {
		t.Errorf("expected jti %s to round-trip, got %s", genToken.Claims.ID, parsedToken.Claims.ID)
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	issuer := "test-issuer"
	key := "correct-key"
	wrongKey := "wrong-key"

	genToken, _ := GenerateJWTToken(issuer, 1, models.UserTypeCustomer, models.TokenTypeAccess, time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, wrongKey, issuer)
	if err == nil {
		t.Error("expected error due to signature mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issuer := "test-issuer"
	key := "key"
	// Token that expired 1 second ago
	genToken, _ := GenerateJWTToken(issuer, 1, models.UserTypeCustomer, models.TokenTypeAccess, -time.Second, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, issuer)
	if err == nil {
		t.Error("expected error for expired token, got nil")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	key := "key"
	genToken, _ := GenerateJWTToken("real-issuer", 1, models.UserTypeCustomer, models.TokenTypeAccess, time.Hour, key)

	_, err := ValidateAndParseJWTToken(genToken.SignedString, key, "fake-issuer")
	if err == nil {
		t.Error("expected error for issuer mismatch, got nil")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	_, err := ValidateAndParseJWTToken("not.a.token", "key", "iss")
	if err == nil {
		t.Error("expected error for malformed token string, got nil")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", false},
		{"padded header", "  Bearer token  ", "token", false},
		{"missing token", "Bearer ", "", true},
		{"no scheme", "abc.def.ghi", "", true},
		{"empty header", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected token %q, got %q", tt.want, got)
			}
		})
	}
}
