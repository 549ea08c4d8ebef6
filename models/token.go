package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token kinds carried in the "typ" claim. Access tokens authorize API calls;
// refresh tokens can only be traded for a new pair.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [Claims] for claim access (subject, expiry, token type, role).
//
// SignedString holds the compact serialized form of the token (header.payload.signature)
// ready to be transmitted in HTTP headers or stored on the client side.
//
// UserID is a cached, parsed copy of the "sub" (subject) claim converted to int64.
// It is typically populated after a successful call to [Token.GetUserID] or
// during token construction and avoids repeated string-to-int parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims provides access to the claim set carried by the token.
	Claims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization; use [Token.String] to retrieve it.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	// Excluded from JSON serialization; it is an internal server-side cache.
	UserID int64 `json:"-"`
}

// Claims is the JWT claim set issued by the authentication service. On top of
// the RFC 7519 registered claims it carries the token kind and the role of the
// subject so that authorization checks need no extra lookup.
type Claims struct {
	jwt.RegisteredClaims

	// TokenType is TokenTypeAccess or TokenTypeRefresh.
	TokenType string `json:"typ"`

	// UserType is the role of the subject at issue time.
	UserType UserType `json:"role"`
}

// GetUserID extracts the user identifier from the token's "sub" (subject) claim,
// parses it as a base-10 int64, and returns the result.
//
// Returns an error if the subject claim is missing, empty, or cannot be
// converted to int64.
func (t *Token) GetUserID() (int64, error) {
	userIDString, err := t.Claims.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token
// (the signed, base64url-encoded header.payload.signature string).
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// TokenPair is the response body of the login and refresh endpoints.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RefreshRequest is the request body of the refresh and logout endpoints.
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshToken is the server-side record of an issued refresh token. Tokens
// are rotated on every refresh: the presented token is revoked and a new
// record is created. A revoked or expired record can never be traded again.
type RefreshToken struct {
	// JTI is the token identifier ("jti" claim), unique per issued token.
	JTI string `json:"jti"`

	UserID    int64     `json:"user_id"`
	IssuedAt  time.Time `json:"issued_at"`
	ExpiresAt time.Time `json:"expires_at"`

	// RevokedAt is set when the token is rotated out or blacklisted on
	// logout. Nil while the token is still redeemable.
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// Active reports whether the record can still be traded for a new pair at
// the given instant.
func (r RefreshToken) Active(now time.Time) bool {
	return r.RevokedAt == nil && now.Before(r.ExpiresAt)
}

// TableName returns the name of the database table associated with the
// RefreshToken model.
func (r RefreshToken) TableName() string {
	return "refresh_tokens"
}
