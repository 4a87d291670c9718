package session

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims are the decoded payload fields of a bearer token. The client only
// reads them to decide which surface to show; authorization itself is
// enforced server-side, so the signature is deliberately not verified here.
type Claims struct {
	UserID    int
	CompanyID int
	Email     string
	Role      string
	ExpiresAt int64
}

const RoleOnboarding = "onboarding"

type tokenClaims struct {
	UserID    int    `json:"userId"`
	CompanyID int    `json:"companyId"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// DecodeClaims extracts the payload of a bearer token without verifying its
// signature. It returns nil for any malformed input and never panics: a token
// that cannot be decoded is treated as "unauthenticated", not as an error.
func DecodeClaims(token string) *Claims {

	if token == "" {
		return nil
	}

	parsed := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, parsed); err != nil {
		return nil
	}

	claims := &Claims{
		UserID:    parsed.UserID,
		CompanyID: parsed.CompanyID,
		Email:     parsed.Email,
		Role:      parsed.Role,
	}
	if parsed.ExpiresAt != nil {
		claims.ExpiresAt = parsed.ExpiresAt.Unix()
	}
	return claims
}
