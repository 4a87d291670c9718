package session

import (
	"encoding/base64"
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"testing"
)

func makeToken(t *testing.T, payload map[string]any) string {
	t.Helper()

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))

	payloadJson, err := json.Marshal(payload)
	assert.NoError(t, err)

	body := base64.RawURLEncoding.EncodeToString(payloadJson)
	signature := base64.RawURLEncoding.EncodeToString([]byte("unchecked"))

	return header + "." + body + "." + signature
}

func Test_DecodeClaims_WhenWellFormedToken_ShouldReturnClaims(t *testing.T) {

	assert := assert.New(t)

	token := makeToken(t, map[string]any{
		"userId":    42,
		"companyId": 7,
		"email":     "anna@agency.example.com",
		"role":      "recruiter",
		"exp":       1767222000,
	})

	claims := DecodeClaims(token)
	assert.NotNil(claims)
	assert.Equal(42, claims.UserID)
	assert.Equal(7, claims.CompanyID)
	assert.Equal("anna@agency.example.com", claims.Email)
	assert.Equal("recruiter", claims.Role)
	assert.Equal(int64(1767222000), claims.ExpiresAt)
}

func Test_DecodeClaims_WhenRoleMissing_ShouldReturnEmptyRole(t *testing.T) {

	token := makeToken(t, map[string]any{"userId": 1})

	claims := DecodeClaims(token)
	assert.NotNil(t, claims)
	assert.Equal(t, "", claims.Role)
	assert.Equal(t, int64(0), claims.ExpiresAt)
}

func Test_DecodeClaims_WhenMalformedToken_ShouldReturnNil(t *testing.T) {

	malformed := []string{
		"",
		"justsomestring",
		"one.two",
		"one.two.three.four",
		"!!!.???.###",
		"a.b.c",
		makeToken(t, map[string]any{}) + ".extra",
		"eyJhbGciOiJIUzI1NiJ9.not-base64-at-all.sig",
	}

	for _, token := range malformed {
		assert.Nil(t, DecodeClaims(token), "token %q should not decode", token)
	}
}

func Test_DecodeClaims_WhenPayloadIsNotJson_ShouldReturnNil(t *testing.T) {

	header := base64.RawURLEncoding.EncodeToString([]byte(`{"alg":"HS256","typ":"JWT"}`))
	body := base64.RawURLEncoding.EncodeToString([]byte("plain text, no json"))

	assert.Nil(t, DecodeClaims(header+"."+body+".sig"))
}
