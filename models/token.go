package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued by the server for one user.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation
	// (base64url header.payload.signature) sent in the Authorization header.
	SignedString string `json:"-"`

	// UserID is the owner identifier parsed from the "sub" claim.
	UserID int64 `json:"-"`
}

// String implements fmt.Stringer and returns the compact JWS form.
func (t *Token) String() string {
	return t.SignedString
}

// ExpiresAt returns the "exp" claim, or the zero time when the token carries
// none.
func (t *Token) ExpiresAt() time.Time {
	if t.Token == nil || t.Claims == nil {
		return time.Time{}
	}
	exp, err := t.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
