package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

var (
	errJWTParams      = errors.New("invalid params for generating JWT Token")
	errJWTSubject     = errors.New("token has no user id subject")
	errBearerHeader   = errors.New("invalid authorization header")
	hs256             = jwt.SigningMethodHS256
	acceptedJWTMethod = jwt.WithValidMethods([]string{hs256.Alg()})
)

// GenerateJWTToken signs an HS256 token whose subject is userID. The token
// expires lifetime after now; a negative lifetime yields an already expired
// token, which the client tests rely on.
func GenerateJWTToken(issuer string, userID int64, lifetime time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || lifetime == 0 || signKey == "" {
		return models.Token{}, errJWTParams
	}

	now := time.Now()
	token := jwt.NewWithClaims(hs256, &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   strconv.FormatInt(userID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
	})

	signed, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}
	return models.Token{Token: token, SignedString: signed}, nil
}

// ValidateAndParseJWTToken checks signature, issuer and expiry, then reads the
// user id from the subject.
func ValidateAndParseJWTToken(tokenString, signKey, issuer string) (models.Token, error) {
	keyFunc := func(*jwt.Token) (any, error) { return []byte(signKey), nil }

	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, keyFunc, jwt.WithIssuer(issuer), acceptedJWTMethod)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := subjectUserID(token)
	if err != nil {
		return models.Token{}, err
	}
	return models.Token{Token: token, UserID: userID}, nil
}

func subjectUserID(token *jwt.Token) (int64, error) {
	subject, err := token.Claims.GetSubject()
	if err != nil || subject == "" {
		return 0, errJWTSubject
	}

	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errJWTSubject, err)
	}
	return userID, nil
}

// ParseUnverifiedJWTToken decodes tokenString without checking its signature.
// The client only reads the expiry of a token it was issued.
func ParseUnverifiedJWTToken(tokenString string) (models.Token, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &jwt.RegisteredClaims{})
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred parsing token: %w", err)
	}
	return models.Token{Token: token, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// value. The scheme is case-insensitive.
func ParseBearerToken(header string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return "", errBearerHeader
	}
	return token, nil
}

func BearerHeader(token string) string {
	return "Bearer " + token
}
