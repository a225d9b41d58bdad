package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-prompt-tracker/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenParams groups the inputs required to mint a token.
type TokenParams struct {
	Issuer   string
	Audience string
	Username string
	Role     models.Role
	IssuedAt time.Time
	Duration time.Duration
	SignKey  string
}

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following claims:
//   - name: the username
//   - role: the user's role
//   - Issuer    (iss): identifies the service that issued the token
//   - Audience  (aud): identifies the service expected to accept the token
//   - Subject   (sub): the username
//   - IssuedAt  (iat): params.IssuedAt
//   - ExpiresAt (exp): params.IssuedAt plus params.Duration
//
// Returns an error if issuer, audience, username, duration or sign key are
// empty or zero.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken(utils.TokenParams{
//	    Issuer: "go-prompt-tracker", Audience: "api", Username: "alice",
//	    Role: models.RoleUser, IssuedAt: time.Now(), Duration: 2 * time.Hour,
//	    SignKey: "secret",
//	})
func GenerateJWTToken(params TokenParams) (models.Token, error) {
	if params.Issuer == "" || params.Audience == "" || params.Username == "" ||
		params.Duration <= 0 || params.SignKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := models.Claims{
		Name: params.Username,
		Role: params.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    params.Issuer,
			Subject:   params.Username,
			Audience:  jwt.ClaimStrings{params.Audience},
			ExpiresAt: jwt.NewNumericDate(params.IssuedAt.Add(params.Duration)),
			IssuedAt:  jwt.NewNumericDate(params.IssuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(params.SignKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, Claims: claims, SignedString: tokenString}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signing method must be HS256; the signature is verified with signKey
//   - Issuer (iss) must equal issuer
//   - Audience (aud) must contain audience
//   - Expiration (exp) must be present and strictly after now, without leeway
//   - name claim must be present
//
// now supplies the verification instant; pass time.Now in production code.
//
// Example usage:
//
//	token, err := utils.ValidateAndParseJWTToken(raw, "secret", "go-prompt-tracker", "api", time.Now)
//	if err != nil {
//	    // handle invalid or expired token
//	}
func ValidateAndParseJWTToken(tokenString, signKey, issuer, audience string, now func() time.Time) (models.Token, error) {
	if signKey == "" {
		return models.Token{}, errors.New("empty sign key")
	}

	claims := &models.Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithLeeway(0),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.Name == "" {
		return models.Token{}, errors.New("empty name claim")
	}

	return models.Token{Token: token, Claims: *claims, SignedString: tokenString}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
