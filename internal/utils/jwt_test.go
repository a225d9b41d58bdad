package utils

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-prompt-tracker/models"
	"github.com/golang-jwt/jwt/v5"
)

var issuedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func testParams() TokenParams {
	return TokenParams{
		Issuer:   "test-issuer",
		Audience: "test-audience",
		Username: "alice",
		Role:     models.RoleAdmin,
		IssuedAt: issuedAt,
		Duration: 2 * time.Hour,
		SignKey:  "secret-key",
	}
}

func at(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testParams())

	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected non-empty SignedString")
	}
	if token.Token == nil {
		t.Error("expected non-nil jwt.Token object")
	}

	claims := token.Claims
	if claims.Name != "alice" {
		t.Errorf("expected name alice, got %s", claims.Name)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("expected role Admin, got %s", claims.Role)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("expected issuer test-issuer, got %s", claims.Issuer)
	}
	if len(claims.Audience) != 1 || claims.Audience[0] != "test-audience" {
		t.Errorf("unexpected audience %v", claims.Audience)
	}
	if !claims.ExpiresAt.Time.Equal(issuedAt.Add(2 * time.Hour)) {
		t.Errorf("expected exp %v, got %v", issuedAt.Add(2*time.Hour), claims.ExpiresAt.Time)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(p *TokenParams)
	}{
		{"empty issuer", func(p *TokenParams) { p.Issuer = "" }},
		{"empty audience", func(p *TokenParams) { p.Audience = "" }},
		{"empty username", func(p *TokenParams) { p.Username = "" }},
		{"zero duration", func(p *TokenParams) { p.Duration = 0 }},
		{"empty key", func(p *TokenParams) { p.SignKey = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testParams()
			tt.mutate(&p)
			if _, err := GenerateJWTToken(p); err == nil {
				t.Error("expected error for invalid parameters, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testParams())
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(token.SignedString, "secret-key", "test-issuer", "test-audience", at(issuedAt))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if parsed.Claims.Name != "alice" || parsed.Claims.Role != models.RoleAdmin {
		t.Errorf("unexpected claims: %+v", parsed.Claims)
	}
	if parsed.SignedString != token.SignedString {
		t.Error("expected signed string to be preserved")
	}
}

func TestValidateAndParseJWTToken_ExpiryBoundary(t *testing.T) {
	token, err := GenerateJWTToken(testParams())
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	expiry := issuedAt.Add(2 * time.Hour)

	if _, err := ValidateAndParseJWTToken(token.SignedString, "secret-key", "test-issuer", "test-audience", at(expiry.Add(-time.Second))); err != nil {
		t.Errorf("expected token to be valid one second before expiry, got %v", err)
	}
	if _, err := ValidateAndParseJWTToken(token.SignedString, "secret-key", "test-issuer", "test-audience", at(expiry)); err == nil {
		t.Error("expected token to be rejected at the expiry instant")
	}
	if _, err := ValidateAndParseJWTToken(token.SignedString, "secret-key", "test-issuer", "test-audience", at(expiry.Add(time.Second))); err == nil {
		t.Error("expected token to be rejected after expiry")
	}
}

func TestValidateAndParseJWTToken_InvalidKey(t *testing.T) {
	token, _ := GenerateJWTToken(testParams())

	if _, err := ValidateAndParseJWTToken(token.SignedString, "wrong-key", "test-issuer", "test-audience", at(issuedAt)); err == nil {
		t.Error("expected error for invalid key")
	}
}

func TestValidateAndParseJWTToken_EmptyKey(t *testing.T) {
	token, _ := GenerateJWTToken(testParams())

	if _, err := ValidateAndParseJWTToken(token.SignedString, "", "test-issuer", "test-audience", at(issuedAt)); err == nil {
		t.Error("expected error for empty key")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	token, _ := GenerateJWTToken(testParams())

	if _, err := ValidateAndParseJWTToken(token.SignedString, "secret-key", "other-issuer", "test-audience", at(issuedAt)); err == nil {
		t.Error("expected error for wrong issuer")
	}
}

func TestValidateAndParseJWTToken_WrongAudience(t *testing.T) {
	token, _ := GenerateJWTToken(testParams())

	if _, err := ValidateAndParseJWTToken(token.SignedString, "secret-key", "test-issuer", "other-audience", at(issuedAt)); err == nil {
		t.Error("expected error for wrong audience")
	}
}

func TestValidateAndParseJWTToken_RejectsOtherAlgorithms(t *testing.T) {
	claims := models.Claims{
		Name: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Audience:  jwt.ClaimStrings{"test-audience"},
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret-key"))
	if err != nil {
		t.Fatalf("failed to sign: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(signed, "secret-key", "test-issuer", "test-audience", at(issuedAt)); err == nil {
		t.Error("expected HS512 token to be rejected")
	}
}

func TestValidateAndParseJWTToken_MissingExpiry(t *testing.T) {
	claims := models.Claims{
		Name: "alice",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:   "test-issuer",
			Audience: jwt.ClaimStrings{"test-audience"},
		},
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret-key"))

	if _, err := ValidateAndParseJWTToken(signed, "secret-key", "test-issuer", "test-audience", at(issuedAt)); err == nil {
		t.Error("expected token without exp to be rejected")
	}
}

func TestValidateAndParseJWTToken_MissingName(t *testing.T) {
	claims := models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "test-issuer",
			Audience:  jwt.ClaimStrings{"test-audience"},
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(time.Hour)),
		},
	}
	signed, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret-key"))

	if _, err := ValidateAndParseJWTToken(signed, "secret-key", "test-issuer", "test-audience", at(issuedAt)); err == nil {
		t.Error("expected token without name claim to be rejected")
	}
}

func TestValidateAndParseJWTToken_Malformed(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.jwt", "secret-key", "test-issuer", "test-audience", at(issuedAt)); err == nil {
		t.Error("expected error for malformed token")
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc", want: "abc"},
		{name: "surrounding spaces", header: "  Bearer   abc  ", want: "abc"},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "other scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "too many parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.header)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
