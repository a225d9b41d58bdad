package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-prompt-tracker/internal/config"
	"github.com/MKhiriev/go-prompt-tracker/internal/logger"
	"github.com/MKhiriev/go-prompt-tracker/internal/store"
	"github.com/MKhiriev/go-prompt-tracker/internal/utils"
	"github.com/MKhiriev/go-prompt-tracker/internal/validators"
	"github.com/MKhiriev/go-prompt-tracker/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	validator validators.Validator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	// An empty key makes every token operation fail with ErrSigningKeyMissing.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenAudience is the "aud" claim embedded in every issued JWT.
	tokenAudience string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// passwordHashCost is the bcrypt work factor for new password hashes.
	passwordHashCost int

	// now is the clock used for token issuance and verification.
	now func() time.Time

	// dummyHash is compared against when the user does not exist, so that
	// unknown usernames cost as much as wrong passwords.
	dummyHash func() string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.PasswordHashCost
	return &authService{
		userRepository:   userRepository,
		validator:        validators.NewCredentialsValidator(),
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenAudience:    cfg.TokenAudience,
		tokenDuration:    cfg.TokenDuration,
		passwordHashCost: cost,
		now:              time.Now,
		dummyHash: sync.OnceValue(func() string {
			hash, err := utils.HashPassword("prompt-tracker-dummy-password", cost)
			if err != nil {
				logger.Err(err).Str("func", "NewAuthService").Msg("failed to prepare dummy password hash")
			}
			return hash
		}),
		logger: logger,
	}
}

// Register creates a new user account.
//
// Checks run in this order:
//  1. username is present and at most 100 characters, else ErrValidation;
//  2. username is free, else ErrDuplicateUser (whatever the password);
//  3. password is at least 6 characters and the role is known, else ErrValidation.
//
// The password is stored as a bcrypt hash; an empty role becomes models.RoleUser.
// A concurrent registration of the same username that passes step 2 is caught
// by the store's unique constraint and also reported as ErrDuplicateUser.
func (a *authService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, credentials, validators.FieldUsername, validators.FieldUsernameLength); err != nil {
		log.Warn().Err(err).Str("func", "authService.Register").Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	_, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	switch {
	case err == nil:
		log.Info().Str("func", "authService.Register").Str("username", credentials.Username).Msg("username already taken")
		return models.User{}, ErrDuplicateUser
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("func", "authService.Register").Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := a.validator.Validate(ctx, credentials, validators.FieldPassword, validators.FieldPasswordStrength, validators.FieldRole); err != nil {
		log.Warn().Err(err).Str("func", "authService.Register").Msg("invalid registration data")
		return models.User{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	role := credentials.Role
	if role == "" {
		role = models.RoleUser
	}

	hash, err := utils.HashPassword(credentials.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    a.now().UTC(),
	})
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		return models.User{}, ErrDuplicateUser
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Register").Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("func", "authService.Register").Str("username", registeredUser.Username).Str("role", registeredUser.Role.String()).Msg("user registered")
	return registeredUser, nil
}

// Authenticate verifies credentials and issues a signed token.
//
// Returns:
//   - ErrSigningKeyMissing when no signing key is configured;
//   - ErrValidation if username or password is empty;
//   - ErrInvalidCredentials for an unknown username and for a wrong password alike;
//   - a wrapped storage error if the lookup itself fails.
func (a *authService) Authenticate(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	log := logger.FromContext(ctx)

	if a.tokenSignKey == "" {
		log.Error().Str("func", "authService.Authenticate").Msg("token signing key is not configured")
		return models.Token{}, ErrSigningKeyMissing
	}

	if err := a.validator.Validate(ctx, credentials); err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		_ = utils.ComparePassword(a.dummyHash(), credentials.Password)
		log.Info().Str("func", "authService.Authenticate").Msg("authentication failed")
		return models.Token{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("func", "authService.Authenticate").Msg("user search by username failed")
		return models.Token{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := utils.ComparePassword(foundUser.PasswordHash, credentials.Password); err != nil {
		if !errors.Is(err, utils.ErrPasswordMismatch) {
			log.Err(err).Str("func", "authService.Authenticate").Int64("user_id", foundUser.UserID).Msg("stored password hash is unusable")
		}
		log.Info().Str("func", "authService.Authenticate").Msg("authentication failed")
		return models.Token{}, ErrInvalidCredentials
	}

	return a.createToken(ctx, foundUser)
}

// VerifyToken validates a raw JWT string.
//
// Any signature, algorithm, issuer, audience, expiry or claim problem is
// reported as ErrInvalidToken; expiry has no leeway.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.Claims, error) {
	if a.tokenSignKey == "" {
		logger.FromContext(ctx).Error().Str("func", "authService.VerifyToken").Msg("token signing key is not configured")
		return models.Claims{}, ErrSigningKeyMissing
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.tokenAudience, a.now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "authService.VerifyToken").Msg("token rejected")
		return models.Claims{}, ErrInvalidToken
	}

	if !token.Claims.Role.IsValid() {
		return models.Claims{}, ErrInvalidToken
	}

	return token.Claims, nil
}

// createToken issues a signed JWT for the given user, valid for tokenDuration
// from now.
func (a *authService) createToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(utils.TokenParams{
		Issuer:   a.tokenIssuer,
		Audience: a.tokenAudience,
		Username: user.Username,
		Role:     user.Role,
		IssuedAt: a.now(),
		Duration: a.tokenDuration,
		SignKey:  a.tokenSignKey,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "authService.createToken").Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}
