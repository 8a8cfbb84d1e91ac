package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/stock-keeper/internal/config"
	"github.com/MKhiriev/stock-keeper/internal/logger"
	"github.com/MKhiriev/stock-keeper/internal/store"
	"github.com/MKhiriev/stock-keeper/internal/utils"
	"github.com/MKhiriev/stock-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles credential verification and the JWT token lifecycle using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	// Expired tokens require a new login; issued tokens are never revoked.
	tokenDuration time.Duration

	// adminUsername and adminPassword describe the bootstrap account seeded
	// by EnsureDefaultUser when no such user exists yet.
	adminUsername string
	adminPassword string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		adminUsername:  cfg.AdminUsername,
		adminPassword:  cfg.AdminPassword,
		logger:         logger,
	}
}

// Login authenticates an existing user.
//
// It looks up the account by username and compares the supplied password
// against the stored bcrypt hash. The hash is never decrypted; comparison is
// one-way.
//
// Returns the authenticated user record or ErrInvalidCredentials when the
// username is unknown, the password does not match, or either field is empty.
// The three causes are intentionally indistinguishable so that responses do
// not leak which usernames exist.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if username == "" || password == "" {
		log.Error().Str("username", username).Msg("empty credentials provided")
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Err(err).Str("username", username).Msg("unknown username")
			return models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.PasswordHash), []byte(password)); err != nil {
		log.Err(err).
			Int64("id", foundUser.UserID).
			Str("username", foundUser.Username).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
//
// Returns the token model on success or a wrapped error if JWT generation
// fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the issuer claim, and expiry. Any validation failure is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// EnsureDefaultUser creates the bootstrap administrator account if it does
// not exist yet. The configured plaintext password is bcrypt-hashed before
// storage. The operation is idempotent: an existing account (including one
// created concurrently by another instance) is left untouched.
func (a *authService) EnsureDefaultUser(ctx context.Context) error {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByUsername(ctx, a.adminUsername)
	if err == nil {
		log.Debug().Str("username", a.adminUsername).Msg("default user already exists")
		return nil
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return fmt.Errorf("default user lookup failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(a.adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash default user password: %w", err)
	}

	_, err = a.userRepository.CreateUser(ctx, models.User{
		Username:     a.adminUsername,
		PasswordHash: string(hash),
	})
	if err != nil {
		// another instance may have seeded the account first
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			return nil
		}
		return fmt.Errorf("default user creation failed: %w", err)
	}

	log.Info().Str("username", a.adminUsername).Msg("default user created")
	return nil
}
