// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/veridoc/veridoc/internal/config"
	"github.com/veridoc/veridoc/internal/logger"
	"github.com/veridoc/veridoc/internal/store"
	"github.com/veridoc/veridoc/internal/utils"
	"github.com/veridoc/veridoc/models"
)

// otpCodeMax bounds the 6-digit one-time code space.
const otpCodeMax = 1000000

// authService is the concrete implementation of [AuthService].
//
// Login is two-step: a bcrypt password check first, then a 6-digit
// one-time code mailed to the operator. Codes are single-use, stored
// hashed, and TTL-bound; there is no bypass path.
type authService struct {
	admins   store.AdminRepository
	notifier Notifier

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// otpTTL is the lifetime of a mailed one-time code.
	otpTTL time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given
// AdminRepository and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(admins store.AdminRepository, notifier Notifier, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		admins:        admins,
		notifier:      notifier,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		otpTTL:        cfg.OTPCodeTTL,
		logger:        logger,
	}
}

// BootstrapAdmin creates the operator account if it does not exist yet.
// An already existing email is not an error.
func (a *authService) BootstrapAdmin(ctx context.Context, admin models.Admin, password string) error {
	log := logger.FromContext(ctx)

	if admin.Email == "" || password == "" {
		return ErrInvalidDataProvided
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("password hashing failed: %w", err)
	}
	admin.PasswordHash = string(hash)

	if _, err := a.admins.CreateAdmin(ctx, admin); err != nil {
		if errors.Is(err, store.ErrAdminAlreadyExists) {
			log.Debug().Str("email", admin.Email).Msg("bootstrap admin already present")
			return nil
		}
		return fmt.Errorf("admin creation ended with error: %w", err)
	}

	log.Info().Str("email", admin.Email).Msg("bootstrap admin created")
	return nil
}

// RequestLoginCode verifies the operator password and mails a one-time
// login code. Unknown emails and wrong passwords are indistinguishable to
// the caller ([ErrWrongCredentials]).
func (a *authService) RequestLoginCode(ctx context.Context, email, password string) error {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return ErrInvalidDataProvided
	}

	admin, err := a.admins.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			return ErrWrongCredentials
		}
		return fmt.Errorf("admin lookup failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		log.Warn().Str("email", email).Msg("wrong password")
		return ErrWrongCredentials
	}

	code, err := generateLoginCode()
	if err != nil {
		return fmt.Errorf("login code generation failed: %w", err)
	}

	err = a.admins.SaveLoginCode(ctx, models.LoginCode{
		AdminID:   admin.AdminID,
		CodeHash:  utils.HashOTPCode(code),
		ExpiresAt: time.Now().Add(a.otpTTL),
	})
	if err != nil {
		return fmt.Errorf("login code persistence failed: %w", err)
	}

	a.notifier.SendLoginCode(ctx, admin, code, a.otpTTL)

	return nil
}

// VerifyLoginCode exchanges a live one-time code for a signed session
// token. The code is consumed atomically: a second attempt with the same
// code fails regardless of timing.
func (a *authService) VerifyLoginCode(ctx context.Context, email, code string) (models.Admin, models.Token, error) {
	if email == "" || code == "" {
		return models.Admin{}, models.Token{}, ErrInvalidDataProvided
	}

	admin, err := a.admins.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrAdminNotFound) {
			return models.Admin{}, models.Token{}, ErrLoginCodeInvalid
		}
		return models.Admin{}, models.Token{}, fmt.Errorf("admin lookup failed: %w", err)
	}

	_, err = a.admins.ConsumeLoginCode(ctx, admin.AdminID, utils.HashOTPCode(code), time.Now())
	if err != nil {
		if errors.Is(err, store.ErrLoginCodeNotFound) {
			return models.Admin{}, models.Token{}, ErrLoginCodeInvalid
		}
		return models.Admin{}, models.Token{}, fmt.Errorf("login code consumption failed: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, admin.AdminID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Admin{}, models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return admin, token, nil
}

// ParseToken validates and parses a raw JWT string. Any validation failure
// (expired, wrong issuer, malformed) is normalised to
// [ErrTokenIsExpiredOrInvalid] so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// generateLoginCode draws a uniformly random 6-digit code from crypto/rand.
func generateLoginCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(otpCodeMax))
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%06d", n.Int64()), nil
}
