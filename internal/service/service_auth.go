package service

import (
	"context"
	"fmt"
	"time"

	"github.com/vaantra/vaantra-server/internal/config"
	"github.com/vaantra/vaantra-server/internal/logger"
	"github.com/vaantra/vaantra-server/internal/store"
	"github.com/vaantra/vaantra-server/internal/utils"
	"github.com/vaantra/vaantra-server/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, account linking and
// the JWT token lifecycle using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

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
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that both PhoneNo and Password are non-empty, normalizes the
// preferred language, hashes the password with bcrypt, and delegates
// persistence to the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if PhoneNo or Password is empty.
//   - store.ErrUserAlreadyExists if the phone number is taken.
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.PhoneNo == "" || user.Password == "" {
		log.Error().Str("phoneNo", user.PhoneNo).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user.Language = models.NormalizeLanguage(user.Language)

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = string(hashed)

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("phoneNo", user.PhoneNo).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It looks up the account by phone number and compares the supplied password
// against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if PhoneNo or Password is empty.
//   - store.ErrNoUserWasFound if the account does not exist.
//   - ErrWrongPassword if the password comparison fails.
func (a *authService) Login(ctx context.Context, phoneNo, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if phoneNo == "" || password == "" {
		log.Error().Str("phoneNo", phoneNo).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByPhone(ctx, phoneNo)
	if err != nil {
		log.Err(err).Str("phoneNo", phoneNo).Msg("user search by phone failed")
		return models.User{}, fmt.Errorf("user search by phone failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// User returns the account by ID with its ordered query list populated.
func (a *authService) User(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	queryIDs, err := a.userRepository.ListQueryIDs(ctx, userID)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("listing user query ids failed")
		return models.User{}, fmt.Errorf("listing user query ids failed: %w", err)
	}
	foundUser.Queries = queryIDs

	return foundUser, nil
}

// ActivateAccount links bank-account details to the user.
//
// Linked-account fields are all-or-nothing: the update happens only when
// accountNo, ifscCode and branch are all present, so is_linked can never be
// observed true with a partial detail set.
func (a *authService) ActivateAccount(ctx context.Context, userID int64, accountNo, ifscCode, branch string) (models.User, error) {
	log := logger.FromContext(ctx)

	if accountNo == "" || ifscCode == "" || branch == "" {
		log.Error().Int64("id", userID).Msg("incomplete account details provided")
		return models.User{}, ErrIncompleteAccountDetails
	}

	updatedUser, err := a.userRepository.ActivateAccount(ctx, userID, accountNo, ifscCode, branch)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("account activation failed")
		return models.User{}, fmt.Errorf("account activation failed: %w", err)
	}

	return updatedUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
