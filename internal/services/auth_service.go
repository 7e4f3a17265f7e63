package services

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/reliefmap/relief-coordination-api/internal/auth"
	"github.com/reliefmap/relief-coordination-api/internal/constants"
	"github.com/reliefmap/relief-coordination-api/internal/models"
	"github.com/reliefmap/relief-coordination-api/internal/repository"
)

var (
	ErrUsernameLength       = errors.New("username must be between 3 and 50 characters")
	ErrPasswordTooShort     = errors.New("password must be at least 6 characters if provided")
	ErrContactNumberLength  = errors.New("contact number must be between 8 and 20 characters")
	ErrAccountDisabled      = errors.New("account is disabled")
	ErrPasswordRequired     = errors.New("password is required for this account")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrUsernameTaken        = errors.New("username already exists")
	ErrUserNotFound         = errors.New("user not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
	ErrFailedToIssueTokens  = errors.New("failed to issue tokens")
)

// AuthService handles the register-or-login flow and user lookups.
type AuthService struct {
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	tokens           *auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repository.UserRepository, refreshTokenRepo repository.RefreshTokenRepository, tokens *auth.TokenManager) *AuthService {
	return &AuthService{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		tokens:           tokens,
	}
}

// RegisterOrLoginInput holds the credentials for the combined signup/signin
// entry point. Password and contact number are optional.
type RegisterOrLoginInput struct {
	Username      string
	Password      string
	ContactNumber string
}

// AuthResult is the outcome of a successful register-or-login call.
type AuthResult struct {
	User         *models.User
	AccessToken  string
	RefreshToken string
	// Registered is true when the call created a new account rather than
	// logging an existing one in.
	Registered bool
}

// RegisterOrLogin creates the user when the username is unknown and logs the
// user in otherwise. Both paths end with a fresh access/refresh token pair and
// the refresh token persisted.
func (s *AuthService) RegisterOrLogin(input RegisterOrLoginInput) (*AuthResult, error) {
	username := strings.TrimSpace(input.Username)
	// Counted in runes, not bytes, so non-Latin usernames measure correctly.
	if n := utf8.RuneCountInString(username); n < constants.MinUsernameLength || n > constants.MaxUsernameLength {
		return nil, ErrUsernameLength
	}
	if input.Password != "" && len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if contact := strings.TrimSpace(input.ContactNumber); contact != "" &&
		(len(contact) < constants.MinContactNumberLength || len(contact) > constants.MaxContactNumberLength) {
		return nil, ErrContactNumberLength
	}

	user, err := s.userRepo.FindByUsername(username)
	registered := false
	switch {
	case err == nil:
		if err := s.verifyExistingUser(user, input.Password); err != nil {
			return nil, err
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user, err = s.createUser(username, input)
		if err != nil {
			return nil, err
		}
		registered = true
	default:
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	accessToken, refreshToken, err := s.issueTokens(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Registered:   registered,
	}, nil
}

// verifyExistingUser applies the login half of the flow: the account must be
// active, and when it carries a password hash the provided password must match.
// Passwordless accounts log in without a password check.
func (s *AuthService) verifyExistingUser(user *models.User, password string) error {
	if user.Status != models.UserStatusActive {
		return ErrAccountDisabled
	}

	if user.PasswordHash == nil {
		return nil
	}

	if password == "" {
		return ErrPasswordRequired
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}

	return nil
}

func (s *AuthService) createUser(username string, input RegisterOrLoginInput) (*models.User, error) {
	user := &models.User{
		Username: username,
		// Role is fixed server-side; it is never read from the request.
		Role:   models.RoleUser,
		Status: models.UserStatusActive,
	}

	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, ErrFailedToHashPassword
		}
		passwordHash := string(hashed)
		user.PasswordHash = &passwordHash
	}
	if contact := strings.TrimSpace(input.ContactNumber); contact != "" {
		user.ContactNumber = &contact
	}

	if err := s.userRepo.Create(user); err != nil {
		// A racing registration for the same username loses on the unique
		// constraint; surface it as a duplicate, not a generic failure.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

func (s *AuthService) issueTokens(userID uint64) (string, string, error) {
	accessToken, err := s.tokens.GenerateAccessToken(userID)
	if err != nil {
		return "", "", ErrFailedToIssueTokens
	}

	refreshToken, expiresAt, err := s.tokens.GenerateRefreshToken(userID)
	if err != nil {
		return "", "", ErrFailedToIssueTokens
	}

	if err := s.refreshTokenRepo.Create(&models.RefreshToken{
		UserID:    userID,
		Token:     refreshToken,
		ExpiresAt: expiresAt,
	}); err != nil {
		return "", "", fmt.Errorf("failed to store refresh token: %w", err)
	}

	// Opportunistic cleanup; a failure here is not worth failing the login.
	if err := s.refreshTokenRepo.DeleteExpired(time.Now()); err != nil {
		logrus.WithError(err).Warn("failed to prune expired refresh tokens")
	}

	return accessToken, refreshToken, nil
}

// GetUser retrieves a user by ID.
func (s *AuthService) GetUser(id uint64) (*models.User, error) {
	user, err := s.userRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}

	return user, nil
}
