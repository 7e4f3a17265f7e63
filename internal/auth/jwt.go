package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/reliefmap/relief-coordination-api/internal/constants"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrWrongTokenUse = errors.New("token used for the wrong purpose")
)

const (
	tokenUseAccess  = "access"
	tokenUseRefresh = "refresh"
)

// TokenManager signs and verifies the HS256 access and refresh tokens.
type TokenManager struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenManager(secret string) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		accessTTL:  constants.AccessTokenTTL,
		refreshTTL: constants.RefreshTokenTTL,
	}
}

// GenerateAccessToken issues a short-lived token used on the Authorization header.
func (m *TokenManager) GenerateAccessToken(userID uint64) (string, error) {
	return m.generate(userID, tokenUseAccess, m.accessTTL)
}

// GenerateRefreshToken issues a longer-lived token and returns its expiry so
// the caller can persist it alongside the token.
func (m *TokenManager) GenerateRefreshToken(userID uint64) (string, time.Time, error) {
	expiresAt := time.Now().Add(m.refreshTTL)
	token, err := m.generate(userID, tokenUseRefresh, m.refreshTTL)
	if err != nil {
		return "", time.Time{}, err
	}
	return token, expiresAt, nil
}

func (m *TokenManager) generate(userID uint64, use string, ttl time.Duration) (string, error) {
	// iat/exp only have one-second granularity; the random jti keeps tokens
	// issued within the same second distinct.
	jti, err := randomTokenID()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": userID,
		"use":     use,
		"jti":     jti,
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func randomTokenID() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// VerifyAccessToken validates an access token and returns the user ID it carries.
func (m *TokenManager) VerifyAccessToken(tokenString string) (uint64, error) {
	return m.verify(tokenString, tokenUseAccess)
}

// VerifyRefreshToken validates a refresh token and returns the user ID it carries.
func (m *TokenManager) VerifyRefreshToken(tokenString string) (uint64, error) {
	return m.verify(tokenString, tokenUseRefresh)
}

func (m *TokenManager) verify(tokenString, expectedUse string) (uint64, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	if use, _ := claims["use"].(string); use != expectedUse {
		return 0, ErrWrongTokenUse
	}

	rawID, ok := claims["user_id"].(float64)
	if !ok || rawID < 1 {
		return 0, ErrInvalidToken
	}

	return uint64(rawID), nil
}
