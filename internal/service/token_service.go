package service

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/noah-isme/sma-dashboard-api/internal/models"
	appErrors "github.com/noah-isme/sma-dashboard-api/pkg/errors"
)

// TokenConfig defines how access tokens are signed.
type TokenConfig struct {
	Secret     string
	Issuer     string
	Expiration time.Duration
}

// TokenIdentity is the subject an access token is minted for.
type TokenIdentity struct {
	UserID   string
	Role     models.UserRole
	Email    string
	FullName string
}

// TokenService issues and validates HS256 access tokens. Tokens only identify
// the caller; no permission is derived from them.
type TokenService struct {
	config TokenConfig
	now    func() time.Time
}

// NewTokenService constructs a TokenService.
func NewTokenService(config TokenConfig) *TokenService {
	if config.Expiration <= 0 {
		config.Expiration = 24 * time.Hour
	}
	return &TokenService{config: config, now: func() time.Time { return time.Now().UTC() }}
}

// Issue signs a token for the identity.
func (s *TokenService) Issue(identity TokenIdentity) (string, time.Time, error) {
	if identity.UserID == "" {
		return "", time.Time{}, appErrors.Clone(appErrors.ErrValidation, "user id is required")
	}
	if !identity.Role.Valid() {
		return "", time.Time{}, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown role %q", identity.Role))
	}
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.config.Expiration)
	claims := &models.JWTClaims{
		UserID:   identity.UserID,
		Role:     identity.Role,
		Email:    identity.Email,
		FullName: identity.FullName,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   identity.UserID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ValidateToken parses and verifies an access token.
func (s *TokenService) ValidateToken(tokenString string) (*models.JWTClaims, error) {
	options := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.config.Issuer != "" {
		options = append(options, jwt.WithIssuer(s.config.Issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &models.JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Secret), nil
	}, options...)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.JWTClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}
	return claims, nil
}
