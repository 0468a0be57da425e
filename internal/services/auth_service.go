package services

import (
	"errors"
	"fmt"
	"little_lemon/internal/auth"
	"little_lemon/internal/models"
	"log"
	"time"
)

// RevocationStore remembers tokens that were logged out before expiry.
type RevocationStore interface {
	RevokeToken(tokenID string, ttl time.Duration) error
	IsTokenRevoked(tokenID string) (bool, error)
}

type AuthService interface {
	Login(username, password string) (string, error)
	Logout(claims *auth.Claims) error
	Principal(token string) (*models.User, *auth.Claims, error)
}

type authService struct {
	users   UserService
	tokens  *auth.TokenManager
	revoked RevocationStore
}

// NewAuthService builds the token service. revoked may be nil, in which
// case logout is not supported.
func NewAuthService(users UserService, tokens *auth.TokenManager, revoked RevocationStore) AuthService {
	return &authService{users: users, tokens: tokens, revoked: revoked}
}

func (s *authService) Login(username, password string) (string, error) {
	user, err := s.users.Authenticate(username, password)
	if err != nil {
		return "", err
	}
	token, _, err := s.tokens.Issue(user.ID, user.Username)
	return token, err
}

func (s *authService) Logout(claims *auth.Claims) error {
	if s.revoked == nil {
		return errors.New("token revocation is not configured")
	}
	return s.revoked.RevokeToken(claims.ID, s.tokens.Remaining(claims))
}

// Principal resolves a bearer token to the user it was issued to, with
// groups loaded.
func (s *authService) Principal(token string) (*models.User, *auth.Claims, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	if s.revoked != nil {
		revoked, err := s.revoked.IsTokenRevoked(claims.ID)
		if err != nil {
			// Fail closed.
			log.Printf("Warning: revocation check failed: %v", err)
			return nil, nil, ErrUnauthorized
		}
		if revoked {
			return nil, nil, ErrUnauthorized
		}
	}

	id, err := claims.UserID()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	user, err := s.users.GetUserByID(id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil, ErrUnauthorized
		}
		return nil, nil, err
	}
	return user, claims, nil
}
