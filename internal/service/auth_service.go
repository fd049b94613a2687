package service

import (
	"context"
	"fmt"

	"survey_platform/internal/model"
	"survey_platform/internal/repository"
	"survey_platform/internal/utils"
)

// AuthService issues and verifies session tokens
type AuthService interface {
	IssueToken(ctx context.Context, identity model.Identity) (string, error)
	// Authenticate verifies signature, expiry and revocation. Rejections wrap ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (*utils.JWTClaims, error)
	Revoke(ctx context.Context, claims *utils.JWTClaims) error
	RevocationEnabled() bool
}

type authService struct {
	jwtUtil     *utils.JWTUtil
	revocations repository.RevocationStore
}

// NewAuthService creates a new AuthService. revocations may be nil, in which
// case tokens are only invalidated by expiry.
func NewAuthService(jwtUtil *utils.JWTUtil, revocations repository.RevocationStore) AuthService {
	return &authService{
		jwtUtil:     jwtUtil,
		revocations: revocations,
	}
}

func (s *authService) IssueToken(_ context.Context, identity model.Identity) (string, error) {
	token, err := s.jwtUtil.GenerateToken(identity)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

func (s *authService) Authenticate(ctx context.Context, token string) (*utils.JWTClaims, error) {
	claims, err := s.jwtUtil.ValidateToken(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}

	if s.revocations != nil && claims.ID != "" {
		revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to check token revocation: %w", err)
		}
		if revoked {
			return nil, fmt.Errorf("%w: token revoked", ErrUnauthorized)
		}
	}
	return claims, nil
}

func (s *authService) Revoke(ctx context.Context, claims *utils.JWTClaims) error {
	if s.revocations == nil {
		return ErrRevocationDisabled
	}
	if claims == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return ErrUnauthorized
	}
	if err := s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (s *authService) RevocationEnabled() bool {
	return s.revocations != nil
}
