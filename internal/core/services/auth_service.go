package services

import (
	"context"

	"github.com/comitanigiacomo/kanso-planner/internal/core/domain"
)

type TokenIssuer interface {
	GenerateToken(subject string) (string, error)
}

// AuthService exchanges the owner's passphrase for an access token.
type AuthService struct {
	passphraseHash string
	tokens         TokenIssuer
}

func NewAuthService(passphraseHash string, tokens TokenIssuer) *AuthService {
	return &AuthService{
		passphraseHash: passphraseHash,
		tokens:         tokens,
	}
}

func (s *AuthService) Enabled() bool {
	return s.passphraseHash != ""
}

func (s *AuthService) Login(ctx context.Context, passphrase string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := domain.CheckPassphrase(s.passphraseHash, passphrase); err != nil {
		return "", err
	}
	return s.tokens.GenerateToken(domain.OwnerSubject)
}
