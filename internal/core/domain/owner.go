package domain

import (
	"errors"
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUnauthorized         = errors.New("unauthorized")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrPassphraseTooShort   = errors.New("passphrase must be at least 8 characters long")
	ErrPassphraseNotEnabled = errors.New("passphrase login is not configured")
)

// OwnerSubject is the token subject of the planner's single owner.
const OwnerSubject = "owner"

const passphraseCost = 12

func HashPassphrase(plain string) (string, error) {
	if utf8.RuneCountInString(plain) < 8 {
		return "", ErrPassphraseTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plain), passphraseCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassphrase(hash, plain string) error {
	if hash == "" {
		return ErrPassphraseNotEnabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
