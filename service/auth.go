package service

import (
	"errors"
	"time"

	"github.com/beka-birhanu/mazegen/identity"
	"github.com/beka-birhanu/mazegen/service/i"
	"github.com/google/uuid"
)

const (
	tokenLifetime = 24 * time.Hour
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already taken")
)

// Auth registers accounts and issues tokens for them.
type Auth struct {
	accountRepo i.AccountRepo
	tokenizer   i.Tokenizer
}

// NewAuthService creates an Auth service.
func NewAuthService(ar i.AccountRepo, t i.Tokenizer) (*Auth, error) {
	if ar == nil || t == nil {
		return nil, ErrMissingDependency
	}
	return &Auth{
		accountRepo: ar,
		tokenizer:   t,
	}, nil
}

// Register creates a new account.
func (a *Auth) Register(username, password string) error {
	if _, err := a.accountRepo.ByUsername(username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, i.ErrNotFound) {
		return err
	}

	account, err := identity.NewAccount(identity.AccountConfig{
		ID:            uuid.New(),
		Username:      username,
		PlainPassword: password,
	})
	if err != nil {
		return err
	}

	// A concurrent registration may take the name after the lookup above.
	if err := a.accountRepo.Save(account); err != nil {
		if errors.Is(err, i.ErrConflict) {
			return ErrUsernameTaken
		}
		return err
	}
	return nil
}

// SignIn checks the credentials and returns the account with a fresh token.
func (a *Auth) SignIn(username, password string) (*identity.Account, string, error) {
	account, err := a.accountRepo.ByUsername(username)
	if err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if !account.VerifyPassword(password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokenizer.Generate(map[string]interface{}{
		i.ClaimAccountID: account.ID.String(),
		i.ClaimUsername:  account.Username,
	}, tokenLifetime)
	if err != nil {
		return nil, "", err
	}

	return account, token, nil
}
