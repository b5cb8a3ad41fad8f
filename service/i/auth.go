package i

import (
	"github.com/beka-birhanu/mazegen/identity"
)

// Authenticator registers accounts and signs them in.
type Authenticator interface {
	Register(username, password string) error
	SignIn(username, password string) (*identity.Account, string, error)
}
