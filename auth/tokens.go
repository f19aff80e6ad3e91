// Package auth completes the OAuth login: it receives the authorization
// redirect, trades the code for an access token and stores it.
package auth

import (
	"github.com/miru-cli/miru/storage"
	"github.com/samber/mo"
)

// TokenKey is the store key of the access token.
const TokenKey = "accessToken"

// Tokens reads and writes the access token.
type Tokens struct {
	store storage.Store
}

func NewTokens(store storage.Store) *Tokens {
	return &Tokens{store: store}
}

// Token returns the stored access token, if any.
func (t *Tokens) Token() (mo.Option[string], error) {
	v, ok, err := t.store.Get(TokenKey)
	if err != nil {
		return mo.None[string](), err
	}

	if !ok || v == "" {
		return mo.None[string](), nil
	}

	return mo.Some(v), nil
}

func (t *Tokens) SetToken(token string) error {
	return t.store.Set(TokenKey, token)
}

func (t *Tokens) DeleteToken() error {
	return t.store.Delete(TokenKey)
}
