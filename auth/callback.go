package auth

import (
	"context"
	"errors"
	"net/url"

	"github.com/miru-cli/miru/log"
)

// Messages shown by the callback page.
const (
	MessageLoggingIn = "Logging in..."
	MessageRevoked   = `Authorization revoked. Please click "Authorize" to grant access.`
	MessageFailed    = "Error logging in :("
)

// Routes the callback navigates to.
const (
	RouteHome    = "/"
	RouteProfile = "/profile"
)

// Navigation is a redirect request.
// Replace drops the current entry from history, Reload forces a full reload.
type Navigation struct {
	Path    string
	Replace bool
	Reload  bool
}

// Navigator performs redirects on behalf of the callback.
type Navigator interface {
	Navigate(Navigation)
}

type Outcome int

const (
	Pending Outcome = iota
	LoggedIn
	Denied
	Failed
)

func (o Outcome) String() string {
	switch o {
	case LoggedIn:
		return "logged in"
	case Denied:
		return "denied"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// Callback handles one authorization redirect.
type Callback struct {
	Exchanger Exchanger
	Tokens    *Tokens
	Navigator Navigator

	message string
	outcome Outcome
	err     error
}

// Message is the text the page shows.
func (c *Callback) Message() string {
	if c.message == "" {
		return MessageLoggingIn
	}
	return c.message
}

// Outcome is the terminal state reached by Mount, or Pending.
func (c *Callback) Outcome() Outcome {
	return c.outcome
}

// Err is the failure behind a Failed outcome.
func (c *Callback) Err() error {
	return c.err
}

// Mount reads the redirect query and completes the login.
// A denied authorization makes no request. A code is exchanged once, never retried.
func (c *Callback) Mount(ctx context.Context, rawQuery string) Outcome {
	if c.outcome != Pending {
		return c.outcome
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		log.Warnf("parse callback query: %s", err)
	}

	if query.Get("error") == "access_denied" {
		c.message = MessageRevoked
		c.outcome = Denied
		c.Navigator.Navigate(Navigation{Path: RouteHome, Replace: true})
		return c.outcome
	}

	code := query.Get("code")
	if code == "" {
		return c.outcome
	}

	token, err := c.Exchanger.Exchange(ctx, code)
	if err == nil {
		err = c.Tokens.SetToken(token)
	}

	if err != nil {
		log.Errorf("token exchange: %s", err)
		c.err = err
		c.message = MessageFailed

		var exchangeErr *ExchangeError
		if errors.As(err, &exchangeErr) && exchangeErr.Message != "" {
			c.message = exchangeErr.Message
		}

		c.outcome = Failed
		c.Navigator.Navigate(Navigation{Path: RouteHome, Replace: true})
		return c.outcome
	}

	c.outcome = LoggedIn
	c.Navigator.Navigate(Navigation{Path: RouteProfile, Reload: true})
	return c.outcome
}
