package auth

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/miru-cli/miru/log"
)

// LoginTimeout bounds the wait for the authorization redirect.
const LoginTimeout = 5 * time.Minute

// landingGrace bounds the wait for the browser to follow the final redirect.
const landingGrace = 3 * time.Second

type LoginOptions struct {
	// Port of the callback server. Zero picks a free one.
	Port         int
	AuthorizeURL string
	ClientID     string

	Exchanger Exchanger
	Tokens    *Tokens

	// Open shows the authorization page to the user.
	Open func(authURL string) error
}

// AuthorizeURL builds the authorization page address redirecting to redirectURI.
func AuthorizeURL(base, clientID, redirectURI string) string {
	v := url.Values{}
	v.Set("client_id", clientID)
	v.Set("redirect_uri", redirectURI)
	v.Set("response_type", "code")
	return base + "?" + v.Encode()
}

// Login serves the callback, opens the authorization page and waits for
// the redirect, the context or LoginTimeout, whichever comes first.
func Login(ctx context.Context, opts LoginOptions) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, LoginTimeout)
	defer cancel()

	ln, err := net.Listen("tcp", fmt.Sprintf("127.0.0.1:%d", opts.Port))
	if err != nil {
		return Result{}, fmt.Errorf("listen: %w", err)
	}

	server := NewServer(opts.Exchanger, opts.Tokens)
	srv := &http.Server{Handler: server.Handler(), ReadHeaderTimeout: 10 * time.Second}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	port := ln.Addr().(*net.TCPAddr).Port
	redirectURI := fmt.Sprintf("http://localhost:%d/callback", port)
	authURL := AuthorizeURL(opts.AuthorizeURL, opts.ClientID, redirectURI)

	log.Infof("waiting for callback on port %d", port)
	if opts.Open != nil {
		if err := opts.Open(authURL); err != nil {
			log.Warnf("open browser: %s", err)
			return Result{}, fmt.Errorf("open %s: %w", authURL, err)
		}
	}

	var result Result
	select {
	case result = <-server.Results():
	case err := <-serveErr:
		return Result{}, fmt.Errorf("callback server: %w", err)
	case <-ctx.Done():
		return Result{}, fmt.Errorf("authentication timed out: %w", ctx.Err())
	}

	select {
	case <-server.Landed():
	case <-time.After(landingGrace):
	}

	return result, nil
}
