package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Token exchange paths by deployment platform.
const (
	PlatformVercel     = "vercel"
	PlatformCloudflare = "cloudflare"

	vercelPath     = "/api/exchange-token"
	cloudflarePath = "/exchange-token"
)

// ExchangePath returns the token exchange path for platform.
// Anything but vercel is served the cloudflare path.
func ExchangePath(platform string) string {
	if strings.EqualFold(platform, PlatformVercel) {
		return vercelPath
	}
	return cloudflarePath
}

// Exchanger trades an authorization code for an access token.
type Exchanger interface {
	Exchange(ctx context.Context, code string) (string, error)
}

// ExchangeError carries the message returned by the exchange service.
type ExchangeError struct {
	Status  int
	Message string
}

func (e *ExchangeError) Error() string {
	return e.Message
}

// HTTPExchanger posts the code to the exchange service.
type HTTPExchanger struct {
	BaseURL  string
	Platform string
	HTTP     *http.Client
}

func (h *HTTPExchanger) Exchange(ctx context.Context, code string) (string, error) {
	body, err := json.Marshal(struct {
		Code string `json:"code"`
	}{Code: code})
	if err != nil {
		return "", err
	}

	u := strings.TrimSuffix(h.BaseURL, "/") + ExchangePath(h.Platform)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := h.HTTP.Do(req)
	if err != nil {
		return "", fmt.Errorf("post %s: %w", u, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", u, err)
	}

	var payload struct {
		AccessToken string `json:"accessToken"`
		Error       string `json:"error"`
	}
	decodeErr := json.Unmarshal(data, &payload)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if decodeErr == nil && payload.Error != "" {
			return "", &ExchangeError{Status: resp.StatusCode, Message: payload.Error}
		}
		return "", fmt.Errorf("post %s: unexpected status %d", u, resp.StatusCode)
	}

	if decodeErr != nil {
		return "", fmt.Errorf("decode %s: %w", u, decodeErr)
	}

	if payload.AccessToken == "" {
		return "", errors.New("no access token in response")
	}

	return payload.AccessToken, nil
}
