// Package network builds the HTTP clients used for the metadata API and the token exchange.
package network

import (
	"net/http"
	"time"

	"github.com/miru-cli/miru/constant"
	"github.com/miru-cli/miru/key"
	"github.com/spf13/viper"
)

// New returns a client honoring network.fingerprint.
// Requests carry the application user agent unless one is already set.
func New() *http.Client {
	var base http.RoundTripper = newTransport()
	if viper.GetBool(key.NetworkFingerprint) {
		base = NewFingerprintTransport(base)
	}

	return &http.Client{
		Timeout:   time.Minute,
		Transport: userAgent{next: base},
	}
}

func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 32
	t.MaxIdleConnsPerHost = 8
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	return t
}

type userAgent struct {
	next http.RoundTripper
}

func (u userAgent) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return u.next.RoundTrip(req)
	}

	req = req.Clone(req.Context())
	req.Header.Set("User-Agent", constant.UserAgent)
	return u.next.RoundTrip(req)
}
