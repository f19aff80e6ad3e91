package network

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/miru-cli/miru/constant"
	"github.com/miru-cli/miru/key"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func TestNew(t *testing.T) {
	Convey("Given a server echoing the user agent", t, func() {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = io.WriteString(w, r.UserAgent())
		}))
		defer srv.Close()

		get := func(c *http.Client, ua string) string {
			req := lo.Must(http.NewRequest(http.MethodGet, srv.URL, nil))
			if ua != "" {
				req.Header.Set("User-Agent", ua)
			}
			resp := lo.Must(c.Do(req))
			defer resp.Body.Close()
			return string(lo.Must(io.ReadAll(resp.Body)))
		}

		for _, fingerprint := range []bool{false, true} {
			viper.Set(key.NetworkFingerprint, fingerprint)

			Convey(fmt.Sprintf("fingerprint=%v applies the default user agent", fingerprint), func() {
				So(get(New(), ""), ShouldEqual, constant.UserAgent)
			})

			Convey(fmt.Sprintf("fingerprint=%v keeps an explicit user agent", fingerprint), func() {
				So(get(New(), "curl/8"), ShouldEqual, "curl/8")
			})
		}
		viper.Set(key.NetworkFingerprint, false)
	})

	Convey("Fingerprinting swaps the transport", t, func() {
		viper.Set(key.NetworkFingerprint, true)
		defer viper.Set(key.NetworkFingerprint, false)

		ua, ok := New().Transport.(userAgent)
		So(ok, ShouldBeTrue)
		_, ok = ua.next.(*FingerprintTransport)
		So(ok, ShouldBeTrue)
	})
}
