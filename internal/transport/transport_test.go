package transport

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	utls "github.com/refraction-networking/utls"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func okResponse(body string) *http.Response {
	return &http.Response{StatusCode: http.StatusOK, Body: io.NopCloser(strings.NewReader(body))}
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	assert.Equal(t, 10*time.Second, opts.DialTimeout)
	assert.Equal(t, utls.HelloChrome_Auto, opts.HelloID)

	custom := Options{DialTimeout: time.Second, HelloID: utls.HelloFirefox_Auto}.withDefaults()
	assert.Equal(t, time.Second, custom.DialTimeout)
	assert.Equal(t, utls.HelloFirefox_Auto, custom.HelloID)
}

func TestRoundTrip_PlainHTTPSkipsH2(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "plain")
	}))
	defer srv.Close()

	client := &http.Client{Transport: NewChromeTransport(Options{})}
	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, "plain", string(body))
}

func TestRoundTrip_H2Success(t *testing.T) {
	h1Called := false
	tr := &chromeTransport{
		h2: roundTripFunc(func(*http.Request) (*http.Response, error) { return okResponse("h2"), nil }),
		h1: roundTripFunc(func(*http.Request) (*http.Response, error) {
			h1Called = true
			return okResponse("h1"), nil
		}),
	}

	req := httptest.NewRequest(http.MethodGet, "https://inspector.example/health", nil)
	resp, err := tr.RoundTrip(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "h2", string(body))
	assert.False(t, h1Called)
}

func TestRoundTrip_FallbackReplaysBody(t *testing.T) {
	var replayed string
	tr := &chromeTransport{
		h2: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			_, _ = io.ReadAll(req.Body)
			return nil, errNotH2
		}),
		h1: roundTripFunc(func(req *http.Request) (*http.Response, error) {
			b, err := io.ReadAll(req.Body)
			if err != nil {
				return nil, err
			}
			replayed = string(b)
			return okResponse("h1"), nil
		}),
	}

	req, err := http.NewRequest(http.MethodPost, "https://inspector.example/configurations/parse", strings.NewReader(`{"a":1}`))
	require.NoError(t, err)

	resp, err := tr.RoundTrip(req)
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "h1", string(body))
	assert.Equal(t, `{"a":1}`, replayed)
}

func TestRoundTrip_FallbackWithoutGetBody(t *testing.T) {
	tr := &chromeTransport{
		h2: roundTripFunc(func(*http.Request) (*http.Response, error) { return nil, errors.New("boom") }),
		h1: roundTripFunc(func(*http.Request) (*http.Response, error) {
			t.Fatal("h1 must not be called")
			return nil, nil
		}),
	}

	req, err := http.NewRequest(http.MethodPost, "https://inspector.example/x", io.NopCloser(strings.NewReader("body")))
	require.NoError(t, err)
	req.GetBody = nil

	_, err = tr.RoundTrip(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot be replayed")
}
