// Package transport provides HTTP transports for talking to remote inspectors.
package transport

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	utls "github.com/refraction-networking/utls"
	"golang.org/x/net/http2"
)

// Inspectors deployed behind CDNs with JA3 fingerprinting may throttle Go's
// default TLS client. The Chrome transport presents Chrome's ClientHello via
// uTLS and speaks HTTP/2 when the server negotiates it over ALPN, falling
// back to HTTP/1.1 otherwise.

// errNotH2 is returned by the HTTP/2 dialer when ALPN settled on something else.
var errNotH2 = errors.New("server did not negotiate h2")

// Options configures NewChromeTransport.
type Options struct {
	// DialTimeout bounds TCP connect plus TLS handshake. Zero means 10s.
	DialTimeout time.Duration

	// HelloID selects the ClientHello to mimic. Zero means HelloChrome_Auto.
	HelloID utls.ClientHelloID

	// RootCAs verifies server certificates. Nil means the system pool.
	RootCAs *x509.CertPool
}

func (o Options) withDefaults() Options {
	if o.DialTimeout <= 0 {
		o.DialTimeout = 10 * time.Second
	}
	if o.HelloID == (utls.ClientHelloID{}) {
		o.HelloID = utls.HelloChrome_Auto
	}
	return o
}

// NewChromeTransport creates an http.RoundTripper that presents a Chrome TLS
// fingerprint on https URLs. Plain http URLs use a regular HTTP/1.1 transport.
func NewChromeTransport(opts Options) http.RoundTripper {
	opts = opts.withDefaults()
	dialer := &net.Dialer{Timeout: opts.DialTimeout}

	h2Transport := &http2.Transport{
		DialTLSContext: func(ctx context.Context, network, addr string, _ *tls.Config) (net.Conn, error) {
			conn, err := dialChromeTLS(ctx, dialer, network, addr, opts)
			if err != nil {
				return nil, err
			}
			if conn.ConnectionState().NegotiatedProtocol != http2.NextProtoTLS {
				conn.Close()
				return nil, errNotH2
			}
			return conn, nil
		},
	}

	h1Transport := &http.Transport{
		DialContext: dialer.DialContext,
		DialTLSContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			return dialChromeTLS(ctx, dialer, network, addr, opts)
		},
		ForceAttemptHTTP2: false,
	}

	return &chromeTransport{
		h2: h2Transport,
		h1: h1Transport,
	}
}

// chromeTransport routes requests between HTTP/2 and HTTP/1.1 round trippers.
type chromeTransport struct {
	h2 http.RoundTripper
	h1 http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
// https requests try HTTP/2 first; on failure the body is rewound and the
// request is retried over HTTP/1.1.
func (t *chromeTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.URL.Scheme != "https" {
		return t.h1.RoundTrip(req)
	}

	resp, err := t.h2.RoundTrip(req)
	if err == nil {
		return resp, nil
	}

	retry, rewindErr := rewind(req)
	if rewindErr != nil {
		return nil, fmt.Errorf("http2 failed (%v) and body cannot be replayed: %w", err, rewindErr)
	}
	return t.h1.RoundTrip(retry)
}

// rewind returns a copy of req with a fresh body for a retry.
func rewind(req *http.Request) (*http.Request, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return req, nil
	}
	if req.GetBody == nil {
		return nil, errors.New("request has no GetBody")
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, err
	}
	retry := req.Clone(req.Context())
	retry.Body = body
	return retry, nil
}

// dialChromeTLS establishes a TLS connection with the configured fingerprint.
func dialChromeTLS(ctx context.Context, dialer *net.Dialer, network, addr string, opts Options) (*utls.UConn, error) {
	// Extract hostname for SNI
	host, _, err := net.SplitHostPort(addr)
	if err != nil {
		host = addr
	}

	conn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	tlsConn := utls.UClient(conn, &utls.Config{
		ServerName: host,
		RootCAs:    opts.RootCAs,
	}, opts.HelloID)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("tls handshake: %w", err)
	}

	return tlsConn, nil
}
