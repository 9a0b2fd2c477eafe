package googlebooks

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"libris/internal/ratelimit"
)

// newIPv4TestServer starts a test server bound to IPv4 loopback to avoid IPv6 listener issues.
func newIPv4TestServer(t *testing.T, handler http.Handler) *httptest.Server {
	t.Helper()

	listener, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)

	server := httptest.NewUnstartedServer(handler)
	server.Listener = listener
	server.Start()

	t.Cleanup(server.Close)
	return server
}

// newTestLimiter is generous enough that pagination tests never block.
func newTestLimiter() *ratelimit.Limiter {
	return ratelimit.New("test", 1000)
}

// newTestClient returns a Client pointed at the given test server.
func newTestClient(server *httptest.Server, apiKey string) *Client {
	return &Client{
		httpClient: server.Client(),
		limiter:    newTestLimiter(),
		baseURL:    server.URL,
		apiKey:     apiKey,
	}
}
