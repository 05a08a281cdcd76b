package mcpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/schemaview"
)

// allowPrivateFetches lets fetchURL reach httptest servers on loopback.
func allowPrivateFetches(t *testing.T) {
	t.Helper()
	old := cfg.AllowPrivateIPs
	cfg.AllowPrivateIPs = true
	t.Cleanup(func() { cfg.AllowPrivateIPs = old })
}

// headerRecorder keeps the headers of the last request a test server saw.
type headerRecorder struct {
	mu     sync.Mutex
	header http.Header
}

func (h *headerRecorder) set(header http.Header) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.header = header.Clone()
}

func (h *headerRecorder) Get(key string) string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.header.Get(key)
}

func newDocumentServer(t *testing.T) (*httptest.Server, *headerRecorder) {
	t.Helper()
	seen := &headerRecorder{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen.set(r.Header)
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		case "/large":
			_, _ = w.Write([]byte(strings.Repeat(" ", 64) + petDocument))
		case "/moved":
			http.Redirect(w, r, "/doc.json", http.StatusFound)
		default:
			_, _ = w.Write([]byte(petDocument))
		}
	}))
	t.Cleanup(srv.Close)
	return srv, seen
}

func TestBlockedAddress(t *testing.T) {
	tests := []struct {
		ip      string
		blocked bool
	}{
		{"127.0.0.1", true},
		{"10.1.2.3", true},
		{"172.20.0.5", true},
		{"192.168.0.10", true},
		{"169.254.169.254", true},
		{"::1", true},
		{"0.0.0.0", true},
		{"fe80::1", true},
		{"fd12:3456::1", true},
		{"203.0.114.7", false},
		{"2001:4860:4860::8888", false},
	}
	for _, tt := range tests {
		t.Run(tt.ip, func(t *testing.T) {
			ip := net.ParseIP(tt.ip)
			require.NotNil(t, ip)
			assert.Equal(t, tt.blocked, blockedAddress(ip))
		})
	}
}

func TestFetchURL_BlocksLoopback(t *testing.T) {
	srv, _ := newDocumentServer(t)

	_, err := fetchURL(context.Background(), srv.URL+"/doc.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "blocked")
}

func TestFetchURL_BlocksRedirectToLoopback(t *testing.T) {
	client := newFetchClient(false)
	require.NotNil(t, client.CheckRedirect)

	req, err := http.NewRequest(http.MethodGet, "http://127.0.0.1/doc.json", nil)
	require.NoError(t, err)
	err = client.CheckRedirect(req, []*http.Request{req})
	assert.True(t, errors.Is(err, errBlockedAddress))

	assert.NoError(t, newFetchClient(true).CheckRedirect(req, []*http.Request{req}))
}

func TestFetchURL_AllowPrivate(t *testing.T) {
	allowPrivateFetches(t)
	srv, seen := newDocumentServer(t)

	t.Run("sends user agent", func(t *testing.T) {
		data, err := fetchURL(context.Background(), srv.URL+"/doc.json")
		require.NoError(t, err)
		assert.Equal(t, petDocument, string(data))
		assert.Equal(t, schemaview.UserAgent(), seen.Get("User-Agent"))
		assert.Contains(t, seen.Get("Accept"), "application/json")
	})

	t.Run("follows redirects", func(t *testing.T) {
		data, err := fetchURL(context.Background(), srv.URL+"/moved")
		require.NoError(t, err)
		assert.Equal(t, petDocument, string(data))
	})

	t.Run("non-200 status", func(t *testing.T) {
		_, err := fetchURL(context.Background(), srv.URL+"/missing")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status")
	})

	t.Run("body over the inline limit", func(t *testing.T) {
		old := cfg.MaxInlineSize
		cfg.MaxInlineSize = int64(len(petDocument))
		t.Cleanup(func() { cfg.MaxInlineSize = old })

		_, err := fetchURL(context.Background(), srv.URL+"/large")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "exceeds maximum size")
	})

	t.Run("resolve through url", func(t *testing.T) {
		documentCache.reset()
		result, err := documentInput{URL: srv.URL + "/doc.json"}.resolve(context.Background())
		require.NoError(t, err)
		require.Len(t, result.Schemas, 1)
		assert.Equal(t, srv.URL+"/doc.json", result.Source.SourcePath)
	})
}

func TestFetchURL_InvalidURL(t *testing.T) {
	_, err := fetchURL(context.Background(), "://no-scheme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid url")
}
