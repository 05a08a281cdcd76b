package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/erraggy/schemaview"
)

const (
	fetchTimeout      = 30 * time.Second
	fetchDialTimeout  = 10 * time.Second
	fetchMaxRedirects = 10
)

// errBlockedAddress is returned when a document URL resolves to an address
// the server must not contact.
var errBlockedAddress = errors.New("blocked request to private or loopback address")

// blockedAddress reports whether ip is private, loopback, link-local, or
// unspecified.
func blockedAddress(ip net.IP) bool {
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}

// publicAddrs resolves host and fails if any of its addresses is blocked.
func publicAddrs(ctx context.Context, host string) ([]net.IPAddr, error) {
	addrs, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no addresses found for host %s", host)
	}
	for _, a := range addrs {
		if blockedAddress(a.IP) {
			return nil, fmt.Errorf("%w: %s (%s)", errBlockedAddress, host, a.IP)
		}
	}
	return addrs, nil
}

// newFetchClient returns the client used for document URLs. Unless
// allowPrivate is set, connections and redirects to blocked addresses fail.
func newFetchClient(allowPrivate bool) *http.Client {
	client := &http.Client{
		Timeout: fetchTimeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= fetchMaxRedirects {
				return fmt.Errorf("stopped after %d redirects", fetchMaxRedirects)
			}
			if allowPrivate {
				return nil
			}
			_, err := publicAddrs(req.Context(), req.URL.Hostname())
			return err
		},
	}
	if allowPrivate {
		return client
	}

	dialer := &net.Dialer{Timeout: fetchDialTimeout}
	client.Transport = &http.Transport{
		DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
			host, port, err := net.SplitHostPort(addr)
			if err != nil {
				return nil, err
			}
			addrs, err := publicAddrs(ctx, host)
			if err != nil {
				return nil, err
			}
			// Dial the checked address, not the host name.
			return dialer.DialContext(ctx, network, net.JoinHostPort(addrs[0].IP.String(), port))
		},
	}
	return client
}

// fetchURL downloads a document, refusing bodies larger than the inline limit.
func fetchURL(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid url: %w", err)
	}
	req.Header.Set("User-Agent", schemaview.UserAgent())
	req.Header.Set("Accept", "application/json, application/yaml, text/plain;q=0.8, */*;q=0.5")

	resp, err := newFetchClient(cfg.AllowPrivateIPs).Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching document: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching document: unexpected status %s", resp.Status)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, cfg.MaxInlineSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading document: %w", err)
	}
	if int64(len(data)) > cfg.MaxInlineSize {
		return nil, fmt.Errorf("document exceeds maximum size of %d bytes", cfg.MaxInlineSize)
	}
	return data, nil
}
