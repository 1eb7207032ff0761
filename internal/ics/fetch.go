package ics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	appLog "histcal/internal/log"
)

// maxBody bounds the size of a fetched calendar.
const maxBody = 8 << 20

// Fetcher downloads iCalendar documents over HTTP. Nothing is cached or
// written to disk.
type Fetcher struct {
	client *http.Client
}

// NewFetcher returns a Fetcher whose requests time out after timeout
// (15s when zero or negative).
func NewFetcher(timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Fetcher{client: &http.Client{Timeout: timeout}}
}

// IsURL reports whether s names an http or https resource.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Fetch returns the body of url. Any status other than 200 is an error, as
// is a body larger than 8 MiB.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, errors.New("ics: source URL is empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("ics: %w", err)
	}
	req.Header.Set("Accept", "text/calendar")

	appLog.Info("ics fetch start", "url", redactURL(url))
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ics: fetch %s: %w", redactURL(url), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ics: fetch %s: %s", redactURL(url), resp.Status)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("ics: read %s: %w", redactURL(url), err)
	}
	if len(body) > maxBody {
		return nil, fmt.Errorf("ics: %s is larger than %d bytes", redactURL(url), maxBody)
	}
	appLog.Info("ics fetch success", "url", redactURL(url), "bytes", len(body))
	return body, nil
}

// redactURL keeps scheme and host only, since calendar URLs often embed
// access tokens in the path or query.
func redactURL(u string) string {
	i := strings.Index(u, "://")
	if i < 0 {
		return "ics://...(redacted)"
	}
	rest := u[i+3:]
	if j := strings.IndexByte(rest, '/'); j >= 0 {
		rest = rest[:j]
	} else if j := strings.IndexByte(rest, '?'); j >= 0 {
		rest = rest[:j]
	}
	return u[:i+3] + rest + "/...(redacted)"
}
