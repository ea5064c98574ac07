// Package input locates puzzle inputs in an on-disk store and fetches
// missing ones from the calendar site.
package input

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://adventofcode.com"

// ErrNotCached reports that an input file is absent from the store and
// no session is configured to fetch it with.
var ErrNotCached = errors.New("input not cached")

// Store reads puzzle inputs from a directory tree laid out as
// <dir>/<year>/<day>.txt. When a session cookie (or a full cookie jar)
// is configured, missing inputs are fetched and written back into the
// store; requests are spaced out by the limiter.
type Store struct {
	Dir       string
	BaseURL   string // defaults to the advent calendar site
	UserAgent string
	Session   string         // bare session cookie value
	Jar       http.CookieJar // full cookie jar; takes precedence over Session
	Limiter   *rate.Limiter
	Client    *http.Client
}

// Path returns the on-disk location of one puzzle input.
func (s *Store) Path(year, day int) string {
	return filepath.Join(s.Dir, strconv.Itoa(year), fmt.Sprintf("%02d.txt", day))
}

// Open returns the input for year/day, fetching and caching it first
// when it is not in the store.
func (s *Store) Open(ctx context.Context, year, day int) (io.ReadCloser, error) {
	name := s.Path(year, day)
	f, err := os.Open(name)
	if err == nil {
		return f, nil
	}
	if !os.IsNotExist(err) {
		return nil, err
	}
	if s.Session == "" && s.Jar == nil {
		return nil, fmt.Errorf("%w: %s (configure a session to fetch)", ErrNotCached, name)
	}
	body, err := s.Fetch(ctx, year, day)
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

// Fetch downloads the input for year/day and writes it into the store,
// replacing any cached copy. The body is returned as read.
func (s *Store) Fetch(ctx context.Context, year, day int) ([]byte, error) {
	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	base := s.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	url := fmt.Sprintf("%s/%d/day/%d/input", base, year, day)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if s.UserAgent != "" {
		req.Header.Set("User-Agent", s.UserAgent)
	}
	if s.Jar == nil && s.Session != "" {
		req.AddCookie(&http.Cookie{Name: "session", Value: s.Session})
	}

	resp, err := s.client().Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	name := s.Path(year, day)
	if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
		return nil, err
	}
	if err := os.WriteFile(name, body, 0o644); err != nil {
		return nil, err
	}
	return body, nil
}

func (s *Store) client() *http.Client {
	if s.Client != nil {
		return s.Client
	}
	if s.Jar != nil {
		return &http.Client{Jar: s.Jar}
	}
	return http.DefaultClient
}
