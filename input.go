package aoc

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Fetcher downloads puzzle inputs and keeps a copy of each on disk, so the
// site is hit at most once per year and day.
type Fetcher struct {
	Client    *http.Client
	BaseURL   string
	Session   string
	CacheDir  string
	UserAgent string
	Log       zerolog.Logger
}

func NewFetcher(cfg Config) *Fetcher {
	return &Fetcher{
		Client:    http.DefaultClient,
		BaseURL:   Or(cfg.BaseURL, defaultBaseURL),
		Session:   cfg.Session,
		CacheDir:  cfg.CacheDir,
		UserAgent: Or(cfg.UserAgent, defaultUserAgent),
		Log:       log.Logger,
	}
}

// CachePath returns where the input for year and day is stored.
func (f *Fetcher) CachePath(year, day int) string {
	return filepath.Join(f.CacheDir, strconv.Itoa(year), strconv.Itoa(day))
}

// Input returns the puzzle input for year and day, from the cache if
// present and from the network otherwise.
func (f *Fetcher) Input(ctx context.Context, year, day int) (string, error) {
	path := f.CachePath(year, day)
	logger := f.Log.With().Int("year", year).Int("day", day).Logger()

	b, err := os.ReadFile(path)
	if err == nil {
		logger.Debug().Str("path", path).Msg("input cache hit")
		return string(b), nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("reading cached input: %w", err)
	}
	logger.Debug().Str("path", path).Msg("input cache miss")

	body, err := f.fetch(ctx, year, day)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("creating input cache: %w", err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("writing input cache: %w", err)
	}
	logger.Info().Int("bytes", len(body)).Str("path", path).Msg("fetched input")
	return string(body), nil
}

func (f *Fetcher) fetch(ctx context.Context, year, day int) ([]byte, error) {
	if f.Session == "" {
		return nil, ErrNoSession
	}
	url := fmt.Sprintf("%s/%d/day/%d/input", strings.TrimSuffix(f.BaseURL, "/"), year, day)
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: f.Session})
	req.Header.Set("User-Agent", f.UserAgent)

	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}
	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: bad status: %v", url, res.Status)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", url, err)
	}
	return body, nil
}
