package aoc

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultBaseURL   = "https://adventofcode.com"
	defaultUserAgent = "github.com/choam/aoc by aoc@choam.me"
)

// Config is read from the environment. See LoadConfig.
type Config struct {
	Session   string // AOC_SESSION
	CacheDir  string // AOC_CACHE_DIR
	BaseURL   string // AOC_BASE_URL
	UserAgent string // AOC_USER_AGENT
	LogLevel  string // AOC_LOG_LEVEL
}

// LoadConfig loads a .env file from the working directory if there is one,
// then reads AOC_* variables. With no AOC_SESSION the token is read from
// ~/keys/aoc.session. Variables already set in the environment take
// precedence over the file. It reports whether a .env file was loaded.
func LoadConfig() (cfg Config, dotenv bool) {
	dotenv = godotenv.Load() == nil
	cfg = Config{
		Session:   sessionToken(os.Getenv("AOC_SESSION")),
		CacheDir:  os.Getenv("AOC_CACHE_DIR"),
		BaseURL:   Or(os.Getenv("AOC_BASE_URL"), defaultBaseURL),
		UserAgent: Or(os.Getenv("AOC_USER_AGENT"), defaultUserAgent),
		LogLevel:  strings.ToLower(Or(os.Getenv("AOC_LOG_LEVEL"), "info")),
	}
	if cfg.Session == "" {
		cfg.Session = sessionFromKeyFile()
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = defaultCacheDir()
	}
	return cfg, dotenv
}

// sessionToken accepts either the bare token or a full "session=..." cookie.
func sessionToken(s string) string {
	s = strings.TrimSpace(s)
	return strings.TrimPrefix(s, "session=")
}

// sessionFromKeyFile reads ~/keys/aoc.session, returning "" if absent.
func sessionFromKeyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	b, err := os.ReadFile(filepath.Join(home, "keys", "aoc.session"))
	if err != nil {
		return ""
	}
	return sessionToken(string(b))
}

func defaultCacheDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cache", "aoc")
	}
	return filepath.Join(home, ".cache", "aoc")
}
