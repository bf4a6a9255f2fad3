package aoc

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	wd, err := os.Getwd()
	s.Require().NoError(err)
	s.Require().NoError(os.Chdir(s.T().TempDir()))
	s.T().Cleanup(func() { os.Chdir(wd) })
	s.T().Setenv("HOME", s.T().TempDir())
	for _, k := range []string{"AOC_SESSION", "AOC_CACHE_DIR", "AOC_BASE_URL", "AOC_USER_AGENT", "AOC_LOG_LEVEL"} {
		s.T().Setenv(k, "")
		os.Unsetenv(k)
	}
}

func (s *ConfigTestSuite) TestDefaults() {
	require := s.Require()
	cfg, dotenv := LoadConfig()
	require.False(dotenv)
	require.Equal("", cfg.Session)
	require.Equal(defaultBaseURL, cfg.BaseURL)
	require.Equal(defaultUserAgent, cfg.UserAgent)
	require.Equal("info", cfg.LogLevel)
	require.Equal(filepath.Join(os.Getenv("HOME"), ".cache", "aoc"), cfg.CacheDir)
}

func (s *ConfigTestSuite) TestEnvironment() {
	require := s.Require()
	s.T().Setenv("AOC_SESSION", "session=deadbeef\n")
	s.T().Setenv("AOC_CACHE_DIR", "/tmp/aoc")
	s.T().Setenv("AOC_LOG_LEVEL", "DEBUG")
	cfg, _ := LoadConfig()
	require.Equal("deadbeef", cfg.Session)
	require.Equal("/tmp/aoc", cfg.CacheDir)
	require.Equal("debug", cfg.LogLevel)
}

func (s *ConfigTestSuite) TestKeyFile() {
	require := s.Require()
	dir := filepath.Join(os.Getenv("HOME"), "keys")
	require.NoError(os.MkdirAll(dir, 0o700))
	require.NoError(os.WriteFile(filepath.Join(dir, "aoc.session"), []byte("fromfile\n"), 0o600))
	cfg, _ := LoadConfig()
	require.Equal("fromfile", cfg.Session)
}

func (s *ConfigTestSuite) TestDotEnv() {
	require := s.Require()
	require.NoError(os.WriteFile(".env", []byte("AOC_SESSION=fromdotenv\nAOC_LOG_LEVEL=warn\n"), 0o600))
	s.T().Setenv("AOC_LOG_LEVEL", "error")
	cfg, dotenv := LoadConfig()
	require.True(dotenv)
	require.Equal("fromdotenv", cfg.Session)
	require.Equal("error", cfg.LogLevel, "environment wins over .env")
}
