package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
)

type Config struct {
	BaseURL      string
	UserAgent    string
	FetchTimeout time.Duration
	FetchDelay   time.Duration

	PlaylistPath string
	DataPath     string
	FeedsPath    string

	FeedTitle       string
	FeedDescription string
	FeedLink        string
	FeedLanguage    string
	FeedImageURL    string

	LogoNameScan bool
}

var globalConfig = defaultConfig()

func defaultConfig() *Config {
	return &Config{
		BaseURL:         "https://fluxradios.blogspot.com/",
		UserAgent:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		FetchTimeout:    10 * time.Second,
		FetchDelay:      time.Second,
		PlaylistPath:    "stations.m3u",
		DataPath:        ".",
		FeedsPath:       "radio_feeds",
		FeedTitle:       "French Radio Stations",
		FeedDescription: "Collection of French radio stations for continuous streaming",
		FeedLink:        "https://example.com/radio",
		FeedLanguage:    "fr",
	}
}

func GetConfig() *Config {
	return globalConfig
}

func SetConfig(c *Config) {
	globalConfig = c
}

// LoadFromEnv overlays environment variables onto the defaults and installs
// the result as the process config.
func LoadFromEnv() *Config {
	c := defaultConfig()

	c.BaseURL = getenv("BASE_URL", c.BaseURL)
	c.UserAgent = getenv("USER_AGENT", c.UserAgent)
	c.FetchTimeout = getenvDuration("FETCH_TIMEOUT", c.FetchTimeout)
	c.FetchDelay = getenvDuration("FETCH_DELAY", c.FetchDelay)

	c.PlaylistPath = getenv("PLAYLIST_PATH", c.PlaylistPath)
	c.DataPath = getenv("DATA_PATH", c.DataPath)
	c.FeedsPath = getenv("FEEDS_PATH", c.FeedsPath)

	c.FeedTitle = getenv("FEED_TITLE", c.FeedTitle)
	c.FeedDescription = getenv("FEED_DESCRIPTION", c.FeedDescription)
	c.FeedLink = getenv("FEED_LINK", c.FeedLink)
	c.FeedLanguage = getenv("FEED_LANGUAGE", c.FeedLanguage)
	c.FeedImageURL = getenv("FEED_IMAGE_URL", c.FeedImageURL)

	c.LogoNameScan = getenvBool("LOGO_NAME_SCAN", c.LogoNameScan)

	SetConfig(c)
	return c
}

func GetJSONPath() string {
	return filepath.Join(globalConfig.DataPath, "flux_radios_data.json")
}

func GetCSVPath() string {
	return filepath.Join(globalConfig.DataPath, "flux_radios_data.csv")
}

func GetFeedsDirPath() string {
	return globalConfig.FeedsPath
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && strings.TrimSpace(v) != "" {
		return v
	}
	return def
}

func getenvDuration(key string, def time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func getenvBool(key string, def bool) bool {
	if v, ok := os.LookupEnv(key); ok {
		return strings.EqualFold(strings.TrimSpace(v), "true")
	}
	return def
}
