package config

import (
	"fmt"
	neturl "net/url"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Feed identifies one RSS/Atom source by display name and URL.
type Feed struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// CrawlConfig bounds a single crawl invocation.
type CrawlConfig struct {
	TimeoutSeconds  int `yaml:"timeout_seconds"`
	MaxItemsPerFeed int `yaml:"max_items_per_feed"`
}

// Timeout returns the per-feed fetch timeout.
func (c CrawlConfig) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 10 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// FilterConfig is the keyword/recency rule set. All matching is
// case-insensitive substring matching over title+summary.
type FilterConfig struct {
	WeatherTerms   []string `yaml:"weather_terms"`
	LocationTerms  []string `yaml:"location_terms"`
	ExclusionTerms []string `yaml:"exclusion_terms"`
	// ExtendedTerms widen the recency window from RecencyHours to ExtendedDays.
	ExtendedTerms []string `yaml:"extended_terms"`
	RecencyHours  int      `yaml:"recency_hours"`
	ExtendedDays  int      `yaml:"extended_days"`
}

// Category maps a display label to the keywords that claim an article for it.
// Order matters: the first category with a hit wins.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
	// CacheMaxAgeSeconds is advertised to the downstream cache via
	// Cache-Control; the cache itself is not ours to manage.
	CacheMaxAgeSeconds int `yaml:"cache_max_age_seconds"`
}

// RedisConfig points at the optional response cache. An empty Addr disables it.
type RedisConfig struct {
	Addr       string `yaml:"addr"`
	Key        string `yaml:"key"`
	TTLMinutes int    `yaml:"ttl_minutes"`
}

// TTL returns how long a cached crawl result stays servable.
func (r RedisConfig) TTL() time.Duration {
	if r.TTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(r.TTLMinutes) * time.Minute
}

// AIConfig configures the executive-summary model. Leaving BaseURL empty keeps
// the deterministic fallback summary in use.
type AIConfig struct {
	BaseURL   string `yaml:"base_url"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
}

type OutputConfig struct {
	Dir      string `yaml:"dir"`
	DRNumber string `yaml:"dr_number"`
}

// Config carries every tunable of the crawler. It is loaded once, never
// mutated, and handed by value into the fetcher, filter and aggregator so each
// can be unit-tested against its own rule set.
type Config struct {
	SearchTerms []string     `yaml:"search_terms"`
	Stations    []Feed       `yaml:"stations"`
	Crawl       CrawlConfig  `yaml:"crawl"`
	Filter      FilterConfig `yaml:"filter"`
	Categories  []Category   `yaml:"categories"`
	OtherCap    int          `yaml:"other_cap"`
	Server      ServerConfig `yaml:"server"`
	Redis       RedisConfig  `yaml:"redis"`
	AI          AIConfig     `yaml:"ai"`
	Output      OutputConfig `yaml:"output"`
}

// GoogleNewsURL builds the Google News RSS search feed for one search term.
func GoogleNewsURL(term string) string {
	return fmt.Sprintf("https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en",
		neturl.QueryEscape(term))
}

// Feeds expands the configured sources into the flat feed list the fetcher
// crawls: one Google News search feed per search term, then the station feeds.
// Adding or removing a source is a configuration change only.
func (c Config) Feeds() []Feed {
	out := make([]Feed, 0, len(c.SearchTerms)+len(c.Stations))
	for _, term := range c.SearchTerms {
		out = append(out, Feed{Name: "Google News", URL: GoogleNewsURL(term)})
	}
	out = append(out, c.Stations...)
	return out
}

// Load reads a YAML config file over the built-in defaults. An empty path
// returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
