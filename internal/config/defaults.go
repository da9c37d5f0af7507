package config

import "stormwatch/internal/news"

// Default returns the built-in rule set: South Carolina winter-storm monitoring
// for Red Cross disaster operations.
func Default() Config {
	return Config{
		SearchTerms: []string{
			"South Carolina ice storm",
			"SC ice storm",
			"South Carolina winter storm",
			"SC power outage ice",
		},
		Stations: []Feed{
			{Name: "WLTX Columbia", URL: "https://www.wltx.com/feeds/syndication/rss/news/local"},
			{Name: "WIS Columbia", URL: "https://www.wistv.com/arc/outboundfeeds/rss/category/news/?outputType=xml"},
			{Name: "WYFF Greenville", URL: "https://www.wyff4.com/topstories-rss"},
			{Name: "WCSC Charleston", URL: "https://www.live5news.com/arc/outboundfeeds/rss/category/news/?outputType=xml"},
			{Name: "WMBF Myrtle Beach", URL: "https://www.wmbfnews.com/arc/outboundfeeds/rss/category/news/?outputType=xml"},
			{Name: "WCBD Charleston", URL: "https://www.counton2.com/feed/"},
			{Name: "WSPA Spartanburg", URL: "https://www.wspa.com/feed/"},
			{Name: "WCIV Charleston", URL: "https://abcnews4.com/feed/rss2/news"},
			{Name: "WACH Columbia", URL: "https://wach.com/feed/rss2/news"},
			{Name: "WPDE Florence", URL: "https://wpde.com/feed/rss2/news"},
			{Name: "WBTW Myrtle Beach", URL: "https://www.wbtw.com/feed/"},
			{Name: "WRDW Augusta-Aiken", URL: "https://www.wrdw.com/arc/outboundfeeds/rss/category/news/?outputType=xml"},
			{Name: "Fox Carolina", URL: "https://www.foxcarolina.com/arc/outboundfeeds/rss/category/news/?outputType=xml"},
			{Name: "WJBF Augusta", URL: "https://www.wjbf.com/feed/"},
			{Name: "WSAV Savannah-Hilton Head", URL: "https://www.wsav.com/feed/"},
		},
		Crawl: CrawlConfig{
			TimeoutSeconds:  10,
			MaxItemsPerFeed: 15,
		},
		Filter: FilterConfig{
			WeatherTerms: []string{
				"ice storm", "winter storm", "freezing rain", "frozen",
				"freeze warning", "ice accumulation", "sleet", "black ice",
				"power outage", "outages", "without power", "power restored",
				"warming shelter", "warming center", "road conditions",
				"hazardous roads", "icy roads", "school closing", "school delay",
				"winter weather", "cold snap", "below freezing", "wind chill",
				"red cross shelter", "emergency shelter",
			},
			LocationTerms: []string{
				"south carolina", " sc ", "carolina",
			},
			ExclusionTerms: []string{
				// crime
				"shooting", "shot", "murder", "killed", "arrest", "arrested",
				"standoff", "suspect", "robbery", "assault", "homicide",
				"custody", "charged", "gunfire", "gunman",
				// sports
				"football", "basketball", "baseball", "soccer", "golf",
				"nascar", "touchdown", "playoff", "tournament", "recruiting",
				// obituaries
				"obituary", "obituaries", "funeral services",
			},
			ExtendedTerms: []string{
				"red cross", "redcross", "american red cross",
			},
			RecencyHours: 48,
			ExtendedDays: 7,
		},
		Categories: []Category{
			{Name: news.CategoryPower, Keywords: []string{
				"power", "outage", "electric", "utility", "duke energy",
				"dominion", "santee cooper", "grid", "restore", "linemen",
				"without power",
			}},
			{Name: news.CategoryRoads, Keywords: []string{
				"road", "highway", "bridge", "traffic", "crash", "driving",
				"travel", "icy road", "hazardous", "wreck", "flight",
				"airport", "bus service",
			}},
			{Name: news.CategorySchools, Keywords: []string{
				"school", "university", "college", "campus", "student",
				"e-learning", "elearning", "closure", "closed", "cancel",
				"delay", "virtual",
			}},
			{Name: news.CategoryShelters, Keywords: []string{
				"shelter", "warming center", "warming", "hotline", "red cross",
				"national guard", "hypothermia", "emergency", "rescue",
				"first responder", "state of emergency",
			}},
		},
		OtherCap: 10,
		Server: ServerConfig{
			Addr:               ":8080",
			CacheMaxAgeSeconds: 3600,
		},
		Redis: RedisConfig{
			Addr:       "",
			Key:        "stormwatch:crawl:latest",
			TTLMinutes: 60,
		},
		AI: AIConfig{
			BaseURL:   "",
			Model:     "",
			APIKeyEnv: "OPENAI_API_KEY",
		},
		Output: OutputConfig{
			Dir:      ".",
			DRNumber: "DR 153-26",
		},
	}
}
