// Package filter decides whether a single article belongs in the output.
// The rules compose small predicates: keyword relevance (with exclusion
// dominance) and a content-dependent recency window.
package filter

import (
	"strings"
	"time"

	"stormwatch/internal/config"
	"stormwatch/internal/news"
)

// Rules is the immutable rule set compiled once from configuration.
type Rules struct {
	weather        []string
	locations      []string
	exclusions     []string
	extended       []string
	standardWindow time.Duration
	extendedWindow time.Duration
}

// NewRules lowers every term list up front so matching stays allocation-free.
func NewRules(cfg config.FilterConfig) Rules {
	hours := cfg.RecencyHours
	if hours <= 0 {
		hours = 48
	}
	days := cfg.ExtendedDays
	if days <= 0 {
		days = 7
	}
	return Rules{
		weather:        lowerAll(cfg.WeatherTerms),
		locations:      lowerAll(cfg.LocationTerms),
		exclusions:     lowerAll(cfg.ExclusionTerms),
		extended:       lowerAll(cfg.ExtendedTerms),
		standardWindow: time.Duration(hours) * time.Hour,
		extendedWindow: time.Duration(days) * 24 * time.Hour,
	}
}

// Relevant reports whether the article belongs in the output at all: at least
// one weather term AND one location term must match. Exclusion dominates; a
// single exclusion hit rejects the article regardless of anything else.
func (r Rules) Relevant(a news.Article) bool {
	text := a.Text()
	if matchesAny(text, r.exclusions) {
		return false
	}
	return matchesAny(text, r.weather) && matchesAny(text, r.locations)
}

// RecentEnough applies the recency window: the standard 48 hours, widened to
// 7 days when the article mentions the Red Cross. Articles without a
// parseable publish date are rejected.
func (r Rules) RecentEnough(a news.Article, now time.Time) bool {
	if a.PublishedAt == nil {
		return false
	}
	window := r.standardWindow
	if matchesAny(a.Text(), r.extended) {
		window = r.extendedWindow
	}
	age := now.Sub(*a.PublishedAt)
	if age < 0 {
		// feeds occasionally post-date entries; treat as fresh
		age = 0
	}
	return age <= window
}

// Keep is the full filter: an article survives only if it is both relevant
// and recent at the time of the crawl.
func (r Rules) Keep(a news.Article, now time.Time) bool {
	return r.Relevant(a) && r.RecentEnough(a, now)
}

func matchesAny(text string, terms []string) bool {
	for _, t := range terms {
		if t != "" && strings.Contains(text, t) {
			return true
		}
	}
	return false
}

// lowerAll lowercases terms without trimming: terms like " sc " rely on their
// surrounding spaces to avoid matching inside words.
func lowerAll(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		if strings.TrimSpace(t) == "" {
			continue
		}
		out = append(out, strings.ToLower(t))
	}
	return out
}
