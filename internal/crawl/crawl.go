// Package crawl orchestrates a single stateless crawl: fetch every feed,
// filter each article, aggregate the survivors.
package crawl

import (
	"context"
	"time"

	"go.uber.org/zap"

	"stormwatch/internal/aggregate"
	"stormwatch/internal/config"
	"stormwatch/internal/fetch"
	"stormwatch/internal/filter"
	"stormwatch/internal/news"
)

// Metadata describes one crawl invocation, mirrored into every output format.
type Metadata struct {
	CrawledAt     time.Time `json:"crawled_at"`
	TotalArticles int       `json:"total_articles"`
	Sources       []string  `json:"sources"`
	SearchTerms   []string  `json:"search_terms"`
}

// Result is the envelope the JSON endpoint, the report writer and the PDF
// briefing all consume.
type Result struct {
	Metadata Metadata       `json:"metadata"`
	Articles []news.Article `json:"articles"`
}

// Crawler wires the fetcher, filter rules and aggregation config together.
type Crawler struct {
	cfg     config.Config
	fetcher *fetch.Fetcher
	rules   filter.Rules
	log     *zap.SugaredLogger
	now     func() time.Time
}

// New builds a Crawler from configuration. A nil logger is replaced with a
// nop logger.
func New(cfg config.Config, log *zap.SugaredLogger) *Crawler {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Crawler{
		cfg:     cfg,
		fetcher: fetch.New(cfg.Crawl, log),
		rules:   filter.NewRules(cfg.Filter),
		log:     log,
		now:     time.Now,
	}
}

// Run executes one crawl. It never fails: upstream trouble degrades to fewer
// (or zero) articles so callers can always render a result.
func (c *Crawler) Run(ctx context.Context) Result {
	now := c.now().UTC()
	lists := c.fetcher.Fetch(ctx, c.cfg.Feeds())

	filtered := make([][]news.Article, 0, len(lists))
	fetched := 0
	for _, list := range lists {
		fetched += len(list)
		kept := make([]news.Article, 0, len(list))
		for _, a := range list {
			if c.rules.Keep(a, now) {
				kept = append(kept, a)
			}
		}
		filtered = append(filtered, kept)
	}

	articles := aggregate.Run(c.cfg.Categories, c.cfg.OtherCap, filtered...)
	if articles == nil {
		articles = []news.Article{}
	}
	c.log.Infow("crawl complete", "feeds", len(lists), "fetched", fetched, "kept", len(articles))

	return Result{
		Metadata: Metadata{
			CrawledAt:     now,
			TotalArticles: len(articles),
			Sources:       c.sourceNames(),
			SearchTerms:   c.cfg.SearchTerms,
		},
		Articles: articles,
	}
}

func (c *Crawler) sourceNames() []string {
	names := make([]string, 0, len(c.cfg.Stations)+1)
	if len(c.cfg.SearchTerms) > 0 {
		names = append(names, "Google News")
	}
	for _, s := range c.cfg.Stations {
		names = append(names, s.Name)
	}
	return names
}
