// Package fetch retrieves and parses the configured RSS/Atom feeds. Each feed
// gets one attempt per crawl; feeds fail independently and a failure only
// means zero entries from that source.
package fetch

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/gofeed"
	"go.uber.org/zap"

	"stormwatch/internal/config"
	"stormwatch/internal/httpclient"
	"stormwatch/internal/news"
)

// Fetcher pulls feeds concurrently with a per-feed timeout so one slow source
// cannot stall the crawl.
type Fetcher struct {
	cfg    config.CrawlConfig
	parser *gofeed.Parser
	log    *zap.SugaredLogger
}

// New constructs a Fetcher. A nil logger is replaced with a nop logger.
func New(cfg config.CrawlConfig, log *zap.SugaredLogger) *Fetcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	p := gofeed.NewParser()
	p.Client = httpclient.New(cfg.Timeout())
	return &Fetcher{cfg: cfg, parser: p, log: log}
}

type feedResult struct {
	feed     config.Feed
	articles []news.Article
	err      error
}

// Fetch retrieves every feed and returns one article list per feed that
// responded. It never returns an error: a total wipeout is an empty result,
// so the caller can still serve a degraded response.
func (f *Fetcher) Fetch(ctx context.Context, feeds []config.Feed) [][]news.Article {
	resCh := make(chan feedResult, len(feeds))
	var wg sync.WaitGroup
	for _, fd := range feeds {
		if strings.TrimSpace(fd.URL) == "" {
			continue
		}
		wg.Add(1)
		go func(fd config.Feed) {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, f.cfg.Timeout())
			defer cancel()
			parsed, err := f.parser.ParseURLWithContext(fd.URL, fetchCtx)
			if err != nil {
				resCh <- feedResult{feed: fd, err: err}
				return
			}
			resCh <- feedResult{feed: fd, articles: f.convert(fd, parsed)}
		}(fd)
	}
	go func() { wg.Wait(); close(resCh) }()

	lists := make([][]news.Article, 0, len(feeds))
	for r := range resCh {
		if r.err != nil {
			f.log.Warnw("feed fetch failed", "feed", r.feed.Name, "url", r.feed.URL, "err", r.err)
			continue
		}
		f.log.Debugw("feed fetched", "feed", r.feed.Name, "items", len(r.articles))
		lists = append(lists, r.articles)
	}
	return lists
}

// convert turns parsed feed items into Articles, capped per feed. Entries
// without a title or link are skipped; a missing publish date is carried as
// nil and left to the recency filter's policy.
func (f *Fetcher) convert(fd config.Feed, parsed *gofeed.Feed) []news.Article {
	out := make([]news.Article, 0, len(parsed.Items))
	for _, it := range parsed.Items {
		if it == nil {
			continue
		}
		title := strings.TrimSpace(it.Title)
		link := strings.TrimSpace(it.Link)
		if title == "" || link == "" {
			continue
		}
		if f.cfg.MaxItemsPerFeed > 0 && len(out) >= f.cfg.MaxItemsPerFeed {
			break
		}
		var published *time.Time
		if it.PublishedParsed != nil {
			t := it.PublishedParsed.UTC()
			published = &t
		} else if it.UpdatedParsed != nil {
			t := it.UpdatedParsed.UTC()
			published = &t
		}
		out = append(out, news.Article{
			ID:          news.HashID(link),
			Title:       title,
			Link:        link,
			Summary:     Summary(firstNonEmpty(it.Description, it.Content)),
			SourceFeed:  fd.Name,
			PublishedAt: published,
		})
	}
	return out
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
