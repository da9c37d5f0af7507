// Package aggregate merges per-feed article lists into the final ordered,
// categorized output: dedupe, sort by recency, label, cap the Other bucket.
package aggregate

import (
	"sort"
	"strings"

	"stormwatch/internal/config"
	"stormwatch/internal/news"
)

// Merge flattens the per-feed lists and removes duplicates. Two articles are
// duplicates when their normalized links match or their titles reduce to the
// same alphanumeric string; the first occurrence wins.
func Merge(lists ...[]news.Article) []news.Article {
	seenLinks := make(map[string]struct{})
	seenTitles := make(map[string]struct{})
	var out []news.Article
	for _, list := range lists {
		for _, a := range list {
			link := news.NormalizeLink(a.Link)
			title := news.NormalizeTitle(a.Title)
			if _, ok := seenLinks[link]; ok {
				continue
			}
			if title != "" {
				if _, ok := seenTitles[title]; ok {
					continue
				}
				seenTitles[title] = struct{}{}
			}
			seenLinks[link] = struct{}{}
			out = append(out, a)
		}
	}
	return out
}

// SortByRecency orders articles newest first. Articles without a publish date
// sort last; ties keep their merge order.
func SortByRecency(articles []news.Article) {
	sort.SliceStable(articles, func(i, j int) bool {
		pi, pj := articles[i].PublishedAt, articles[j].PublishedAt
		switch {
		case pi == nil:
			return false
		case pj == nil:
			return true
		default:
			return pi.After(*pj)
		}
	})
}

type compiledCategory struct {
	name     string
	keywords []string
}

// Categorizer assigns each article its category label via an ordered keyword
// scan; the first category with a hit claims the article.
type Categorizer struct {
	categories []compiledCategory
}

func NewCategorizer(cats []config.Category) Categorizer {
	compiled := make([]compiledCategory, 0, len(cats))
	for _, c := range cats {
		kws := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw != "" {
				kws = append(kws, kw)
			}
		}
		compiled = append(compiled, compiledCategory{name: c.Name, keywords: kws})
	}
	return Categorizer{categories: compiled}
}

// Apply labels every article in place. Anything unclaimed lands in Other.
func (c Categorizer) Apply(articles []news.Article) {
	for i := range articles {
		articles[i].Category = c.categorize(articles[i])
	}
}

func (c Categorizer) categorize(a news.Article) string {
	text := a.Text()
	for _, cat := range c.categories {
		for _, kw := range cat.keywords {
			if strings.Contains(text, kw) {
				return cat.name
			}
		}
	}
	return news.CategoryOther
}

// CapOther keeps at most max articles labeled Other, dropping the oldest
// first. Call after sorting so the cap keeps the freshest coverage.
func CapOther(articles []news.Article, max int) []news.Article {
	if max < 0 {
		return articles
	}
	out := articles[:0]
	kept := 0
	for _, a := range articles {
		if a.Category == news.CategoryOther {
			if kept >= max {
				continue
			}
			kept++
		}
		out = append(out, a)
	}
	return out
}

// Run composes the whole aggregation: merge, sort, categorize, cap.
func Run(cats []config.Category, otherCap int, lists ...[]news.Article) []news.Article {
	articles := Merge(lists...)
	SortByRecency(articles)
	NewCategorizer(cats).Apply(articles)
	return CapOther(articles, otherCap)
}
