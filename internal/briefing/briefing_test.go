package briefing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stormwatch/internal/config"
	"stormwatch/internal/crawl"
	"stormwatch/internal/news"
)

func testResult(n int) crawl.Result {
	pub := time.Date(2026, 1, 22, 14, 0, 0, 0, time.UTC)
	articles := make([]news.Article, 0, n)
	cats := []string{news.CategoryPower, news.CategoryRoads, news.CategorySchools, news.CategoryShelters, news.CategoryOther}
	for i := 0; i < n; i++ {
		articles = append(articles, news.Article{
			ID:          "0123456789ab",
			Title:       "Winter storm update with a title long enough to wrap onto a second line in the rendered output",
			Link:        "https://example.com/story",
			Summary:     "Crews are working to restore power after freezing rain brought down lines across several counties.",
			SourceFeed:  "WLTX",
			PublishedAt: &pub,
			Category:    cats[i%len(cats)],
		})
	}
	return crawl.Result{
		Metadata: crawl.Metadata{CrawledAt: pub, TotalArticles: n},
		Articles: articles,
	}
}

func TestRenderProducesPDF(t *testing.T) {
	b, err := Render(testResult(5), config.Default().Categories, "DR 153-26")
	require.NoError(t, err)
	require.NotEmpty(t, b)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestRenderEmptyResult(t *testing.T) {
	b, err := Render(crawl.Result{}, config.Default().Categories, "DR 153-26")
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(b[:4]))
}

func TestRenderManyArticlesPaginates(t *testing.T) {
	small, err := Render(testResult(2), config.Default().Categories, "DR 153-26")
	require.NoError(t, err)
	large, err := Render(testResult(60), config.Default().Categories, "DR 153-26")
	require.NoError(t, err)
	assert.Greater(t, len(large), len(small))
}

func TestGroupByCategoryKeepsConfiguredOrder(t *testing.T) {
	cats := config.Default().Categories
	articles := []news.Article{
		{Title: "misc", Category: news.CategoryOther},
		{Title: "shelter", Category: news.CategoryShelters},
		{Title: "power", Category: news.CategoryPower},
	}

	sections := groupByCategory(articles, cats)
	require.Len(t, sections, len(cats)+1)
	assert.Equal(t, news.CategoryPower, sections[0].name)
	assert.Len(t, sections[0].articles, 1)
	assert.Equal(t, "OTHER COVERAGE", sections[len(sections)-1].name)
	assert.Len(t, sections[len(sections)-1].articles, 1)
}

func TestCountSources(t *testing.T) {
	articles := []news.Article{
		{SourceFeed: "WLTX"},
		{SourceFeed: "WLTX"},
		{SourceFeed: "WIS"},
	}
	assert.Equal(t, 2, countSources(articles))
}
