package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stormwatch/internal/crawl"
	"stormwatch/internal/news"
)

func sampleResult() crawl.Result {
	pub := time.Date(2026, 1, 22, 14, 30, 0, 0, time.UTC)
	return crawl.Result{
		Metadata: crawl.Metadata{
			CrawledAt:     time.Date(2026, 1, 22, 18, 0, 0, 0, time.UTC),
			TotalArticles: 3,
			Sources:       []string{"Google News", "WLTX"},
			SearchTerms:   []string{"South Carolina ice storm", "SC winter weather"},
		},
		Articles: []news.Article{
			{
				ID:          "abc123def456",
				Title:       "Ice storm knocks out power across the Midlands",
				Link:        "https://example.com/power",
				Summary:     "Thousands without electricity.",
				SourceFeed:  "WLTX",
				PublishedAt: &pub,
				Category:    news.CategoryPower,
			},
			{
				ID:         "def456abc123",
				Title:      "Red Cross opens shelters in Columbia",
				Link:       "https://example.com/shelters",
				SourceFeed: "WLTX",
				Category:   news.CategoryShelters,
			},
			{
				ID:         "123456abcdef",
				Title:      "Roads remain icy overnight",
				Link:       "https://example.com/roads",
				SourceFeed: "Google News",
				Category:   news.CategoryRoads,
			},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteJSON(dir, sampleResult())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "news_data.json"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var got crawl.Result
	require.NoError(t, json.Unmarshal(b, &got))
	assert.Equal(t, 3, got.Metadata.TotalArticles)
	require.Len(t, got.Articles, 3)
	assert.Equal(t, "Ice storm knocks out power across the Midlands", got.Articles[0].Title)
	assert.Nil(t, got.Articles[1].PublishedAt)
}

func TestWriteHTML(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteHTML(dir, sampleResult())
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "news_report.html"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	html := string(b)

	assert.Contains(t, html, "Ice storm knocks out power across the Midlands")
	assert.Contains(t, html, "https://example.com/power")
	assert.Contains(t, html, news.CategoryPower)
	assert.Contains(t, html, "January 22, 2026")
	// undated article renders a placeholder instead of a zero time
	assert.Contains(t, html, "Unknown date")
}

func TestWriteHTMLEscapesArticleText(t *testing.T) {
	res := sampleResult()
	res.Articles[0].Title = `Ice storm <script>alert("x")</script> update`

	dir := t.TempDir()
	path, err := WriteHTML(dir, res)
	require.NoError(t, err)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), `<script>alert`)
}

func TestNewReportDataCountsSources(t *testing.T) {
	data := newReportData(sampleResult())

	require.Len(t, data.SourceCounts, 2)
	assert.Equal(t, sourceCount{Name: "WLTX", Count: 2}, data.SourceCounts[0])
	assert.Equal(t, sourceCount{Name: "Google News", Count: 1}, data.SourceCounts[1])
	assert.Equal(t, 1, data.RedCrossMentions)
}

func TestNewReportDataCapsSearchTerms(t *testing.T) {
	res := sampleResult()
	res.Metadata.SearchTerms = []string{"a", "b", "c", "d", "e", "f", "g", "h"}
	data := newReportData(res)
	assert.Len(t, data.SearchTerms, 6)
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Unknown date", FormatDate(nil))

	ts := time.Date(2026, 1, 22, 9, 15, 0, 0, time.UTC)
	assert.Equal(t, "Thu, 22 Jan 2026 09:15 UTC", FormatDate(&ts))
}
