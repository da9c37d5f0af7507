package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stormwatch/internal/config"
)

func rssBody(items ...string) string {
	body := `<?xml version="1.0" encoding="utf-8"?>
<rss version="2.0"><channel><title>Test feed</title><link>/</link>`
	for _, it := range items {
		body += it
	}
	return body + `</channel></rss>`
}

func rssItem(title, link string, published time.Time) string {
	return fmt.Sprintf(
		`<item><title>%s</title><link>%s</link><pubDate>%s</pubDate><description>desc</description></item>`,
		title, link, published.Format(time.RFC1123Z))
}

func TestFetchParsesFeed(t *testing.T) {
	now := time.Now()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssBody(
			rssItem("Ice storm closes schools", "https://example.com/1", now.Add(-2*time.Hour)),
			rssItem("Roads ice over", "https://example.com/2", now.Add(-3*time.Hour)),
		))
	}))
	defer srv.Close()

	f := New(config.CrawlConfig{TimeoutSeconds: 5, MaxItemsPerFeed: 15}, nil)
	lists := f.Fetch(context.Background(), []config.Feed{{Name: "Test", URL: srv.URL}})

	require.Len(t, lists, 1)
	require.Len(t, lists[0], 2)
	a := lists[0][0]
	assert.Equal(t, "Ice storm closes schools", a.Title)
	assert.Equal(t, "https://example.com/1", a.Link)
	assert.Equal(t, "Test", a.SourceFeed)
	assert.Len(t, a.ID, 12)
	require.NotNil(t, a.PublishedAt)
	assert.WithinDuration(t, now.Add(-2*time.Hour), *a.PublishedAt, time.Minute)
}

func TestFetchIsolatesFailingFeeds(t *testing.T) {
	now := time.Now()
	mux := http.NewServeMux()
	mux.HandleFunc("/good", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssBody(rssItem("Warming shelter opens", "https://example.com/ok", now)))
	})
	mux.HandleFunc("/broken", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<rss><channel><item>this is not valid xml")
	})
	mux.HandleFunc("/error", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})
	mux.HandleFunc("/slow", func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(3 * time.Second)
		fmt.Fprint(w, rssBody())
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	f := New(config.CrawlConfig{TimeoutSeconds: 1, MaxItemsPerFeed: 15}, nil)
	lists := f.Fetch(context.Background(), []config.Feed{
		{Name: "Good", URL: srv.URL + "/good"},
		{Name: "Broken", URL: srv.URL + "/broken"},
		{Name: "Error", URL: srv.URL + "/error"},
		{Name: "Slow", URL: srv.URL + "/slow"},
	})

	require.Len(t, lists, 1, "only the healthy feed contributes")
	require.Len(t, lists[0], 1)
	assert.Equal(t, "Warming shelter opens", lists[0][0].Title)
}

func TestFetchCapsItemsPerFeed(t *testing.T) {
	now := time.Now()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var items []string
		for i := 0; i < 30; i++ {
			items = append(items, rssItem(
				fmt.Sprintf("Story %d", i),
				fmt.Sprintf("https://example.com/%d", i),
				now.Add(-time.Duration(i)*time.Minute)))
		}
		fmt.Fprint(w, rssBody(items...))
	}))
	defer srv.Close()

	f := New(config.CrawlConfig{TimeoutSeconds: 5, MaxItemsPerFeed: 15}, nil)
	lists := f.Fetch(context.Background(), []config.Feed{{Name: "Big", URL: srv.URL}})

	require.Len(t, lists, 1)
	assert.Len(t, lists[0], 15)
}

func TestFetchSkipsItemsWithoutTitleOrLink(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssBody(
			`<item><title>No link here</title></item>`,
			`<item><link>https://example.com/untitled</link></item>`,
			rssItem("Kept", "https://example.com/kept", time.Now()),
		))
	}))
	defer srv.Close()

	f := New(config.CrawlConfig{TimeoutSeconds: 5}, nil)
	lists := f.Fetch(context.Background(), []config.Feed{{Name: "Sparse", URL: srv.URL}})

	require.Len(t, lists, 1)
	require.Len(t, lists[0], 1)
	assert.Equal(t, "Kept", lists[0][0].Title)
}

func TestFetchMissingDateCarriedAsNil(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, rssBody(`<item><title>Undated story</title><link>https://example.com/undated</link></item>`))
	}))
	defer srv.Close()

	f := New(config.CrawlConfig{TimeoutSeconds: 5}, nil)
	lists := f.Fetch(context.Background(), []config.Feed{{Name: "Undated", URL: srv.URL}})

	require.Len(t, lists, 1)
	require.Len(t, lists[0], 1)
	assert.Nil(t, lists[0][0].PublishedAt)
}

func TestSummaryStripsHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain text", "hello world", "hello world"},
		{"tags stripped", "<p>Power <b>outage</b> reported</p>", "Power outage reported"},
		{"whitespace collapsed", "  \n\t ", ""},
		{"entities decoded", "ice &amp; sleet", "ice & sleet"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(tt.in))
		})
	}
}

func TestSummaryCapsLength(t *testing.T) {
	long := ""
	for i := 0; i < 100; i++ {
		long += "abcdefghij"
	}
	assert.Len(t, []rune(Summary(long)), 300)
}
