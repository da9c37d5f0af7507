// Package report writes the two crawl artifacts the runner publishes: the
// machine-readable news_data.json and the styled news_report.html.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"stormwatch/internal/crawl"
)

const (
	JSONFileName = "news_data.json"
	HTMLFileName = "news_report.html"
)

// WriteJSON writes the crawl result as indented JSON and returns the path.
func WriteJSON(dir string, res crawl.Result) (string, error) {
	path := filepath.Join(dir, JSONFileName)
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// WriteHTML renders the styled report and returns the path.
func WriteHTML(dir string, res crawl.Result) (string, error) {
	path := filepath.Join(dir, HTMLFileName)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	if err := reportTmpl.Execute(f, newReportData(res)); err != nil {
		return "", fmt.Errorf("render %s: %w", path, err)
	}
	return path, nil
}

type sourceCount struct {
	Name  string
	Count int
}

type reportData struct {
	Result           crawl.Result
	Updated          string
	Generated        string
	SourceCounts     []sourceCount
	RedCrossMentions int
	SearchTerms      []string
}

func newReportData(res crawl.Result) reportData {
	counts := make(map[string]int)
	redCross := 0
	for _, a := range res.Articles {
		counts[a.SourceFeed]++
		if strings.Contains(a.Text(), "red cross") {
			redCross++
		}
	}
	sc := make([]sourceCount, 0, len(counts))
	for name, n := range counts {
		sc = append(sc, sourceCount{Name: name, Count: n})
	}
	sort.Slice(sc, func(i, j int) bool {
		if sc[i].Count != sc[j].Count {
			return sc[i].Count > sc[j].Count
		}
		return sc[i].Name < sc[j].Name
	})

	terms := res.Metadata.SearchTerms
	if len(terms) > 6 {
		terms = terms[:6]
	}

	return reportData{
		Result:           res,
		Updated:          res.Metadata.CrawledAt.Format("January 2, 2006 at 3:04 PM"),
		Generated:        res.Metadata.CrawledAt.Format("2006-01-02 15:04"),
		SourceCounts:     sc,
		RedCrossMentions: redCross,
		SearchTerms:      terms,
	}
}

// FormatDate renders an article timestamp for display, tolerating nil.
func FormatDate(t *time.Time) string {
	if t == nil {
		return "Unknown date"
	}
	return t.Format("Mon, 02 Jan 2006 15:04 MST")
}
