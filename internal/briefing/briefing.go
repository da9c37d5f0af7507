// Package briefing renders the crawl result as a printable, paginated PDF:
// one section per category, clickable source links per article, footer page
// numbers on every page.
package briefing

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"stormwatch/internal/config"
	"stormwatch/internal/crawl"
	"stormwatch/internal/news"
)

const (
	margin     = 50.0
	headerH    = 95.0
	footerY    = 32.0
	bottomPad  = 80.0
	titleLineH = 14.0
	metaLineH  = 10.0
	sumLineH   = 11.0
)

var (
	brandR, brandG, brandB = 198, 40, 40
	linkR, linkG, linkB    = 26, 13, 171
)

type renderer struct {
	pdf      *fpdf.Fpdf
	pageW    float64
	pageH    float64
	usableW  float64
	drNumber string
}

// Render produces the briefing PDF for one crawl result.
func Render(res crawl.Result, cats []config.Category, drNumber string) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AliasNbPages("")

	r := &renderer{pdf: pdf, drNumber: drNumber}
	r.pageW, r.pageH = pdf.GetPageSize()
	r.usableW = r.pageW - 2*margin

	pdf.SetFooterFunc(func() {
		pdf.SetDrawColor(brandR, brandG, brandB)
		pdf.SetLineWidth(0.5)
		pdf.Line(margin, r.pageH-footerY, r.pageW-margin, r.pageH-footerY)
		pdf.SetFont("Helvetica", "", 8)
		pdf.SetTextColor(170, 170, 170)
		pdf.Text(margin, r.pageH-20,
			fmt.Sprintf("American Red Cross | %s News Summary | Page %d of {nb}", r.drNumber, pdf.PageNo()))
	})

	pdf.AddPage()
	r.header(res.Metadata.CrawledAt)
	y := r.stats(res)

	for _, section := range groupByCategory(res.Articles, cats) {
		y = r.section(y, section.name, section.articles)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *renderer) header(crawledAt time.Time) {
	pdf := r.pdf
	pdf.SetFillColor(brandR, brandG, brandB)
	pdf.Rect(0, 0, r.pageW, headerH, "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.Text(margin, 35, r.drNumber)
	pdf.SetFont("Helvetica", "", 14)
	pdf.Text(margin, 54, "Winter Storm News Summary")
	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(margin, 70, "American Red Cross | Disaster Operations")
	pdf.SetFont("Helvetica", "", 9)
	pdf.Text(margin, 84, "Generated: "+crawledAt.Format("January 2, 2006 at 3:04 PM MST"))
}

func (r *renderer) stats(res crawl.Result) float64 {
	pdf := r.pdf
	y := headerH + 20

	stat := func(x float64, number, label string) {
		pdf.SetTextColor(brandR, brandG, brandB)
		pdf.SetFont("Helvetica", "B", 32)
		pdf.Text(x, y, number)
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(120, 120, 120)
		pdf.Text(x, y+13, label)
	}
	stat(margin, fmt.Sprintf("%d", len(res.Articles)), "ARTICLES")
	stat(margin+130, fmt.Sprintf("%d", countSources(res.Articles)), "SOURCES")

	y += 40
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(1)
	pdf.Line(margin, y, r.pageW-margin, y)
	return y + 20
}

func (r *renderer) section(y float64, name string, articles []news.Article) float64 {
	if len(articles) == 0 {
		return y
	}
	pdf := r.pdf
	if y > r.pageH-90 {
		pdf.AddPage()
		y = margin
	}
	pdf.SetFillColor(brandR, brandG, brandB)
	pdf.RoundedRect(margin, y-13, r.usableW, 20, 3, "1234", "F")
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 10)
	pdf.Text(margin+8, y+1, fmt.Sprintf("%s (%d)", name, len(articles)))
	y += 18

	for _, a := range articles {
		y = r.article(y, a)
	}
	return y + 8
}

func (r *renderer) article(y float64, a news.Article) float64 {
	pdf := r.pdf
	if y > r.pageH-bottomPad {
		pdf.AddPage()
		y = margin
	}

	pdf.SetTextColor(linkR, linkG, linkB)
	pdf.SetFont("Helvetica", "B", 11)
	for _, line := range pdf.SplitText(a.Title, r.usableW-12) {
		if y > r.pageH-40 {
			pdf.AddPage()
			y = margin
		}
		pdf.SetXY(margin+6, y-10)
		pdf.CellFormat(r.usableW-12, titleLineH, line, "", 0, "L", false, 0, a.Link)
		y += titleLineH
	}

	pdf.SetTextColor(150, 150, 150)
	pdf.SetFont("Helvetica", "", 8)
	meta := a.SourceFeed
	if a.PublishedAt != nil {
		meta += " | " + a.PublishedAt.Format("Jan 2, 2006 15:04 MST")
	}
	pdf.Text(margin+6, y, meta)
	y += metaLineH

	if a.Summary != "" {
		sum := a.Summary
		if len([]rune(sum)) > 180 {
			sum = string([]rune(sum)[:180]) + "..."
		}
		pdf.SetTextColor(100, 100, 100)
		pdf.SetFont("Helvetica", "", 9)
		for _, line := range pdf.SplitText(sum, r.usableW-12) {
			if y > r.pageH-40 {
				pdf.AddPage()
				y = margin
			}
			pdf.Text(margin+6, y, line)
			y += sumLineH
		}
	}
	return y + 10
}

type categorySection struct {
	name     string
	articles []news.Article
}

// groupByCategory buckets articles in configured category order, with Other
// last. Aggregation already sorted and capped, so order within a bucket holds.
func groupByCategory(articles []news.Article, cats []config.Category) []categorySection {
	byName := make(map[string][]news.Article)
	for _, a := range articles {
		byName[a.Category] = append(byName[a.Category], a)
	}
	out := make([]categorySection, 0, len(cats)+1)
	for _, c := range cats {
		out = append(out, categorySection{name: c.Name, articles: byName[c.Name]})
	}
	out = append(out, categorySection{name: "OTHER COVERAGE", articles: byName[news.CategoryOther]})
	return out
}

func countSources(articles []news.Article) int {
	seen := make(map[string]struct{})
	for _, a := range articles {
		seen[a.SourceFeed] = struct{}{}
	}
	return len(seen)
}
