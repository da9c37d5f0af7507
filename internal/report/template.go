package report

import "html/template"

var reportTmpl = template.Must(template.New("report").Funcs(template.FuncMap{
	"formatDate": FormatDate,
}).Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>SC Ice Storm News | American Red Cross</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif; background-color: #f5f5f5; color: #333; line-height: 1.6; }
.header { background-color: #d32f2f; color: white; padding: 24px; text-align: center; }
.header h1 { font-size: 28px; margin-bottom: 8px; }
.header .subtitle { font-size: 14px; opacity: 0.9; }
.header .updated { font-size: 12px; margin-top: 12px; opacity: 0.8; }
.container { max-width: 1200px; margin: 0 auto; padding: 24px; }
.stats-bar { display: flex; gap: 16px; margin-bottom: 24px; flex-wrap: wrap; }
.stat-card { background: white; border-radius: 8px; padding: 16px 24px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); flex: 1; min-width: 150px; }
.stat-card .number { font-size: 32px; font-weight: bold; color: #c62828; }
.stat-card .label { font-size: 12px; color: #666; text-transform: uppercase; }
.main-content { display: grid; grid-template-columns: 1fr 300px; gap: 24px; }
@media (max-width: 900px) { .main-content { grid-template-columns: 1fr; } }
.articles-section { background: white; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); padding: 24px; }
.section-title { font-size: 18px; color: #c62828; margin-bottom: 20px; padding-bottom: 12px; border-bottom: 2px solid #ffcdd2; }
.article-card { padding: 16px 0; border-bottom: 1px solid #e0e0e0; }
.article-card:last-child { border-bottom: none; }
.article-source { font-size: 11px; color: #c62828; text-transform: uppercase; font-weight: 600; margin-bottom: 4px; }
.article-category { font-size: 10px; color: #999; text-transform: uppercase; margin-left: 8px; }
.article-title { font-size: 16px; line-height: 1.4; margin-bottom: 8px; }
.article-title a { color: #333; text-decoration: none; }
.article-title a:hover { color: #c62828; text-decoration: underline; }
.summary { font-size: 14px; color: #666; margin-bottom: 8px; }
.article-meta { font-size: 12px; color: #999; }
.sidebar { display: flex; flex-direction: column; gap: 24px; }
.sidebar-card { background: white; border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); padding: 20px; }
.sidebar-card h3 { font-size: 14px; color: #c62828; text-transform: uppercase; margin-bottom: 16px; }
.source-item { display: flex; justify-content: space-between; padding: 8px 0; border-bottom: 1px solid #f0f0f0; font-size: 13px; }
.source-item:last-child { border-bottom: none; }
.source-count { font-weight: bold; color: #c62828; }
.search-terms { display: flex; flex-wrap: wrap; gap: 8px; }
.term-tag { background: #ffebee; color: #c62828; padding: 4px 10px; border-radius: 12px; font-size: 11px; }
.footer { text-align: center; padding: 24px; color: #999; font-size: 12px; }
</style>
</head>
<body>
<div class="header">
  <h1>South Carolina Ice Storm</h1>
  <div class="subtitle">News Monitoring | American Red Cross</div>
  <div class="updated">Last updated: {{.Updated}}</div>
</div>
<div class="container">
  <div class="stats-bar">
    <div class="stat-card"><div class="number">{{len .Result.Articles}}</div><div class="label">Total Articles</div></div>
    <div class="stat-card"><div class="number">{{len .SourceCounts}}</div><div class="label">News Sources</div></div>
    <div class="stat-card"><div class="number">{{.RedCrossMentions}}</div><div class="label">Red Cross Mentions</div></div>
  </div>
  <div class="main-content">
    <div class="articles-section">
      <h2 class="section-title">Latest Coverage</h2>
      {{range .Result.Articles}}
      <div class="article-card">
        <div class="article-source">{{.SourceFeed}}<span class="article-category">{{.Category}}</span></div>
        <h3 class="article-title"><a href="{{.Link}}" target="_blank" rel="noopener">{{.Title}}</a></h3>
        {{if .Summary}}<p class="summary">{{.Summary}}</p>{{end}}
        <div class="article-meta"><span class="date">{{formatDate .PublishedAt}}</span></div>
      </div>
      {{else}}
      <p style="color: #999; padding: 20px;">No updates found. The next crawl may pick up new coverage.</p>
      {{end}}
    </div>
    <div class="sidebar">
      <div class="sidebar-card">
        <h3>Sources</h3>
        {{range .SourceCounts}}<div class="source-item"><span class="source-name">{{.Name}}</span><span class="source-count">{{.Count}}</span></div>{{else}}<p style="color: #999;">No sources</p>{{end}}
      </div>
      <div class="sidebar-card">
        <h3>Search Terms</h3>
        <div class="search-terms">{{range .SearchTerms}}<span class="term-tag">{{.}}</span>{{end}}</div>
      </div>
    </div>
  </div>
</div>
<div class="footer">American Red Cross | News Monitoring System | Generated {{.Generated}}</div>
</body>
</html>
`))
