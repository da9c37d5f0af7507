package fetch

import (
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

const summaryMaxRunes = 300

var tagRe = regexp.MustCompile(`<[^>]+>`)

// Summary converts a feed-provided HTML description into the plain-text
// summary an article carries, capped at 300 runes.
func Summary(s string) string {
	text := htmlToText(s)
	runes := []rune(text)
	if len(runes) > summaryMaxRunes {
		text = string(runes[:summaryMaxRunes])
	}
	return text
}

// htmlToText flattens a small HTML fragment into plain text by walking the
// node tree and joining text nodes with single spaces.
func htmlToText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	n, err := html.Parse(strings.NewReader(s))
	if err != nil || n == nil {
		// best effort: strip angle-bracket tags
		out := tagRe.ReplaceAllString(s, " ")
		return strings.Join(strings.Fields(out), " ")
	}
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			t := strings.TrimSpace(n.Data)
			if t != "" {
				if b.Len() > 0 {
					b.WriteString(" ")
				}
				b.WriteString(t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
