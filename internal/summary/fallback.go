package summary

import (
	"fmt"
	"strings"

	"stormwatch/internal/news"
)

var fallbackBuckets = []struct {
	key      string
	keywords []string
}{
	{"power_outages", []string{"power", "outage", "duke energy", "electric"}},
	{"road_conditions", []string{"road", "crash", "drive", "travel", "ice"}},
	{"schools_closures", []string{"school", "class", "university", "college"}},
	{"shelters_warming", []string{"shelter", "warming", "hotline"}},
}

// fallback builds a deterministic briefing from keyword buckets when no model
// is configured or the call failed.
func (g *Generator) fallback(articles []news.Article) Briefing {
	sources := make(map[string]struct{})
	for _, a := range articles {
		sources[a.SourceFeed] = struct{}{}
	}

	impacts := make(map[string][]string, len(fallbackBuckets)+1)
	for _, bucket := range fallbackBuckets {
		var titles []string
		for _, a := range articles {
			if len(titles) >= 4 {
				break
			}
			text := a.Text()
			for _, kw := range bucket.keywords {
				if strings.Contains(text, kw) {
					titles = append(titles, truncate(a.Title, 80))
					break
				}
			}
		}
		if len(titles) == 0 {
			titles = defaultImpact(bucket.key)
		}
		impacts[bucket.key] = titles
	}
	impacts["emergency_response"] = []string{
		"State Emergency Operations Center activated",
		"Monitor official channels for response updates",
	}

	return Briefing{
		ExecutiveSummary: fmt.Sprintf(
			"A significant winter ice storm is impacting South Carolina, with %d news articles tracked from %d sources. "+
				"Reports indicate power outages, hazardous road conditions, school closures, and warming shelters being "+
				"activated across the state.", len(articles), len(sources)),
		KeyImpacts:    impacts,
		AffectedAreas: []string{"Upstate SC", "Midlands", "Columbia", "Greenville"},
		CriticalNumbers: map[string]string{
			"estimated_outages": "Not reported",
			"crashes_reported":  "Not reported",
			"shelters_open":     "Not reported",
			"schools_affected":  "Not reported",
		},
		ActionItems: []string{
			"Monitor power restoration progress",
			"Coordinate with local emergency management",
			"Track shelter capacity and needs",
			"Prepare for extended cold weather impacts",
		},
		Timeline:     []TimelineEntry{},
		Resources:    []string{"SC Winter Weather Hotline: 1-866-246-0133"},
		GeneratedAt:  g.now().UTC(),
		ArticleCount: len(articles),
		Fallback:     true,
	}
}

func defaultImpact(key string) []string {
	switch key {
	case "power_outages":
		return []string{"Multiple power outages reported across the state"}
	case "road_conditions":
		return []string{"Hazardous driving conditions reported"}
	case "schools_closures":
		return []string{"Multiple school closures and delays"}
	default:
		return []string{"Warming shelters activated"}
	}
}
