// Package summary produces the executive briefing for disaster leadership:
// model-generated when an API is configured, a deterministic keyword summary
// otherwise. The endpoint never fails over a model outage.
package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/openai/openai-go/v2"
	"github.com/openai/openai-go/v2/option"
	"go.uber.org/zap"

	"stormwatch/internal/config"
	"stormwatch/internal/news"
)

const (
	maxArticles    = 25
	requestTimeout = 2 * time.Minute
)

// TimelineEntry is one dated event in the briefing timeline.
type TimelineEntry struct {
	Time  string `json:"time"`
	Event string `json:"event"`
}

// Briefing is the executive-summary document served to the front end.
type Briefing struct {
	ExecutiveSummary string              `json:"executive_summary"`
	KeyImpacts       map[string][]string `json:"key_impacts"`
	AffectedAreas    []string            `json:"affected_areas"`
	CriticalNumbers  map[string]string   `json:"critical_numbers"`
	ActionItems      []string            `json:"action_items"`
	Timeline         []TimelineEntry     `json:"timeline"`
	Resources        []string            `json:"resources_mentioned"`
	GeneratedAt      time.Time           `json:"generated_at"`
	ArticleCount     int                 `json:"article_count"`
	Fallback         bool                `json:"fallback,omitempty"`
}

// Generator builds briefings from a list of articles.
type Generator struct {
	cfg config.AIConfig
	log *zap.SugaredLogger
	now func() time.Time
}

func New(cfg config.AIConfig, log *zap.SugaredLogger) *Generator {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Generator{cfg: cfg, log: log, now: time.Now}
}

// Generate returns the best briefing available: the model's when configured
// and reachable, the keyword fallback otherwise.
func (g *Generator) Generate(ctx context.Context, articles []news.Article) Briefing {
	if g.cfg.BaseURL == "" || g.cfg.Model == "" || os.Getenv(g.cfg.APIKeyEnv) == "" {
		return g.fallback(articles)
	}
	b, err := g.fromModel(ctx, articles)
	if err != nil {
		g.log.Warnw("model summary failed, using fallback", "err", err)
		return g.fallback(articles)
	}
	return b
}

func (g *Generator) fromModel(ctx context.Context, articles []news.Article) (Briefing, error) {
	client := openai.NewClient(
		option.WithBaseURL(g.cfg.BaseURL),
		option.WithAPIKey(os.Getenv(g.cfg.APIKeyEnv)),
	)
	reqCtx, cancel := context.WithTimeout(ctx, requestTimeout)
	defer cancel()

	completion, err := client.Chat.Completions.New(reqCtx, openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(articles)),
		},
		Model: g.cfg.Model,
	})
	if err != nil {
		return Briefing{}, fmt.Errorf("completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return Briefing{}, fmt.Errorf("model returned no choices")
	}
	content := stripFences(completion.Choices[0].Message.Content)
	var b Briefing
	if err := json.Unmarshal([]byte(content), &b); err != nil {
		return Briefing{}, fmt.Errorf("parse briefing: %w", err)
	}
	b.GeneratedAt = g.now().UTC()
	b.ArticleCount = len(articles)
	return b, nil
}

func buildPrompt(articles []news.Article) string {
	var sb strings.Builder
	for i, a := range articles {
		if i >= maxArticles {
			break
		}
		fmt.Fprintf(&sb, "%d. [%s] %s\n", i+1, a.SourceFeed, a.Title)
		if a.Summary != "" {
			fmt.Fprintf(&sb, "   Summary: %s\n", truncate(a.Summary, 200))
		}
		if a.PublishedAt != nil {
			fmt.Fprintf(&sb, "   Date: %s\n", a.PublishedAt.Format(time.RFC1123))
		}
		sb.WriteString("\n")
	}

	return fmt.Sprintf(`You are a disaster operations analyst for the American Red Cross. Analyze these news articles about the South Carolina ice storm and create a comprehensive briefing document.

NEWS ARTICLES:
%s
Generate a JSON response with this exact structure:
{
    "executive_summary": "2-3 paragraph executive summary of the situation for disaster leadership",
    "key_impacts": {
        "power_outages": ["bullet point 1", "bullet point 2"],
        "road_conditions": ["bullet point 1", "bullet point 2"],
        "schools_closures": ["bullet point 1", "bullet point 2"],
        "shelters_warming": ["bullet point 1", "bullet point 2"],
        "emergency_response": ["bullet point 1", "bullet point 2"]
    },
    "affected_areas": ["County/City 1", "County/City 2"],
    "critical_numbers": {
        "estimated_outages": "number or range",
        "crashes_reported": "number if mentioned",
        "shelters_open": "number if mentioned",
        "schools_affected": "number if mentioned"
    },
    "action_items": ["Recommended action 1", "Recommended action 2"],
    "timeline": [{"time": "date/time", "event": "description"}],
    "resources_mentioned": ["hotline numbers", "websites", "contacts mentioned in articles"]
}

Be specific with numbers and locations when available. If information is not available, use "Not reported" or empty arrays.`, sb.String())
}

// stripFences removes a markdown code fence around the model's JSON reply.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, "```json"); i >= 0 {
		s = s[i+len("```json"):]
	} else if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+len("```"):]
	} else {
		return s
	}
	if j := strings.Index(s, "```"); j >= 0 {
		s = s[:j]
	}
	return strings.TrimSpace(s)
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
