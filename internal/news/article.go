package news

import (
	"crypto/md5"
	"encoding/hex"
	neturl "net/url"
	"strings"
	"time"
	"unicode"
)

// Category labels assigned by the aggregator. Anything the keyword map does not
// claim lands in CategoryOther.
const (
	CategoryPower    = "Power & Utilities"
	CategoryRoads    = "Road Conditions"
	CategorySchools  = "Schools & Closures"
	CategoryShelters = "Shelters & Emergency"
	CategoryOther    = "Other"
)

// Article is a single feed entry that survived (or is still being run through)
// the relevance filter. Articles exist for one crawl only; nothing is persisted
// between invocations.
type Article struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Link        string     `json:"link"`
	Summary     string     `json:"summary,omitempty"`
	SourceFeed  string     `json:"source_feed"`
	PublishedAt *time.Time `json:"published_at"`
	Category    string     `json:"category,omitempty"`
}

// HashID derives the stable article id from its link: the first 12 hex
// characters of the MD5 digest.
func HashID(link string) string {
	sum := md5.Sum([]byte(link))
	return hex.EncodeToString(sum[:])[:12]
}

// Text returns the lowercased title+summary string all keyword matching runs on.
func (a Article) Text() string {
	return strings.ToLower(a.Title + " " + a.Summary)
}

// NormalizeTitle reduces a title to its lowercase alphanumerics so that
// near-identical headlines ("Ice Storm Closes Schools" vs "Ice storm closes
// schools!") dedupe against each other.
func NormalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizeLink canonicalizes a URL for deduplication: scheme and host
// lowercased, fragment dropped, trailing slash removed. Unparseable links are
// returned trimmed, as-is.
func NormalizeLink(link string) string {
	link = strings.TrimSpace(link)
	u, err := neturl.Parse(link)
	if err != nil {
		return link
	}
	u.Scheme = strings.ToLower(u.Scheme)
	u.Host = strings.ToLower(u.Host)
	u.Fragment = ""
	u.Path = strings.TrimSuffix(u.Path, "/")
	return u.String()
}
