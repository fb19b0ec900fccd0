package scraper

import "regexp"

// URLMatcher is one independent pattern for spotting candidate stream URLs in
// raw page text. Matchers run independently and their results are unioned, so
// patterns can be added or removed without touching the extraction flow.
type URLMatcher struct {
	Name    string
	pattern *regexp.Regexp
}

func NewURLMatcher(name string, pattern string) URLMatcher {
	return URLMatcher{Name: name, pattern: regexp.MustCompile(pattern)}
}

func (m URLMatcher) Find(text string) []string {
	return m.pattern.FindAllString(text, -1)
}

// DefaultMatchers covers the URL shapes radio streams show up as on the
// directory's detail pages: explicit .mp3/.aac links, paths mentioning
// stream/radio/live, and bare host:port endpoints.
func DefaultMatchers() []URLMatcher {
	return []URLMatcher{
		NewURLMatcher("mp3", `(?i)https?://[^\s<>"]+\.mp3[^\s<>"]*`),
		NewURLMatcher("aac", `(?i)https?://[^\s<>"]+\.aac[^\s<>"]*`),
		NewURLMatcher("stream-path", `(?i)https?://[^\s<>"]+/[^\s<>"]*(?:stream|radio|live)[^\s<>"]*`),
		NewURLMatcher("explicit-port", `https?://[^\s<>"]+:\d+[^\s<>"]*`),
	}
}

// DefaultDenylist holds host substrings that show up in page text but are
// never stream endpoints. Known to be incomplete; extend via Config.
func DefaultDenylist() []string {
	return []string{"facebook", "twitter", "google", "blogger", "youtube"}
}
