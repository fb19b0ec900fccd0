package scraper

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestScraper() *Scraper {
	return New(Config{
		BaseURL:      "https://fluxradios.blogspot.com/",
		DetailMarker: "flux-url-",
		DetailHost:   "fluxradios.blogspot.com",
		Matchers:     DefaultMatchers(),
		Denylist:     DefaultDenylist(),
	})
}

func docFromHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractStationLinks(t *testing.T) {
	s := newTestScraper()

	t.Run("keeps marker links on expected host", func(t *testing.T) {
		html := `<html><body>
			<a href="https://fluxradios.blogspot.com/2020/01/flux-url-radio-x.html">Radio X</a>
			<a href="https://fluxradios.blogspot.com/about.html">About</a>
			<a href="https://other.example.com/flux-url-radio-y.html">Elsewhere</a>
		</body></html>`
		links := s.ExtractStationLinks(docFromHTML(t, html), s.cfg.BaseURL)
		assert.Equal(t, []string{"https://fluxradios.blogspot.com/2020/01/flux-url-radio-x.html"}, links)
	})

	t.Run("duplicate hrefs yield one entry", func(t *testing.T) {
		html := `<html><body>
			<a href="https://fluxradios.blogspot.com/flux-url-radio-x.html">Radio X</a>
			<a href="https://fluxradios.blogspot.com/flux-url-radio-x.html">Radio X again</a>
		</body></html>`
		links := s.ExtractStationLinks(docFromHTML(t, html), s.cfg.BaseURL)
		assert.Len(t, links, 1)
	})

	t.Run("preserves first-seen order", func(t *testing.T) {
		html := `<html><body>
			<a href="https://fluxradios.blogspot.com/flux-url-radio-b.html">B</a>
			<a href="https://fluxradios.blogspot.com/flux-url-radio-a.html">A</a>
			<a href="https://fluxradios.blogspot.com/flux-url-radio-b.html">B again</a>
		</body></html>`
		links := s.ExtractStationLinks(docFromHTML(t, html), s.cfg.BaseURL)
		require.Len(t, links, 2)
		assert.Contains(t, links[0], "radio-b")
		assert.Contains(t, links[1], "radio-a")
	})
}

func TestStationNameFromURL(t *testing.T) {
	s := newTestScraper()

	tests := []struct {
		url  string
		want string
	}{
		{"https://fluxradios.blogspot.com/2020/01/flux-url-france-inter.html", "France Inter"},
		{"https://fluxradios.blogspot.com/flux-url-radio-x.html", "Radio X"},
		{"https://fluxradios.blogspot.com/about.html", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, s.stationNameFromURL(tt.url))
	}
}

func TestExtractStationInfo(t *testing.T) {
	s := newTestScraper()
	pageURL := "https://fluxradios.blogspot.com/flux-url-radio-x.html"

	t.Run("full page", func(t *testing.T) {
		html := `<html><head><title>Radio X - Flux Radios</title></head><body>
			<h2>Radio X</h2>
			<img src="/images/radio-x-logo.png" alt="logo Radio X">
			<p>Radio X est une station de radio généraliste française.</p>
			<p>court</p>
			<p>Elle diffuse des programmes d'information en continu toute la journée.</p>
			<p>Flux MP3 128kbps : http://stream.radio-x.fr/live.mp3</p>
			<p>https://www.youtube.com/watch?v=abc123stream</p>
		</body></html>`

		candidate := s.ExtractStationInfo(docFromHTML(t, html), pageURL)

		assert.Equal(t, "Radio X", candidate.Name)
		assert.Equal(t, "Radio X", candidate.Title)
		assert.Equal(t, pageURL, candidate.PageURL)
		assert.Equal(t, "https://fluxradios.blogspot.com/images/radio-x-logo.png", candidate.LogoURL)
		assert.Contains(t, candidate.Description, "station de radio généraliste")
		assert.Contains(t, candidate.Description, "programmes d'information")
		assert.NotContains(t, candidate.Description, "court")

		require.NotEmpty(t, candidate.StreamURL)
		assert.Equal(t, "http://stream.radio-x.fr/live.mp3", candidate.StreamURL)
		assert.Equal(t, "128kbps", candidate.StreamQuality)
		for _, stream := range candidate.Streams {
			assert.NotContains(t, strings.ToLower(stream.URL), "youtube")
		}
	})

	t.Run("heading over page title only when under cap", func(t *testing.T) {
		long := strings.Repeat("x", 120)
		html := `<html><head><title>Page Title</title></head><body>
			<h1>` + long + `</h1>
			<h2>Short Heading</h2>
		</body></html>`

		candidate := s.ExtractStationInfo(docFromHTML(t, html), pageURL)
		assert.Equal(t, "Short Heading", candidate.Title)
	})

	t.Run("no stream leaves candidate unselected", func(t *testing.T) {
		html := `<html><head><title>Radio X</title></head><body><p>Rien à écouter ici pour le moment.</p></body></html>`
		candidate := s.ExtractStationInfo(docFromHTML(t, html), pageURL)
		assert.Empty(t, candidate.StreamURL)
		assert.Empty(t, candidate.Streams)
	})

	t.Run("trailing punctuation trimmed from urls", func(t *testing.T) {
		html := `<html><body><p>Écouter (http://stream.radio-x.fr/live.mp3).</p></body></html>`
		candidate := s.ExtractStationInfo(docFromHTML(t, html), pageURL)
		require.NotEmpty(t, candidate.Streams)
		assert.Equal(t, "http://stream.radio-x.fr/live.mp3", candidate.Streams[0].URL)
	})

	t.Run("port pattern catches extensionless endpoints", func(t *testing.T) {
		html := `<html><body><p>Flux direct : http://icecast.radio-x.fr:8000/;</p></body></html>`
		candidate := s.ExtractStationInfo(docFromHTML(t, html), pageURL)
		require.NotEmpty(t, candidate.Streams)
		assert.Equal(t, 64, candidate.Streams[0].BitrateKbps)
	})
}

func TestSurroundingText(t *testing.T) {
	text := "avant avant avant http://example.com/live.mp3 après après"

	t.Run("window around the url", func(t *testing.T) {
		ctx := surroundingText(text, "http://example.com/live.mp3", 6)
		assert.Contains(t, ctx, "avant http://example.com/live.mp3")
		assert.NotContains(t, ctx, "avant avant avant")
	})

	t.Run("absent needle yields empty context", func(t *testing.T) {
		assert.Empty(t, surroundingText(text, "http://missing.example.com", 100))
	})
}
