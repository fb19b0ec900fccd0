package scraper

import (
	"fmt"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"

	"radioflux/config"
	"radioflux/logger"
	"radioflux/utils"
)

// Config carries the per-run knobs of the directory pipeline. The marker and
// host identify detail-page links on the listing page; Denylist filters
// unrelated hosts out of the stream candidates.
type Config struct {
	BaseURL      string
	DetailMarker string
	DetailHost   string
	Matchers     []URLMatcher
	Denylist     []string
	Delay        time.Duration
}

func DefaultConfig() Config {
	return Config{
		BaseURL:      config.GetConfig().BaseURL,
		DetailMarker: "flux-url-",
		DetailHost:   "fluxradios.blogspot.com",
		Matchers:     DefaultMatchers(),
		Denylist:     DefaultDenylist(),
		Delay:        config.GetConfig().FetchDelay,
	}
}

type Scraper struct {
	cfg    Config
	client *http.Client
	radios []*RadioCandidate
}

func New(cfg Config) *Scraper {
	return &Scraper{
		cfg:    cfg,
		client: utils.NewHTTPClient(),
	}
}

func (s *Scraper) fetchDocument(pageURL string) (*goquery.Document, error) {
	resp, err := utils.CustomHttpRequest(s.client, http.MethodGet, pageURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return goquery.NewDocumentFromReader(resp.Body)
}

// Run walks the directory sequentially: listing page, then every discovered
// detail page with a politeness delay in between. Per-page failures are
// logged and skipped; only a failed listing fetch aborts the run.
func (s *Scraper) Run() ([]*RadioCandidate, error) {
	listing, err := s.fetchDocument(s.cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("error fetching listing page %s: %w", s.cfg.BaseURL, err)
	}

	links := s.ExtractStationLinks(listing, s.cfg.BaseURL)
	logger.Default.Logf("Found %d radio links", len(links))

	for i, pageURL := range links {
		logger.Default.Logf("Processing radio %d/%d: %s", i+1, len(links), pageURL)

		doc, err := s.fetchDocument(pageURL)
		if err != nil {
			logger.Default.Errorf("Error fetching %s: %v", pageURL, err)
			time.Sleep(s.cfg.Delay)
			continue
		}

		candidate := s.ExtractStationInfo(doc, pageURL)
		if candidate.StreamURL != "" {
			s.radios = append(s.radios, candidate)
			logger.Default.Logf("Successfully extracted: %s (%s)", candidate.Name, candidate.StreamQuality)
		} else {
			logger.Default.Warnf("No stream found for: %s", pageURL)
		}

		// Be respectful with requests
		time.Sleep(s.cfg.Delay)
	}

	return s.radios, nil
}

// PrintSummary logs the extraction totals, the count per quality label, and
// a few sample results.
func (s *Scraper) PrintSummary() {
	logger.Default.Logf("Total radios with streams: %d", len(s.radios))

	qualities := make(map[string]int)
	var labels []string
	for _, radio := range s.radios {
		if _, ok := qualities[radio.StreamQuality]; !ok {
			labels = append(labels, radio.StreamQuality)
		}
		qualities[radio.StreamQuality]++
	}
	for _, label := range labels {
		logger.Default.Logf("  %s: %d radios", label, qualities[label])
	}

	for i, radio := range s.radios {
		if i >= 3 {
			break
		}
		logger.Default.Logf("Sample: %s | %s | %s", radio.Name, radio.StreamURL, radio.StreamQuality)
	}
}
