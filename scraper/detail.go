package scraper

import (
	"fmt"
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"radioflux/utils"
)

const (
	headingTitleCap   = 100
	descriptionMinLen = 20
	contextRadius     = 100
)

var titleCaser = cases.Title(language.Und)

var logoExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// ExtractStationInfo builds a RadioCandidate from one parsed detail page.
// Missing elements yield empty fields, never errors.
func (s *Scraper) ExtractStationInfo(doc *goquery.Document, pageURL string) *RadioCandidate {
	candidate := &RadioCandidate{
		PageURL: pageURL,
		Name:    s.stationNameFromURL(pageURL),
	}

	candidate.Title = strings.TrimSpace(doc.Find("title").First().Text())
	doc.Find("h1, h2, h3").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if text != "" && len(text) < headingTitleCap {
			candidate.Title = text
			return false
		}
		return true
	})

	var paragraphs []string
	doc.Find("p").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		text := strings.TrimSpace(sel.Text())
		if len(text) > descriptionMinLen && !strings.HasPrefix(text, "http") {
			paragraphs = append(paragraphs, text)
		}
		return len(paragraphs) < 2
	})
	candidate.Description = strings.Join(paragraphs, " ")

	doc.Find("img").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		src, _ := sel.Attr("src")
		if src == "" {
			return true
		}
		alt := strings.ToLower(sel.AttrOr("alt", ""))
		if strings.Contains(alt, "logo") || strings.Contains(alt, "radio") || hasLogoExtension(src) {
			candidate.LogoURL = utils.ResolveURL(pageURL, src)
			return false
		}
		return true
	})

	candidate.Streams = s.extractStreamOptions(doc.Text())

	if best := SelectBestStream(candidate.Streams); best != nil {
		candidate.StreamURL = best.URL
		candidate.StreamQuality = fmt.Sprintf("%dkbps", best.BitrateKbps)
	}

	return candidate
}

// stationNameFromURL derives a display name from the detail-page URL: the
// marker path segment with the marker and extension stripped, separators
// turned into spaces, title-cased.
func (s *Scraper) stationNameFromURL(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}

	for _, segment := range strings.Split(u.Path, "/") {
		if !strings.Contains(segment, s.cfg.DetailMarker) {
			continue
		}
		name := strings.Replace(segment, s.cfg.DetailMarker, "", 1)
		name = strings.TrimSuffix(name, path.Ext(name))
		name = strings.ReplaceAll(name, "-", " ")
		return titleCaser.String(name)
	}

	return ""
}

// extractStreamOptions runs every matcher over the page text, unions the
// hits, and turns each surviving URL into a scored StreamOption.
func (s *Scraper) extractStreamOptions(text string) []StreamOption {
	var found []string
	seen := make(map[string]struct{})
	for _, matcher := range s.cfg.Matchers {
		for _, raw := range matcher.Find(text) {
			cleaned := strings.TrimRight(strings.TrimSpace(raw), ".,;)")
			if cleaned == "" {
				continue
			}
			if _, ok := seen[cleaned]; ok {
				continue
			}
			seen[cleaned] = struct{}{}
			found = append(found, cleaned)
		}
	}

	var streams []StreamOption
	for _, streamURL := range found {
		if s.isDenied(streamURL) {
			continue
		}

		context := surroundingText(text, streamURL, contextRadius)
		streams = append(streams, StreamOption{
			URL:         streamURL,
			Context:     context,
			BitrateKbps: ParseStreamQuality(context),
		})
	}

	return streams
}

func (s *Scraper) isDenied(streamURL string) bool {
	lower := strings.ToLower(streamURL)
	for _, blocked := range s.cfg.Denylist {
		if strings.Contains(lower, blocked) {
			return true
		}
	}
	return false
}

func surroundingText(text string, needle string, radius int) string {
	idx := strings.Index(text, needle)
	if idx == -1 {
		return ""
	}

	start := idx - radius
	if start < 0 {
		start = 0
	}
	end := idx + len(needle) + radius
	if end > len(text) {
		end = len(text)
	}

	return strings.TrimSpace(text[start:end])
}

func hasLogoExtension(src string) bool {
	lower := strings.ToLower(src)
	for _, ext := range logoExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
