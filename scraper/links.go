package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"radioflux/utils"
)

// ExtractStationLinks collects detail-page links from the listing page:
// every href carrying the detail marker on the expected host, resolved to an
// absolute URL, deduplicated in first-seen order.
func (s *Scraper) ExtractStationLinks(doc *goquery.Document, baseURL string) []string {
	var links []string
	seen := make(map[string]struct{})

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if !strings.Contains(href, s.cfg.DetailMarker) || !strings.Contains(href, s.cfg.DetailHost) {
			return
		}

		full := utils.ResolveURL(baseURL, href)
		if _, ok := seen[full]; ok {
			return
		}
		seen[full] = struct{}{}
		links = append(links, full)
	})

	return links
}
