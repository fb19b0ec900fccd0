package scraper

// StreamOption is one candidate playback URL found on a detail page. Context
// is the text surrounding the URL and is only used for quality scoring.
type StreamOption struct {
	URL         string `json:"url"`
	Context     string `json:"description"`
	BitrateKbps int    `json:"bitrate"`
}

// RadioCandidate is the extracted metadata for one station detail page.
// StreamURL and StreamQuality are set once a stream has been selected;
// candidates without a selected stream are dropped from the result set.
type RadioCandidate struct {
	PageURL       string         `json:"page_url"`
	Name          string         `json:"name"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	LogoURL       string         `json:"logo_url"`
	Streams       []StreamOption `json:"streams"`
	StreamURL     string         `json:"stream_url,omitempty"`
	StreamQuality string         `json:"stream_quality,omitempty"`
}
