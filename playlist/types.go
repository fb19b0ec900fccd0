package playlist

// Station is one finalized playlist entry. Stations keep the playlist's
// order; identical URLs are not deduplicated.
type Station struct {
	Name    string `json:"name"`
	TvgName string `json:"tvg_name"`
	Country string `json:"country"`
	LogoURL string `json:"logo"`
	Group   string `json:"group"`
	URL     string `json:"url"`
}
