package scraper

import (
	"regexp"
	"strconv"
	"strings"
)

// bitrateRegex matches bitrate mentions like "192kbps" or "128 kbps"
var bitrateRegex = regexp.MustCompile(`(?i)(\d+)\s*k?bps`)

// ParseStreamQuality extracts a bitrate in kbps from the text surrounding a
// stream URL. When no explicit bitrate is present it falls back to format
// defaults, with 64 as the floor for unknown formats.
func ParseStreamQuality(context string) int {
	if m := bitrateRegex.FindStringSubmatch(context); m != nil {
		if kbps, err := strconv.Atoi(m[1]); err == nil {
			return kbps
		}
	}

	lower := strings.ToLower(context)
	if strings.Contains(lower, "mp3") {
		return 128
	}
	if strings.Contains(lower, "aac") {
		return 96
	}

	return 64
}
