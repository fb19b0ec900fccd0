package scraper

import "strings"

// SelectBestStream picks one option out of a candidate list. A single
// candidate is returned as-is without scoring. With two or more, the format
// bonus dominates the bitrate so MP3 beats AAC beats anything else regardless
// of bitrate; within the same format the higher bitrate wins. Ties keep the
// first-encountered option.
func SelectBestStream(streams []StreamOption) *StreamOption {
	if len(streams) == 0 {
		return nil
	}
	if len(streams) == 1 {
		return &streams[0]
	}

	best := &streams[0]
	bestScore := streamScore(streams[0])
	for i := 1; i < len(streams); i++ {
		if score := streamScore(streams[i]); score > bestScore {
			best = &streams[i]
			bestScore = score
		}
	}
	return best
}

func streamScore(s StreamOption) int {
	url := strings.ToLower(s.URL)
	context := strings.ToLower(s.Context)

	formatScore := 100
	switch {
	case strings.Contains(url, ".mp3") || strings.Contains(context, "mp3"):
		formatScore = 1000
	case strings.Contains(url, ".aac") || strings.Contains(context, "aac"):
		formatScore = 500
	}

	return formatScore + s.BitrateKbps
}
