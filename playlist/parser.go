package playlist

import (
	"bufio"
	"io"
	"os"
	"regexp"
	"strings"

	"radioflux/logger"
)

// attributeRegex matches EXTINF attributes in the format key="value"
var attributeRegex = regexp.MustCompile(`([a-zA-Z0-9_-]+)="([^"]*)"`)

// parseState tracks the two-line EXTINF grammar: a metadata line opens an
// accumulator, the next non-comment line closes it with the stream URL.
type parseState int

const (
	awaitingMetadata parseState = iota
	awaitingURL
)

// Parse folds the playlist lines into stations. A metadata line never
// followed by a URL line is silently dropped since finalization only happens
// on the URL line.
func Parse(r io.Reader) ([]Station, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	var stations []Station
	var current Station
	state := awaitingMetadata

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case strings.HasPrefix(line, "#EXTINF:"):
			if station, ok := parseMetadataLine(line); ok {
				current = station
				state = awaitingURL
			}
		case line == "" || strings.HasPrefix(line, "#"):
			// blank lines and comments never close an accumulator
		case state == awaitingURL:
			current.URL = line
			stations = append(stations, current)
			current = Station{}
			state = awaitingMetadata
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	logger.Default.Debugf("Parsed %d stations from playlist", len(stations))
	return stations, nil
}

func ParseFile(path string) ([]Station, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return Parse(file)
}

// parseMetadataLine splits an EXTINF line on the first comma into the
// attribute segment and the display name. Every attribute is optional.
func parseMetadataLine(line string) (Station, bool) {
	parts := strings.SplitN(line, ",", 2)
	if len(parts) < 2 {
		return Station{}, false
	}

	station := Station{Name: strings.TrimSpace(parts[1])}

	for _, match := range attributeRegex.FindAllStringSubmatch(parts[0], -1) {
		value := strings.TrimSpace(match[2])
		switch strings.ToLower(strings.TrimSpace(match[1])) {
		case "tvg-name":
			station.TvgName = value
		case "tvg-logo":
			station.LogoURL = value
		case "tvg-country":
			station.Country = value
		case "group-title":
			station.Group = value
		}
	}

	return station, true
}
