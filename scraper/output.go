package scraper

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

var csvHeader = []string{"name", "title", "description", "page_url", "logo_url", "stream_url", "stream_quality"}

// SaveJSON writes the full candidate set as an indented JSON array.
func SaveJSON(path string, radios []*RadioCandidate) error {
	data, err := json.MarshalIndent(radios, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling radios: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", path, err)
	}
	return nil
}

// SaveCSV writes one row per candidate with the fixed column set.
func SaveCSV(path string, radios []*RadioCandidate) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("error writing CSV header: %w", err)
	}

	for _, radio := range radios {
		row := []string{
			radio.Name,
			radio.Title,
			radio.Description,
			radio.PageURL,
			radio.LogoURL,
			radio.StreamURL,
			radio.StreamQuality,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("error writing CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
