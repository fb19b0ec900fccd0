package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"radioflux/config"
	"radioflux/feed"
	"radioflux/logger"
	"radioflux/logos"
	"radioflux/playlist"
	"radioflux/scraper"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadFromEnv()

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "scrape":
		runScrape()
	case "feed":
		runFeed(cfg)
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <scrape|feed>\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "  scrape  extract stations from the radio directory into JSON/CSV")
	fmt.Fprintln(os.Stderr, "  feed    convert the configured M3U playlist into an RSS feed")
}

func runScrape() {
	logger.Default.Log("Starting radio directory scrape")

	s := scraper.New(scraper.DefaultConfig())
	radios, err := s.Run()
	if err != nil {
		logger.Default.Fatalf("Scrape failed: %v", err)
	}

	if len(radios) == 0 {
		logger.Default.Warn("No radio data extracted")
		return
	}

	if err := scraper.SaveJSON(config.GetJSONPath(), radios); err != nil {
		logger.Default.Fatalf("%v", err)
	}
	logger.Default.Logf("Data saved to %s", config.GetJSONPath())

	if err := scraper.SaveCSV(config.GetCSVPath(), radios); err != nil {
		logger.Default.Fatalf("%v", err)
	}
	logger.Default.Logf("Data saved to %s", config.GetCSVPath())

	s.PrintSummary()
}

func runFeed(cfg *config.Config) {
	stations, err := playlist.ParseFile(cfg.PlaylistPath)
	if err != nil {
		logger.Default.Fatalf("Error reading playlist %s: %v", cfg.PlaylistPath, err)
	}
	logger.Default.Logf("Parsed %d stations from %s", len(stations), cfg.PlaylistPath)

	resolver := logos.NewResolver(logos.DefaultSteps(cfg.LogoNameScan)...)
	for i := range stations {
		stations[i].LogoURL = resolver.Resolve(stations[i].LogoURL, stations[i].Country, stations[i].Name)
	}

	doc := feed.Build(stations)
	path, err := doc.Save(config.GetFeedsDirPath())
	if err != nil {
		logger.Default.Fatalf("%v", err)
	}

	logger.Default.Logf("Generated RSS feed: %s", path)
	logger.Default.Log("Host the XML file and subscribe by URL in a podcast app; every station appears as an episode.")
}
