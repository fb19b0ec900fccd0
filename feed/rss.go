// Package feed builds a single podcast-style RSS document listing every
// station as an entry.
package feed

import "encoding/xml"

const itunesNamespace = "http://www.itunes.com/dtds/podcast-1.0.dtd"

type RSS struct {
	XMLName  xml.Name `xml:"rss"`
	Version  string   `xml:"version,attr"`
	ItunesNS string   `xml:"xmlns:itunes,attr"`
	Channel  Channel  `xml:"channel"`
}

type Channel struct {
	Title       string `xml:"title"`
	Description string `xml:"description"`
	Link        string `xml:"link"`
	Language    string `xml:"language"`
	Image       *Image `xml:"image,omitempty"`
	Items       []Item `xml:"item"`
}

type Image struct {
	URL   string `xml:"url"`
	Title string `xml:"title"`
	Link  string `xml:"link"`
}

type Item struct {
	Title       string       `xml:"title"`
	Description string       `xml:"description"`
	Link        string       `xml:"link"`
	GUID        string       `xml:"guid"`
	PubDate     string       `xml:"pubDate"`
	Duration    string       `xml:"itunes:duration"`
	Explicit    string       `xml:"itunes:explicit"`
	Image       *ItunesImage `xml:"itunes:image,omitempty"`
	Enclosure   Enclosure    `xml:"enclosure"`
}

type ItunesImage struct {
	Href string `xml:"href,attr"`
}

type Enclosure struct {
	URL    string `xml:"url,attr"`
	Type   string `xml:"type,attr"`
	Length string `xml:"length,attr"`
}
