package utils

import (
	"net/url"
	"path"
)

// ResolveURL resolves href against base, mirroring what a browser would load.
// Returns href unchanged when either side fails to parse.
func ResolveURL(base string, href string) string {
	baseURL, err := url.Parse(base)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return baseURL.ResolveReference(ref).String()
}

func GetFileExtensionFromUrl(rawUrl string) (string, error) {
	u, err := url.Parse(rawUrl)
	if err != nil {
		return "", err
	}
	return path.Ext(u.Path), nil
}

func GetHostFromUrl(rawUrl string) string {
	u, err := url.Parse(rawUrl)
	if err != nil {
		return ""
	}
	return u.Host
}
