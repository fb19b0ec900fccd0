package utils

import (
	"net/http"

	"radioflux/config"
)

// NewHTTPClient returns a client with the configured fetch timeout. The
// directory site blocks requests without a browser-like User-Agent, so every
// request goes through CustomHttpRequest.
func NewHTTPClient() *http.Client {
	return &http.Client{Timeout: config.GetConfig().FetchTimeout}
}

func CustomHttpRequest(client *http.Client, method string, url string) (*http.Response, error) {
	req, err := http.NewRequest(method, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", config.GetConfig().UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	return resp, nil
}
