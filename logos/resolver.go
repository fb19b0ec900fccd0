// Package logos resolves a station's logo URL through an ordered chain of
// fallback steps. Which steps are active is a product decision, so the chain
// is assembled by the caller; resolution itself is total and always returns a
// non-empty URL.
package logos

import "strings"

// DefaultIconURL is the application icon used when no other step produces a
// logo.
const DefaultIconURL = "https://cdn.radioflux.app/icons/radio-default.png"

// Request carries the raw station attributes a step may draw from.
type Request struct {
	Logo    string
	Country string
	Name    string
}

// Step inspects a request and returns a logo URL, or "" to pass to the next
// step.
type Step func(r Request) string

type Resolver struct {
	steps []Step
}

func NewResolver(steps ...Step) *Resolver {
	if len(steps) == 0 {
		steps = DefaultSteps(false)
	}
	return &Resolver{steps: steps}
}

// DefaultSteps is the current fallback chain: explicit attribute, then the
// country table. The display-name scan existed in an earlier revision of the
// chain and stays opt-in.
func DefaultSteps(nameScan bool) []Step {
	steps := []Step{StepExplicit, StepCountry}
	if nameScan {
		steps = append(steps, StepNameScan)
	}
	return append(steps, StepDefault)
}

// Resolve runs the chain; the first non-empty result wins.
func (r *Resolver) Resolve(logo string, country string, name string) string {
	req := Request{Logo: logo, Country: country, Name: name}
	for _, step := range r.steps {
		if url := step(req); url != "" {
			return url
		}
	}
	return DefaultIconURL
}

// StepExplicit returns the station's own logo attribute when present.
func StepExplicit(r Request) string {
	return strings.TrimSpace(r.Logo)
}

// StepCountry maps the country attribute to a flag image. Lookup is
// case-sensitive; the table is keyed by both ISO code and full name.
func StepCountry(r Request) string {
	return countryFlags[r.Country]
}

// StepNameScan looks for a " | CC" marker embedded in the display name, as
// some playlists suffix station names with their country code.
func StepNameScan(r Request) string {
	parts := strings.Split(r.Name, " | ")
	for _, part := range parts[1:] {
		code := strings.TrimSpace(part)
		if flag, ok := countryFlags[code]; ok {
			return flag
		}
	}
	return ""
}

func StepDefault(Request) string {
	return DefaultIconURL
}
