// Package deeplink seeds query state from an address-style query
// string supplied at startup. Seeding is one-directional: the query
// state is never written back.
package deeplink

import (
	"fmt"
	"net/url"
	"strings"
)

// Seed carries the two query dimensions that can arrive via the link.
// Empty fields leave the corresponding defaults untouched.
type Seed struct {
	Search  string
	Company string
}

// Parse accepts a full URL ("https://host/people?search=ali"), a bare
// query string ("search=ali&company=Acme"), or one with a leading "?".
func Parse(raw string) (Seed, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Seed{}, nil
	}

	var values url.Values
	if strings.Contains(trimmed, "://") {
		u, err := url.Parse(trimmed)
		if err != nil {
			return Seed{}, fmt.Errorf("parse link %q: %w", raw, err)
		}
		values = u.Query()
	} else {
		var err error
		values, err = url.ParseQuery(strings.TrimPrefix(trimmed, "?"))
		if err != nil {
			return Seed{}, fmt.Errorf("parse link query %q: %w", raw, err)
		}
	}

	return Seed{
		Search:  values.Get("search"),
		Company: values.Get("company"),
	}, nil
}
