// Rinkstats - Olympic Hockey Stats Tracker
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/rinkstats

package config

import (
	"fmt"
	"net/url"
)

// validateBaseURL checks a provider base URL. Request paths are appended to
// it, so query strings and fragments are rejected, and credentials belong in
// DATA_PROVIDER_API_KEY rather than the URL.
func validateBaseURL(raw, env string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("%s is not a valid URL: %w", env, err)
	}
	switch {
	case u.Scheme != "http" && u.Scheme != "https":
		return fmt.Errorf("%s must use http or https, got %q", env, u.Scheme)
	case u.Host == "":
		return fmt.Errorf("%s must include a host", env)
	case u.User != nil:
		return fmt.Errorf("%s must not embed credentials; use DATA_PROVIDER_API_KEY", env)
	case u.RawQuery != "" || u.Fragment != "":
		return fmt.Errorf("%s must not contain a query or fragment", env)
	}
	return nil
}
