package scholarly

import (
	"net/url"
	"strings"
)

// ProfileURL validates a profile page URL and returns its canonical form.
// Google Scholar URLs get hl=en unless a language is already set, so the
// metrics table carries the English labels the summary reports.
func ProfileURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", Errorf(EINVALID, "profile URL required")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", Errorf(EINVALID, "invalid profile URL: %v", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", Errorf(EINVALID, "profile URL must use http or https: %q", raw)
	}
	if u.Host == "" {
		return "", Errorf(EINVALID, "profile URL has no host: %q", raw)
	}

	if strings.HasPrefix(u.Hostname(), "scholar.google.") {
		q := u.Query()
		if q.Get("hl") == "" {
			q.Set("hl", "en")
			u.RawQuery = q.Encode()
		}
	}

	return u.String(), nil
}
