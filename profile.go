package scholarly

// AuthorProfile holds the author-level fields of a profile page.
// Empty strings and nil collections mean the field was not found.
type AuthorProfile struct {
	Name        string   `json:"name" yaml:"name"`
	Affiliation string   `json:"affiliation" yaml:"affiliation"`
	Interests   []string `json:"interests" yaml:"interests"`

	// Metrics maps the labels of the page's metrics table (e.g. "Citations",
	// "h-index") to their displayed values. Values stay as display text.
	Metrics map[string]string `json:"metrics" yaml:"metrics"`

	// SummaryText is populated from the same affiliation line as Affiliation.
	SummaryText string `json:"summaryText" yaml:"summaryText"`
}

// Publication is one entry of a profile's publication list.
type Publication struct {
	Title     string `json:"title" yaml:"title"`
	Authors   string `json:"authors" yaml:"authors"`
	Venue     string `json:"venue" yaml:"venue"`
	Year      int    `json:"year" yaml:"year"`
	Citations int    `json:"citations" yaml:"citations"`
}

// Profile is the structured record extracted from one profile page.
// Publications are in document order.
type Profile struct {
	Author       AuthorProfile `json:"author" yaml:"author"`
	Publications []Publication `json:"publications" yaml:"publications"`
}

// IsEmpty reports whether nothing at all could be extracted.
func (p *Profile) IsEmpty() bool {
	if p == nil {
		return true
	}
	a := p.Author
	return a.Name == "" &&
		a.Affiliation == "" &&
		a.SummaryText == "" &&
		len(a.Interests) == 0 &&
		len(a.Metrics) == 0 &&
		len(p.Publications) == 0
}

// ProfileExtractor turns the HTML of a profile page into a Profile.
type ProfileExtractor interface {
	// Extract parses raw HTML and returns the extracted profile.
	// Missing page sections leave the corresponding fields at their zero
	// value; only unusable input (e.g. an empty string) returns an error.
	Extract(html string) (*Profile, error)
}
