// Package goquery extracts profiles from profile-page HTML using CSS selectors.
package goquery

// Layout names the CSS selectors that locate each section of a profile page.
// It is the only place that knows the page's markup conventions.
type Layout struct {
	Name        string
	Affiliation string
	Interests   string

	MetricsRow  string
	MetricsCell string

	PublicationRow   string
	PublicationTitle string
	PublicationGray  string
	PublicationYear  string
	PublicationCites string
}

// ScholarLayout returns the selectors for Google Scholar profile pages.
func ScholarLayout() Layout {
	return Layout{
		Name:        "#gsc_prf_in",
		Affiliation: ".gsc_prf_il",
		Interests:   "a.gsc_prf_inta",

		MetricsRow:  "table#gsc_rsb_st tr",
		MetricsCell: "td",

		PublicationRow:   "tr.gsc_a_tr",
		PublicationTitle: "a.gsc_a_at",
		PublicationGray:  "div.gs_gray",
		PublicationYear:  "span.gsc_a_h",
		PublicationCites: "a.gsc_a_ac",
	}
}
