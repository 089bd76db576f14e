package scholarly

// PageKind classifies a fetched page before extraction.
type PageKind string

// PageKind constants.
const (
	PageUnknown PageKind = ""
	PageProfile PageKind = "profile"
	PageBlocked PageKind = "blocked"
)

// PageDetector classifies fetched HTML.
type PageDetector interface {
	// Detect returns PageBlocked for captcha or consent interstitials,
	// PageProfile when profile sections are present, PageUnknown otherwise.
	Detect(html string) PageKind
}
