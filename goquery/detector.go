package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scholarly"
)

// Ensure Detector implements scholarly.PageDetector at compile time.
var _ scholarly.PageDetector = (*Detector)(nil)

// blockedMarkers are phrases shown on captcha and rate-limit interstitials.
var blockedMarkers = []string{
	"unusual traffic",
	"not a robot",
}

// Detector classifies fetched pages as profiles or interstitials.
type Detector struct {
	layout Layout
}

// NewDetector creates a new Detector for the given layout.
func NewDetector(layout Layout) *Detector {
	return &Detector{layout: layout}
}

// Detect analyzes HTML and returns the kind of page it is.
func (d *Detector) Detect(html string) scholarly.PageKind {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return scholarly.PageUnknown
	}

	if d.hasSelector(doc, "#gs_captcha_f") ||
		d.hasSelector(doc, "form#captcha-form") ||
		d.hasSelector(doc, "#recaptcha") {
		return scholarly.PageBlocked
	}

	// Profile markup wins over interstitial phrases, which may appear in
	// publication titles or interests.
	if d.hasSelector(doc, d.layout.Name) ||
		d.hasSelector(doc, d.layout.PublicationRow) ||
		d.hasSelector(doc, d.layout.MetricsRow) {
		return scholarly.PageProfile
	}

	if d.hasBlockedText(doc) {
		return scholarly.PageBlocked
	}

	return scholarly.PageUnknown
}

// hasSelector checks if the document contains at least one element matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}

func (d *Detector) hasBlockedText(doc *goquery.Document) bool {
	body := strings.ToLower(doc.Find("body").Text())
	for _, marker := range blockedMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}
