package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scholarly"
	"golang.org/x/net/html"
)

// Ensure Extractor implements scholarly.ProfileExtractor at compile time.
var _ scholarly.ProfileExtractor = (*Extractor)(nil)

// Extractor extracts profiles using a Layout.
type Extractor struct {
	layout Layout
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLayout replaces the default ScholarLayout.
func WithLayout(l Layout) Option {
	return func(e *Extractor) {
		e.layout = l
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{layout: ScholarLayout()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses raw HTML and returns the profile it contains.
// Returns EINVALID only for empty input.
func (e *Extractor) Extract(rawHTML string) (*scholarly.Profile, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, scholarly.Errorf(scholarly.EINVALID, "empty HTML input")
	}

	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, scholarly.Errorf(scholarly.EINVALID, "failed to parse HTML: %v", err)
	}

	return e.ExtractNode(root), nil
}

// ExtractNode extracts a profile from an already parsed document tree.
func (e *Extractor) ExtractNode(root *html.Node) *scholarly.Profile {
	return e.ExtractDocument(goquery.NewDocumentFromNode(root))
}

// ExtractDocument extracts a profile from a goquery document.
// Every section is looked up independently; a missing section leaves its
// fields at their zero value.
func (e *Extractor) ExtractDocument(doc *goquery.Document) *scholarly.Profile {
	affiliation := e.affiliation(doc)

	return &scholarly.Profile{
		Author: scholarly.AuthorProfile{
			Name:        text(doc.Find(e.layout.Name).First()),
			Affiliation: affiliation,
			Interests:   e.interests(doc),
			Metrics:     e.metrics(doc),
			SummaryText: affiliation,
		},
		Publications: e.publications(doc),
	}
}

// affiliation backs both the Affiliation and SummaryText fields.
func (e *Extractor) affiliation(doc *goquery.Document) string {
	return text(doc.Find(e.layout.Affiliation).First())
}

func (e *Extractor) interests(doc *goquery.Document) []string {
	var interests []string
	doc.Find(e.layout.Interests).Each(func(_ int, sel *goquery.Selection) {
		interests = append(interests, text(sel))
	})
	return interests
}

func (e *Extractor) metrics(doc *goquery.Document) map[string]string {
	metrics := make(map[string]string)
	doc.Find(e.layout.MetricsRow).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find(e.layout.MetricsCell)
		if cells.Length() < 2 {
			return
		}
		// Later rows with the same label win.
		metrics[text(cells.Eq(0))] = text(cells.Eq(1))
	})
	return metrics
}

func (e *Extractor) publications(doc *goquery.Document) []scholarly.Publication {
	var pubs []scholarly.Publication
	doc.Find(e.layout.PublicationRow).Each(func(_ int, row *goquery.Selection) {
		title := row.Find(e.layout.PublicationTitle).First()
		if title.Length() == 0 {
			return
		}

		gray := row.Find(e.layout.PublicationGray)
		pub := scholarly.Publication{
			Title:     text(title),
			Authors:   text(gray.Eq(0)),
			Year:      scholarly.ParseNonNegativeIntOrZero(row.Find(e.layout.PublicationYear).First().Text()),
			Citations: scholarly.ParseNonNegativeIntOrZero(row.Find(e.layout.PublicationCites).First().Text()),
		}
		if gray.Length() >= 2 {
			pub.Venue = text(gray.Eq(1))
		}
		pubs = append(pubs, pub)
	})
	return pubs
}

// text returns the trimmed text of a selection, or "" when it is empty.
func text(sel *goquery.Selection) string {
	return strings.TrimSpace(sel.Text())
}
