package scholarly

import (
	"fmt"
	"slices"
	"strings"
)

// DefaultMaxPublications is the number of most-cited publications a summary lists.
const DefaultMaxPublications = 5

// absentValue is how a missing name is rendered.
const absentValue = "None"

// Summarizer renders profiles as text summaries.
type Summarizer struct {
	// MaxPublications limits the publications block.
	// Values <= 0 use DefaultMaxPublications.
	MaxPublications int
}

// Summarize renders a summary with the default settings.
func Summarize(author AuthorProfile, pubs []Publication, fields FieldSet) string {
	return Summarizer{}.Summarize(author, pubs, fields)
}

// Summarize renders the requested fields as blocks separated by blank lines.
// Blocks follow Field order regardless of how the set was built. Every
// block except the name is omitted when its data is absent.
func (s Summarizer) Summarize(author AuthorProfile, pubs []Publication, fields FieldSet) string {
	var blocks []string
	for _, f := range fields.Fields() {
		if block, ok := s.block(f, author, pubs); ok {
			blocks = append(blocks, block)
		}
	}
	return strings.Join(blocks, "\n\n")
}

func (s Summarizer) block(f Field, author AuthorProfile, pubs []Publication) (string, bool) {
	switch f {
	case FieldName:
		name := author.Name
		if name == "" {
			name = absentValue
		}
		return "Name: " + name, true
	case FieldAffiliation:
		if author.Affiliation == "" {
			return "", false
		}
		return "Affiliation: " + author.Affiliation, true
	case FieldSummary:
		if author.SummaryText == "" {
			return "", false
		}
		return "Summary: " + author.SummaryText, true
	case FieldInterests:
		if len(author.Interests) == 0 {
			return "", false
		}
		return "Research Interests/Keywords: " + strings.Join(author.Interests, ", "), true
	case FieldMetrics:
		if len(author.Metrics) == 0 {
			return "", false
		}
		return formatMetrics(author.Metrics), true
	case FieldPublications:
		if len(pubs) == 0 {
			return "", false
		}
		return s.formatPublications(pubs), true
	}
	return "", false
}

// summaryMetrics are the metric labels a summary reports, in order.
var summaryMetrics = []string{"Citations", "h-index", "i10-index"}

func formatMetrics(metrics map[string]string) string {
	lines := make([]string, 0, len(summaryMetrics))
	for _, label := range summaryMetrics {
		value, ok := metrics[label]
		if !ok {
			value = "0"
		}
		lines = append(lines, label+": "+value)
	}
	return strings.Join(lines, "\n")
}

func (s Summarizer) formatPublications(pubs []Publication) string {
	var b strings.Builder
	b.WriteString("Publications:")
	for _, p := range TopCited(pubs, s.maxPublications()) {
		fmt.Fprintf(&b, "\n• %s (%d) - %d citations", p.Title, p.Year, p.Citations)
	}
	return b.String()
}

func (s Summarizer) maxPublications() int {
	if s.MaxPublications <= 0 {
		return DefaultMaxPublications
	}
	return s.MaxPublications
}

// TopCited returns up to n publications ordered by citations, highest first.
// Publications with equal citation counts keep their relative order.
// The input slice is not modified.
func TopCited(pubs []Publication, n int) []Publication {
	sorted := slices.Clone(pubs)
	slices.SortStableFunc(sorted, func(a, b Publication) int {
		return b.Citations - a.Citations
	})
	if n >= 0 && len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
