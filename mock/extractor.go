package mock

import "github.com/fwojciec/scholarly"

var _ scholarly.ProfileExtractor = (*ProfileExtractor)(nil)

// ProfileExtractor is a mock implementation of scholarly.ProfileExtractor.
type ProfileExtractor struct {
	ExtractFn func(html string) (*scholarly.Profile, error)
}

func (e *ProfileExtractor) Extract(html string) (*scholarly.Profile, error) {
	return e.ExtractFn(html)
}
