package rod_test

import (
	"context"
	"testing"

	"github.com/fwojciec/scholarly"
	"github.com/fwojciec/scholarly/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLazyFetcher_CloseWithoutFetch(t *testing.T) {
	t.Parallel()

	f := rod.NewLazyFetcher()

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())
}

func TestLazyFetcher_FetchAfterClose(t *testing.T) {
	t.Parallel()

	f := rod.NewLazyFetcher()
	require.NoError(t, f.Close())

	_, err := f.Fetch(context.Background(), "https://example.com")

	assert.Equal(t, scholarly.EINVALID, scholarly.ErrorCode(err))
}
