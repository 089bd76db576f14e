package scholarly_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/scholarly"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := scholarly.Errorf(scholarly.ENOTFOUND, "analysis %q not found", "abc")

	assert.Equal(t, scholarly.ENOTFOUND, scholarly.ErrorCode(err))
	assert.Equal(t, "analysis \"abc\" not found", scholarly.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scholarly.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, scholarly.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, scholarly.EINTERNAL, scholarly.ErrorCode(err))
	assert.Equal(t, "Internal error.", scholarly.ErrorMessage(err))
}

func TestErrorCode_WrappedApplicationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("fetching profile: %w", scholarly.Errorf(scholarly.EINVALID, "bad url"))

	assert.Equal(t, scholarly.EINVALID, scholarly.ErrorCode(err))
	assert.Equal(t, "bad url", scholarly.ErrorMessage(err))
}
