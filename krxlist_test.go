package krxlist_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/krxlist"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := krxlist.Errorf(krxlist.ENOTFOUND, "archive has no entry %q", "kospi_code.mst")

	assert.Equal(t, krxlist.ENOTFOUND, krxlist.ErrorCode(err))
	assert.Equal(t, "archive has no entry \"kospi_code.mst\"", krxlist.ErrorMessage(err))
	assert.Equal(t, "archive has no entry \"kospi_code.mst\"", err.Error())
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("KOSPI: %w", krxlist.Errorf(krxlist.EINVALID, "bad"))

	assert.Equal(t, krxlist.EINVALID, krxlist.ErrorCode(err))
	assert.Equal(t, "bad", krxlist.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("connection refused")

	assert.Equal(t, krxlist.EINTERNAL, krxlist.ErrorCode(err))
	assert.Equal(t, "Internal error.", krxlist.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, krxlist.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, krxlist.ErrorMessage(nil))
}
