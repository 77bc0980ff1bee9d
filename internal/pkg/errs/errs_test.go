//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"slotbooker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMark_SentinelMatchesWithStandardErrorsIs(t *testing.T) {
	sentinel := errs.New("slot taken")
	cause := errs.New("ERROR: could not serialize access (SQLSTATE 40001)")

	err := errs.Mark(cause, sentinel)

	require.True(t, errors.Is(err, sentinel))
	assert.True(t, errors.Is(err, cause))
	assert.True(t, errs.Is(err, sentinel))
	assert.Contains(t, err.Error(), "SQLSTATE 40001")
}

func TestMark_NilCauseReturnsSentinel(t *testing.T) {
	sentinel := errs.New("gone")

	require.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
}
