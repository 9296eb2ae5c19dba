package errs_test

import (
	"errors"
	"testing"

	"rentdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkMatching(t *testing.T) {
	sentinel := errs.New("validation failed")
	marked := errs.Mark(errs.New("quantity must be positive"), sentinel)

	assert.True(t, errs.Is(marked, sentinel))
	assert.False(t, errors.Is(marked, sentinel), "markers live outside the unwrap chain")
}

func TestMarkKeepsCauseChain(t *testing.T) {
	cause := errs.New("no rows")
	marked := errs.Mark(errs.Wrap(cause, "load settings"), errs.New("db failure"))

	assert.True(t, errs.Is(marked, cause))
	assert.True(t, errors.Is(marked, cause), "the cause stays reachable either way")
}

func TestMarkNilErr(t *testing.T) {
	sentinel := errs.New("marker")
	assert.Same(t, sentinel, errs.Mark(nil, sentinel))
}

func TestWrapNil(t *testing.T) {
	require.NoError(t, errs.Wrap(nil, "ignored"))
}
