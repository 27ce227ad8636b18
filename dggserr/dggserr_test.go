package dggserr_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskaware-ltd/open-eaggr-go/dggserr"
)

func TestErrorRendersKindAndDetail(t *testing.T) {
	err := dggserr.New(dggserr.InvalidCoordinate, "latitude %d is out of range", 200)
	assert.Equal(t, "InvalidCoordinate: latitude 200 is out of range", err.Error())
	assert.Equal(t, dggserr.InvalidCoordinate, err.Kind())
	assert.Equal(t, "latitude 200 is out of range", err.Detail())
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("boom")
	err := dggserr.Wrap(cause, dggserr.BadInput, "while doing the thing")
	require.ErrorIs(t, err, cause)
}

func TestIsComparesByKind(t *testing.T) {
	a := dggserr.New(dggserr.RangeOverflow, "resolution too deep")
	b := dggserr.New(dggserr.RangeOverflow, "a different detail")
	c := dggserr.New(dggserr.CellKind, "not even the same kind")

	assert.True(t, errors.Is(a, b))
	assert.False(t, errors.Is(a, c))
}
