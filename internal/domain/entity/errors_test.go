package entity

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderErrorUnwrap(t *testing.T) {
	err := error(&RenderError{Err: ErrInvalidDimensions})
	require.ErrorIs(t, err, ErrInvalidDimensions)
	require.EqualError(t, err, "render: invalid frame or container dimensions")

	var re *RenderError
	require.True(t, errors.As(err, &re))
}
