package qr

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	d, err := New("")
	require.NoError(t, err)
	require.IsType(t, &ZXingDecoder{}, d)

	d, err = New("gocv")
	require.NoError(t, err)
	require.IsType(t, &GoCVDecoder{}, d)

	_, err = New("jsqr")
	require.Error(t, err)
}
