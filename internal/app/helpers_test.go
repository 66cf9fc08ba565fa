package app

import (
	"testing"

	"mouse-roi/internal/opencv/safe"

	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

// blackMat returns a BGR image of the given size filled with zeros.
func blackMat(t *testing.T, width, height int) *safe.Mat {
	t.Helper()
	m, err := safe.Wrap(gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), height, width, gocv.MatTypeCV8UC3), "test_source")
	require.NoError(t, err)
	return m
}
