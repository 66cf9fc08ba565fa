package export

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"mouse-roi/internal/logger"
	"mouse-roi/internal/opencv/safe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

type fakeClipboard struct {
	data [][]byte
	err  error
}

func (f *fakeClipboard) WriteImage(png []byte) error {
	if f.err != nil {
		return f.err
	}
	f.data = append(f.data, png)
	return nil
}

func testCrop(t *testing.T) *safe.Mat {
	t.Helper()
	m, err := safe.NewMat(6, 8, gocv.MatTypeCV8UC3, "crop")
	require.NoError(t, err)
	t.Cleanup(m.Close)
	return m
}

func fixedClock(e *Exporter) {
	e.now = func() time.Time { return time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC) }
}

func TestExportDisabled(t *testing.T) {
	e := NewExporter(Options{}, nil, logger.Nop())
	assert.False(t, e.Enabled())

	path, err := e.Export(testCrop(t))
	require.NoError(t, err)
	assert.Empty(t, path)
}

func TestExportSavesNumberedFiles(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(Options{OutputDir: dir, Prefix: "Lenna.png"}, nil, logger.Nop())
	fixedClock(e)
	require.True(t, e.Enabled())

	first, err := e.Export(testCrop(t))
	require.NoError(t, err)
	second, err := e.Export(testCrop(t))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "Lenna_crop_20240301-123000_01.png"), first)
	assert.Equal(t, filepath.Join(dir, "Lenna_crop_20240301-123000_02.png"), second)
	_, err = os.Stat(first)
	assert.NoError(t, err)
}

func TestExportCopiesToClipboard(t *testing.T) {
	cb := &fakeClipboard{}
	e := NewExporter(Options{Clipboard: true}, cb, logger.Nop())

	_, err := e.Export(testCrop(t))
	require.NoError(t, err)
	require.Len(t, cb.data, 1)
	assert.Equal(t, []byte("\x89PNG"), cb.data[0][:4])
}

func TestExportClipboardFailure(t *testing.T) {
	cb := &fakeClipboard{err: errors.New("no display")}
	e := NewExporter(Options{Clipboard: true}, cb, logger.Nop())

	_, err := e.Export(testCrop(t))
	assert.ErrorContains(t, err, "no display")
}

func TestExportRejectsClosedMat(t *testing.T) {
	m := testCrop(t)
	m.Close()

	_, err := NewExporter(Options{OutputDir: t.TempDir()}, nil, logger.Nop()).Export(m)
	assert.Error(t, err)
}
