// Package export persists finished crops to disk and the system clipboard.
package export

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"mouse-roi/internal/logger"
	"mouse-roi/internal/opencv/imageio"
	"mouse-roi/internal/opencv/safe"

	"golang.design/x/clipboard"
)

// ImageClipboard receives PNG encoded images.
type ImageClipboard interface {
	WriteImage(png []byte) error
}

type Options struct {
	OutputDir string
	Clipboard bool
	// Prefix names saved files; the source image's base name works well.
	Prefix string
}

type Exporter struct {
	opts      Options
	clipboard ImageClipboard
	logger    logger.Logger
	now       func() time.Time
	mu        sync.Mutex
	seq       int
}

func NewExporter(opts Options, cb ImageClipboard, log logger.Logger) *Exporter {
	return &Exporter{
		opts:      opts,
		clipboard: cb,
		logger:    log,
		now:       time.Now,
	}
}

func (e *Exporter) Enabled() bool {
	return e.opts.OutputDir != "" || (e.opts.Clipboard && e.clipboard != nil)
}

// Export writes crop to every configured destination and returns the saved
// file path, if any.
func (e *Exporter) Export(crop *safe.Mat) (string, error) {
	if err := safe.ValidateMatForOperation(crop, "export crop"); err != nil {
		return "", err
	}

	var saved string
	if e.opts.OutputDir != "" {
		saved = filepath.Join(e.opts.OutputDir, e.nextName())
		if err := imageio.Save(saved, crop); err != nil {
			return "", fmt.Errorf("save crop: %w", err)
		}
		e.logger.Info("Exporter", "crop saved", map[string]interface{}{
			"path":   saved,
			"width":  crop.Cols(),
			"height": crop.Rows(),
		})
	}

	if e.opts.Clipboard && e.clipboard != nil {
		data, err := imageio.EncodePNG(crop)
		if err != nil {
			return saved, err
		}
		if err := e.clipboard.WriteImage(data); err != nil {
			return saved, fmt.Errorf("copy crop to clipboard: %w", err)
		}
		e.logger.Info("Exporter", "crop copied to clipboard", map[string]interface{}{
			"bytes": len(data),
		})
	}

	return saved, nil
}

func (e *Exporter) nextName() string {
	e.mu.Lock()
	e.seq++
	seq := e.seq
	e.mu.Unlock()

	prefix := strings.TrimSuffix(e.opts.Prefix, filepath.Ext(e.opts.Prefix))
	if prefix == "" {
		prefix = "crop"
	}
	return fmt.Sprintf("%s_crop_%s_%02d.png", prefix, e.now().Format("20060102-150405"), seq)
}

// SystemClipboard writes to the OS clipboard through golang.design/x/clipboard.
type SystemClipboard struct{}

var (
	clipboardOnce sync.Once
	clipboardErr  error
)

// NewSystemClipboard initialises the platform clipboard once per process.
func NewSystemClipboard() (*SystemClipboard, error) {
	clipboardOnce.Do(func() {
		clipboardErr = clipboard.Init()
	})
	if clipboardErr != nil {
		return nil, fmt.Errorf("clipboard unavailable: %w", clipboardErr)
	}
	return &SystemClipboard{}, nil
}

func (SystemClipboard) WriteImage(png []byte) error {
	clipboard.Write(clipboard.FmtImage, png)
	return nil
}
