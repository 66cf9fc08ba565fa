package cli

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"mouse-roi/internal/config"
	"mouse-roi/internal/logger"
	"mouse-roi/internal/opencv/imageio"
	"mouse-roi/internal/opencv/safe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isolateEnv(t *testing.T) string {
	t.Helper()
	for _, key := range []string{config.EnvFileEnvVar, config.ImageEnvVar, config.OutputDirEnvVar,
		config.ClipboardEnvVar, config.DisplayEnvVar, config.LogLevelEnvVar, config.DebugEnvVar} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return filepath.Join(t.TempDir(), "none.env")
}

func writePNG(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 16, 12))
	img.Set(0, 0, color.RGBA{B: 255, A: 255})

	path := filepath.Join(t.TempDir(), "sample.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

type capture struct {
	cfg    *config.Config
	width  int
	called bool
}

func (c *capture) run(cfg *config.Config, _ logger.Logger, source *safe.Mat) error {
	defer source.Close()
	c.cfg = cfg
	c.width = source.Cols()
	c.called = true
	return nil
}

func TestCropCommandFlagsOverrideEnvironment(t *testing.T) {
	envFile := isolateEnv(t)
	t.Setenv(config.OutputDirEnvVar, "from-env")
	path := writePNG(t)

	var console bytes.Buffer
	c := &capture{}
	cmd := NewCommand(CropTool, &console, c.run)
	cmd.SetArgs([]string{"--env-file", envFile, "--output-dir", "from-flag", "--clipboard", "--log-level", "error", path})

	require.NoError(t, cmd.Execute())
	require.True(t, c.called)
	assert.Equal(t, path, c.cfg.ImagePath)
	assert.Equal(t, "from-flag", c.cfg.OutputDir)
	assert.True(t, c.cfg.Clipboard)
	assert.Equal(t, "error", c.cfg.LogLevel)
	assert.Equal(t, 16, c.width)
	assert.Empty(t, console.String())
}

func TestClickCommandHasNoCropFlags(t *testing.T) {
	isolateEnv(t)
	cmd := NewCommand(ClickTool, &bytes.Buffer{}, (&capture{}).run)

	assert.Nil(t, cmd.Flags().Lookup("output-dir"))
	assert.Nil(t, cmd.Flags().Lookup("clipboard"))
	assert.NotNil(t, cmd.Flags().Lookup("screen"))
}

func TestLoadFailurePrintsToolMessage(t *testing.T) {
	tests := []struct {
		tool Tool
		want string
	}{
		{ClickTool, "image not found\n"},
		{CropTool, "Could not load image\n"},
	}

	for _, tt := range tests {
		t.Run(tt.tool.Use, func(t *testing.T) {
			envFile := isolateEnv(t)
			var console bytes.Buffer
			c := &capture{}

			cmd := NewCommand(tt.tool, &console, c.run)
			cmd.SetArgs([]string{"--env-file", envFile, "--log-level", "off", filepath.Join(t.TempDir(), "missing.png")})

			err := cmd.Execute()
			assert.ErrorIs(t, err, imageio.ErrImageNotLoaded)
			assert.Equal(t, tt.want, console.String())
			assert.False(t, c.called)
		})
	}
}

func TestRejectsNegativeScreen(t *testing.T) {
	envFile := isolateEnv(t)
	cmd := NewCommand(ClickTool, &bytes.Buffer{}, (&capture{}).run)
	cmd.SetArgs([]string{"--env-file", envFile, "--screen", "-2"})

	assert.Error(t, cmd.Execute())
}

func TestRejectsExtraArguments(t *testing.T) {
	envFile := isolateEnv(t)
	cmd := NewCommand(ClickTool, &bytes.Buffer{}, (&capture{}).run)
	cmd.SetArgs([]string{"--env-file", envFile, "a.png", "b.png"})

	assert.Error(t, cmd.Execute())
}

func TestSourceName(t *testing.T) {
	assert.Equal(t, "Lenna.png", sourceName(&config.Config{ImagePath: "resources/images/Lenna.png", Display: config.NoDisplay}))
	assert.Equal(t, "display1", sourceName(&config.Config{Display: 1}))
}
