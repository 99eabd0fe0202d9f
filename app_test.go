package main

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"slidedeck/config"
	"slidedeck/export"
	"slidedeck/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logger.Logger {
	return logger.NewLogger(&bytes.Buffer{}, false)
}

func writeImage(t *testing.T, path string) {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 300, 200))))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0644))
}

func TestBuildDeck_DefaultDeck(t *testing.T) {
	imgDir := t.TempDir()
	cfg := config.Default()
	for _, s := range cfg.Slides {
		if s.Image != "" {
			writeImage(t, filepath.Join(imgDir, s.Image))
		}
	}
	cfg.ImageDir = imgDir
	cfg.OutputPath = filepath.Join(t.TempDir(), "deck.pptx")
	cfg.Verify = true

	res, err := NewApp(quietLogger()).BuildDeck(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 15, res.SlideCount)
	assert.Equal(t, 11, res.Pictures)
	assert.True(t, res.Verified)
	assert.Empty(t, res.Warnings)
	assert.NotEmpty(t, res.RunID)

	outline, err := export.ReadOutline(cfg.OutputPath)
	require.NoError(t, err)
	require.Len(t, outline.Slides, 15)
	for i, s := range cfg.Slides {
		assert.Equal(t, s.Title, outline.Slides[i].Title, "slide %d", i+1)
	}
}

func TestBuildDeck_MissingImagesStillBuild(t *testing.T) {
	cfg := config.Default()
	cfg.ImageDir = t.TempDir()
	cfg.OutputPath = filepath.Join(t.TempDir(), "deck.pptx")

	res, err := NewApp(quietLogger()).BuildDeck(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, 15, res.SlideCount)
	assert.Zero(t, res.Pictures)
	assert.FileExists(t, cfg.OutputPath)
}

func TestBuildDeck_PersistenceFailure(t *testing.T) {
	cfg := config.Default()
	cfg.ImageDir = t.TempDir()
	cfg.OutputPath = filepath.Join(t.TempDir(), "missing", "deck.pptx")

	res, err := NewApp(quietLogger()).BuildDeck(context.Background(), cfg)
	require.Error(t, err)
	assert.Nil(t, res)
	assert.True(t, errors.Is(err, export.ErrPersistence))

	var se *export.ServiceError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, cfg.OutputPath, se.Path)
	assert.NoFileExists(t, cfg.OutputPath)

	msg := renderFailure(se)
	assert.Contains(t, msg, "Presentation not saved")
	assert.Contains(t, msg, cfg.OutputPath)
}

func TestBuildDeck_OverfullGridWarnsAndSaves(t *testing.T) {
	cfg := &config.Config{
		Title:      "Findings",
		OutputPath: filepath.Join(t.TempDir(), "deck.pptx"),
		ImageDir:   t.TempDir(),
		Page:       config.PageConfig{WidthIn: config.DefaultPageWidthIn, HeightIn: config.DefaultPageHeightIn},
		Slides: []config.SlideSpec{
			{Kind: config.KindFindings, Title: "Too many", Findings: []string{"1", "2", "3", "4", "5", "6", "7"}},
		},
	}

	res, err := NewApp(quietLogger()).BuildDeck(context.Background(), cfg)
	require.NoError(t, err)
	assert.FileExists(t, cfg.OutputPath)
	require.NotEmpty(t, res.Warnings)
	assert.Equal(t, "Finding 7 Box", res.Warnings[0].Shape)
	assert.Contains(t, renderReport(res), "slide 1: Finding 7 Box extends past the page")
}

func TestBuildDeck_InvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.OutputPath = ""
	_, err := NewApp(quietLogger()).BuildDeck(context.Background(), cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to validate config")
	assert.False(t, errors.Is(err, export.ErrPersistence))
}

func TestBuildDeck_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg := config.Default()
	cfg.OutputPath = filepath.Join(t.TempDir(), "deck.pptx")

	_, err := NewApp(quietLogger()).BuildDeck(ctx, cfg)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NoFileExists(t, cfg.OutputPath)
}

func TestWrapOperationError(t *testing.T) {
	cause := errors.New("boom")
	err := WrapOperationError("save deck", cause)
	assert.EqualError(t, err, "failed to save deck: boom")
	assert.ErrorIs(t, err, cause)
	assert.Nil(t, WrapOperationError("save deck", nil))

	err = WrapOperationErrorf("load deck %s", cause, "a.yaml")
	assert.EqualError(t, err, "failed to load deck a.yaml: boom")
}
