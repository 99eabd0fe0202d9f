package main

import (
	"context"
	"fmt"

	"slidedeck/config"
	"slidedeck/export"
	"slidedeck/images"
	"slidedeck/layout"
	"slidedeck/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// App runs the deck pipeline: resolve images, lay out, save once, then
// optionally verify.
type App struct {
	log *logger.Logger
}

// Result describes a completed run.
type Result struct {
	RunID      string
	OutputPath string
	SlideCount int
	Pictures   int
	Warnings   []layout.Violation
	Verified   bool
}

// NewApp creates the application
func NewApp(log *logger.Logger) *App {
	if log == nil {
		log = logger.NewStderr(false)
	}
	return &App{log: log}
}

// BuildDeck lays out cfg's slides and writes the presentation. A save failure
// is returned unwrapped as an *export.ServiceError matching
// export.ErrPersistence. When verification fails after a successful
// save, the partial Result is returned with the error.
func (a *App) BuildDeck(ctx context.Context, cfg *config.Config) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, WrapOperationError("validate config", err)
	}
	specs, err := cfg.LayoutSpecs()
	if err != nil {
		return nil, WrapOperationError("read slide list", err)
	}

	runID := uuid.NewString()
	log := a.log.Named("app").With(zap.String("run", runID))
	log.Info("building deck",
		zap.Int("slides", len(specs)),
		zap.String("images", cfg.ImageDir),
		zap.String("output", cfg.OutputPath))

	width, height := cfg.PageSize()
	resolver := images.NewDirResolver(cfg.ImageDir, a.log.Named("images"))
	doc, err := layout.Build(width, height, specs,
		layout.WithImages(resolver),
		layout.WithLogger(a.log.Named("layout")))
	if err != nil {
		return nil, WrapOperationError("lay out slides", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	svc := export.NewGoPPTService(
		export.WithProperties(export.DocumentProperties{Title: cfg.Title, Creator: cfg.Author}),
		export.WithLogger(a.log.Named("export")))
	if err := svc.Save(doc, cfg.OutputPath); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:      runID,
		OutputPath: cfg.OutputPath,
		SlideCount: len(doc.Slides),
		Warnings:   doc.OutOfBounds(),
	}
	for _, s := range doc.Slides {
		res.Pictures += len(s.Pictures())
	}

	if cfg.Verify {
		if err := export.Verify(cfg.OutputPath, doc); err != nil {
			return res, WrapOperationError("verify deck", err)
		}
		res.Verified = true
		log.Info("deck verified", zap.String("path", cfg.OutputPath))
	}

	log.Info("deck complete", zap.String("summary", fmt.Sprintf("%d slides, %d pictures", res.SlideCount, res.Pictures)))
	return res, nil
}
