package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"slidedeck/config"
	"slidedeck/export"
	"slidedeck/logger"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	logDir  string

	// build flags
	configPath string
	imagesDir  string
	outPath    string
	verifyDeck bool

	// init flags
	force bool

	appLog *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "slidedeck",
	Short: "Lay out report slides into a PowerPoint deck",
	Long: `slidedeck turns a list of slides (title slides, bullet and chart slides, and
key-findings grids) into a widescreen .pptx file.

Chart images are looked up by file name in the images directory; slides whose
image is missing fall back to full-width bullets.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		appLog = logger.NewStderr(verbose)
		if logDir != "" {
			if err := appLog.Init(logDir); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
		}
		return nil
	},
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the presentation",
	Long: `Builds the deck described by --config, or the built-in air quality deck when
no config is given. Flags override the matching config values.`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

var initCmd = &cobra.Command{
	Use:   "init [file]",
	Short: "Write the built-in deck as an editable YAML file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

// closeLog runs after every command, failed ones included.
func closeLog() {
	if appLog != nil {
		appLog.Close()
	}
}

func init() {
	cobra.OnFinalize(closeLog)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&logDir, "log-dir", "", "Also write a run log into this directory")

	buildCmd.Flags().StringVarP(&configPath, "config", "c", "", "Deck YAML file (default: built-in deck)")
	buildCmd.Flags().StringVar(&imagesDir, "images", "", "Directory holding the chart images")
	buildCmd.Flags().StringVarP(&outPath, "out", "o", "", "Output .pptx path")
	buildCmd.Flags().BoolVar(&verifyDeck, "verify", false, "Reopen the saved deck and check slide count and titles")

	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	rootCmd.AddCommand(buildCmd, initCmd)
}

func loadDeck(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, WrapOperationErrorf("load deck %s", err, path)
	}
	return cfg, nil
}

// applyFlags copies the non-empty build flags onto cfg.
func applyFlags(cfg *config.Config) {
	if imagesDir != "" {
		cfg.ImageDir = imagesDir
	}
	if outPath != "" {
		cfg.OutputPath = outPath
	}
	if verifyDeck {
		cfg.Verify = true
	}
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadDeck(configPath)
	if err != nil {
		return err
	}
	applyFlags(cfg)

	if appLog == nil {
		appLog = logger.NewStderr(verbose)
	}
	if logDir == "" && cfg.LogDir != "" {
		if err := appLog.Init(cfg.LogDir); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	res, err := NewApp(appLog).BuildDeck(ctx, cfg)
	if err != nil {
		var se *export.ServiceError
		if errors.Is(err, export.ErrPersistence) && errors.As(err, &se) {
			fmt.Fprintln(cmd.ErrOrStderr(), renderFailure(se))
		}
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderReport(res))
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	path := "deck.yaml"
	if len(args) > 0 {
		path = args[0]
	}
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := config.Default().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
