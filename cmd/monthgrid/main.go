package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/username/monthgrid/internal/config"
	"github.com/username/monthgrid/internal/grid"
	"github.com/username/monthgrid/internal/ui"
	"github.com/username/monthgrid/internal/view"
	"github.com/username/monthgrid/pkg/dateutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	logger     *zap.Logger
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "monthgrid",
		Short: "Terminal month-view calendar",
		Long:  "Display a 6x7 month grid for a reference date with that day highlighted",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config to get log file path
			cfg, err := config.Load(configPath)
			if err == nil && cfg.Log.File != "" {
				logger, err = initFileLogger(cfg.Log.File, cfg.Log.Level)
				if err != nil {
					initLogger() // Fallback to console
				}
			} else {
				initLogger() // Default console logger
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path")

	rootCmd.AddCommand(showCmd())
	rootCmd.AddCommand(viewCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func showCmd() *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show [date]",
		Short: "Print the month grid for a date (default today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ref, err := referenceDate(args)
			if err != nil {
				return err
			}

			styles := view.NewStyles(view.ThemeByName(cfg.UI.Theme))
			if plain {
				styles = view.PlainStyles()
			}

			renderer := view.NewRenderer(view.DefaultFormatter{}, styles, logger)

			logger.Info("rendering month view",
				zap.Time("reference_date", ref),
				zap.Bool("plain", plain))

			out, err := renderer.Render(ref)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Disable styling (for pipes)")

	return cmd
}

func viewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view [date]",
		Short: "Show the month grid interactively; q to quit",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			ref, err := referenceDate(args)
			if err != nil {
				return err
			}

			renderer := view.NewRenderer(
				view.DefaultFormatter{},
				view.NewStyles(view.ThemeByName(cfg.UI.Theme)),
				logger,
			)

			model := ui.NewModel(ref, renderer, logger)
			if err := model.Err(); err != nil {
				return err
			}

			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("display failed: %w", err)
			}
			return nil
		},
	}

	return cmd
}

// referenceDate resolves the optional date argument, defaulting to today.
// Validation happens once here, before any grid is generated.
func referenceDate(args []string) (time.Time, error) {
	ref := dateutil.Today()
	if len(args) == 1 {
		parsed, err := dateutil.ParseDate(args[0])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %v", grid.ErrInvalidDate, err)
		}
		ref = parsed
	}

	if err := grid.Validate(ref); err != nil {
		return time.Time{}, err
	}
	return ref, nil
}

func initLogger() {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var err error
	logger, err = config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
}

func initFileLogger(logFile string, level string) (*zap.Logger, error) {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    100,  // MB
		MaxBackups: 3,    // Keep max 3 old log files
		MaxAge:     28,   // days
		Compress:   true, // Compress old logs with gzip
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.InfoLevel
	}

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		zapLevel,
	)

	return zap.New(core), nil
}
