package cli

import (
	"context"
	"fmt"

	"github.com/gobeaver/filelike"
	"github.com/gobeaver/filelike/internal/logger"
	"github.com/spf13/cobra"

	// Drivers addressable as "driver:path"
	_ "github.com/gobeaver/filelike/driver/local"
	_ "github.com/gobeaver/filelike/driver/memory"
)

type ctxKey string

const appCfgKey ctxKey = "appConfig"

type rootOpts struct {
	driver        string
	basePath      string
	blockSize     int
	highWaterMark int
	logLevel      string
}

func NewRootCommand() *cobra.Command {
	var opts rootOpts

	rootCmd := &cobra.Command{
		Use:   "filelike",
		Short: "filelike moves bytes between storage backends",
		Long: `filelike copies, prints and checksums streams on any registered backend.
Locations are written as driver:path (local:/tmp/a.bin, memory:scratch);
a bare path uses the configured default driver and "-" means stdin or stdout.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := filelike.GetConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			applyFlagOverrides(cmd, cfg, &opts)

			logger.SetOutput(cmd.ErrOrStderr())
			if err := logger.ConfigureLogger(cfg.LogLevel); err != nil {
				logger.Warn("invalid log level in config, defaulting to info", logger.Fields{
					logger.FieldError: err.Error(),
				})
			}

			logger.Debug("loaded config", logger.Fields{
				logger.FieldDriver:    cfg.Driver,
				logger.FieldBlockSize: cfg.BlockSize,
				logger.FieldHighWater: cfg.HighWaterMark,
			})

			cmd.SetContext(context.WithValue(cmd.Context(), appCfgKey, cfg))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.driver, "driver", "", "Default driver for bare paths (local, memory)")
	flags.StringVar(&opts.basePath, "base-path", "", "Root directory of the local driver")
	flags.IntVar(&opts.blockSize, "block-size", 0, "Read block size in bytes")
	flags.IntVar(&opts.highWaterMark, "high-water-mark", 0, "Holding buffer ceiling in bytes")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	rootCmd.AddCommand(CopyCommand())
	rootCmd.AddCommand(CatCommand())
	rootCmd.AddCommand(ChecksumCommand())
	rootCmd.AddCommand(DriversCommand())

	return rootCmd
}

// applyFlagOverrides lets explicitly set flags win over the environment
func applyFlagOverrides(cmd *cobra.Command, cfg *filelike.Config, opts *rootOpts) {
	flags := cmd.Flags()
	if flags.Changed("driver") {
		cfg.Driver = opts.driver
	}
	if flags.Changed("base-path") {
		cfg.LocalBasePath = opts.basePath
	}
	if flags.Changed("block-size") {
		cfg.BlockSize = opts.blockSize
	}
	if flags.Changed("high-water-mark") {
		cfg.HighWaterMark = opts.highWaterMark
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = opts.logLevel
	}
}

// GetAppConfig returns the config loaded by the root command
func GetAppConfig(cmd *cobra.Command) *filelike.Config {
	if v := cmd.Context().Value(appCfgKey); v != nil {
		if cfg, ok := v.(*filelike.Config); ok {
			return cfg
		}
	}
	return nil
}

// newCopier builds a validated Copier for a command
func newCopier(cmd *cobra.Command, extra ...filelike.Option) (*filelike.Copier, *filelike.Config, error) {
	cfg := GetAppConfig(cmd)
	if cfg == nil {
		return nil, nil, fmt.Errorf("config not loaded")
	}
	if _, err := filelike.New(cfg); err != nil {
		return nil, nil, err
	}
	return filelike.NewCopier(append(cfg.CopierOptions(), extra...)...), cfg, nil
}

func DriversCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "drivers",
		Short: "List registered drivers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range filelike.Drivers() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
