package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/hessian/encoder"
)

// GlobalFlags are shared by every subcommand.
type GlobalFlags struct {
	LogLevel string
	LogFile  string
	MaxDepth int
	Raw      bool
}

var (
	globalFlags GlobalFlags
	logger      = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "hessian",
	Short: "Encode values and calls in the Hessian 1.0.2 wire format",
	Long: `hessian turns JSON into Hessian 1.0.2 bytes.

Plain JSON maps to null, bool, int, long, double, string, list and map.
Other wire types use single-key tagged objects:

  {"$long": 1}  {"$double": 2}  {"$date": "2024-01-02T03:04:05Z"}
  {"$binary": "base64"}  {"$bytes": "ascii"}  {"$tuple": [...]}
  {"$remote": {"type": "T", "url": "U"}}
  {"$object": {"type": "T", "fields": {...}}}`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		l, err := newLogger(globalFlags.LogLevel, globalFlags.LogFile)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l
		encoder.SetLogger(l)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&globalFlags.LogFile, "log-file", "", "Write logs to a rotating file instead of stderr")
	rootCmd.PersistentFlags().IntVar(&globalFlags.MaxDepth, "max-depth", 0, "Maximum nesting depth, 0 for unlimited")
	rootCmd.PersistentFlags().BoolVar(&globalFlags.Raw, "raw", false, "Write raw bytes instead of a hex dump")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(callCmd)
	rootCmd.AddCommand(tuiCmd)
}

func newEncoder() *encoder.Encoder {
	return encoder.NewEncoder(
		encoder.WithMaxDepth(globalFlags.MaxDepth),
		encoder.WithLogger(logger))
}
