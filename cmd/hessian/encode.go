package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var encodeFlags struct {
	json string
	file string
}

var encodeCmd = &cobra.Command{
	Use:   "encode",
	Short: "Encode one JSON value",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := readValue(cmd.InOrStdin(), encodeFlags.json, encodeFlags.file)
		if err != nil {
			return err
		}

		tag, data, err := newEncoder().EncodeArg(v)
		if err != nil {
			return err
		}
		logger.Info("encoded", zap.String("tag", tag), zap.Int("bytes", len(data)))
		return writeResult(cmd.OutOrStdout(), tag, data, globalFlags.Raw)
	},
}

func init() {
	encodeCmd.Flags().StringVar(&encodeFlags.json, "json", "", "Value as JSON")
	encodeCmd.Flags().StringVarP(&encodeFlags.file, "file", "f", "", "Read the JSON value from a file (- for stdin)")
}
