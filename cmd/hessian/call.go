package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/wippyai/hessian/protocol"
)

var callFlags struct {
	json     string
	file     string
	method   string
	headers  []string
	version  uint8
	overload bool
}

var callCmd = &cobra.Command{
	Use:   "call",
	Short: "Encode an RPC call frame",
	Long: `Encode an RPC call frame. Arguments are a JSON array given with --json or
--file (- reads stdin). With --overload the argument tags are appended to the
method name, e.g. add with [1, 2] is sent as add_int_int.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		call, err := buildCall(cmd)
		if err != nil {
			return err
		}

		data, err := newEncoder().Encode(call)
		if err != nil {
			return err
		}
		logger.Info("encoded call",
			zap.String("method", call.Name),
			zap.Int("args", len(call.Arguments)),
			zap.Int("bytes", len(data)))
		return writeResult(cmd.OutOrStdout(), "call", data, globalFlags.Raw)
	},
}

func buildCall(cmd *cobra.Command) (*protocol.Call, error) {
	var callArgs []any
	if callFlags.json != "" || callFlags.file != "" {
		v, err := readValue(cmd.InOrStdin(), callFlags.json, callFlags.file)
		if err != nil {
			return nil, err
		}
		switch a := v.(type) {
		case nil:
		case []any:
			callArgs = a
		default:
			return nil, fmt.Errorf("arguments must be a JSON array, got %T", v)
		}
	}

	call := protocol.NewCall(callFlags.method, callArgs...)
	call.MajorVersion = callFlags.version
	call.EnableOverload = callFlags.overload
	for _, h := range callFlags.headers {
		name, v, err := parseHeader(h)
		if err != nil {
			return nil, err
		}
		call.SetHeader(name, v)
	}
	return call, nil
}

func init() {
	callCmd.Flags().StringVarP(&callFlags.method, "method", "m", "", "Method name")
	callCmd.Flags().Uint8Var(&callFlags.version, "version", protocol.DefaultVersion, "Protocol major version")
	callCmd.Flags().BoolVar(&callFlags.overload, "overload", false, "Append argument type tags to the method name")
	callCmd.Flags().StringArrayVarP(&callFlags.headers, "header", "H", nil, "Header as name=<json>, repeatable")
	callCmd.Flags().StringVar(&callFlags.json, "json", "", "Arguments as a JSON array")
	callCmd.Flags().StringVarP(&callFlags.file, "file", "f", "", "Read the argument array from a file (- for stdin)")
	_ = callCmd.MarkFlagRequired("method")
}
