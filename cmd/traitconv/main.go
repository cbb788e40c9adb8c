// Command traitconv converts collectible metadata between JSON and CSV.
//
// It reads one representation from standard input and writes the other to
// standard output, sorted by edition:
//
//	traitconv < metadata.json > collection.csv
//	traitconv --input CSV < collection.csv > metadata.json
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/bjaus/traitconv"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes one conversion and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	logger := newLogger(stderr)
	defer func() { _ = logger.Sync() }()

	if args == nil {
		args = []string{}
	}
	cmd := newRootCommand(logger)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		logger.Error(err.Error())
		return 1
	}
	return 0
}

func newRootCommand(logger *zap.Logger) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:           "traitconv",
		Short:         "Convert collectible metadata between JSON and CSV",
		SilenceUsage:  true,
		SilenceErrors: true, // reported through the logger, see run
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.NoArgs(cmd, args); err != nil {
				return fmt.Errorf("%w: %w", traitconv.ErrConfig, err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := bufio.NewWriter(cmd.OutOrStdout())
			from := traitconv.ParseInput(input)
			logger.Debug("converting", zap.Stringer("input", from))
			if err := traitconv.Convert(cmd.InOrStdin(), out, from, traitconv.WithLogger(logger)); err != nil {
				return err
			}
			if err := out.Flush(); err != nil {
				return fmt.Errorf("%w: %w", traitconv.ErrOutputEncode, err)
			}
			return nil
		},
	}
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", traitconv.ErrConfig, err)
	})
	cmd.Flags().StringVarP(&input, "input", "i", string(traitconv.JSON), `input format: "JSON" (output CSV) or "CSV" (output JSON)`)
	return cmd
}

// newLogger writes warnings and errors to w, one line each, without
// timestamps.
func newLogger(w io.Writer) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = ""
	cfg.EncodeLevel = zapcore.LowercaseLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.AddSync(w), zapcore.WarnLevel)
	return zap.New(core)
}
