// Package main provides the CLI entry point for jsoncodegen, a tool that
// infers a type schema from JSON documents and emits source code (or a
// JSON Schema document) describing the shapes it found.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	_ "go.codegraph.dev/jsoncodegen/backend/jsonschema"
	_ "go.codegraph.dev/jsoncodegen/backend/rustlike"
	_ "go.codegraph.dev/jsoncodegen/backend/verbose"

	"go.codegraph.dev/jsoncodegen/internal/buildinfo"
	"go.codegraph.dev/jsoncodegen/internal/profiler"
	"go.codegraph.dev/jsoncodegen/pipeline"
	"go.codegraph.dev/jsoncodegen/progress"
	"go.codegraph.dev/jsoncodegen/xlog"
)

func main() {
	cfg := pipeline.NewConfig()
	logCfg := xlog.NewConfig()
	prof := profiler.New()

	var (
		outputPath   string
		showProgress bool
		showVersion  bool
	)

	rootCmd := &cobra.Command{
		Use:   "jsoncodegen [flags] <file.json> [file2.json ...]",
		Short: "Generate source code from the shape of JSON documents",
		Long: `jsoncodegen infers a type schema from one or more JSON documents, reduces
it to a minimal set of named types, and emits source code (or a JSON Schema
document) describing those types in the selected target.`,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String())

				return nil
			}

			if len(args) == 0 {
				return cmd.Usage()
			}

			return run(cmd, cfg, logCfg, &prof, outputPath, showProgress, args)
		},
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "-", "output file path (- for stdout)")
	rootCmd.Flags().BoolVar(&showProgress, "progress", false, "show a live progress view while generating")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "print version information and exit")

	cfg.RegisterFlags(rootCmd.Flags())
	logCfg.RegisterFlags(rootCmd.PersistentFlags())
	prof.RegisterFlags(rootCmd.Flags())

	if err := cfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := logCfg.RegisterCompletions(rootCmd); err != nil {
		fmt.Fprintf(os.Stderr, "register completions: %v\n", err)
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, cfg *pipeline.Config, logCfg *xlog.Config, prof *profiler.Profiler, outputPath string, showProgress bool, args []string) error {
	handler, err := logCfg.NewHandler(os.Stderr)
	if err != nil {
		return err
	}

	logger := slog.New(handler)

	if err := prof.Start(); err != nil {
		return err
	}

	defer func() {
		if stopErr := prof.Stop(); stopErr != nil {
			logger.Error("stopping profiler", slog.Any("error", stopErr))
		}
	}()

	var events chan pipeline.StageEvent

	if showProgress {
		events = make(chan pipeline.StageEvent, len(pipeline.Stages()))
		cfg.Events = events
	}

	cfg.Logger = logger

	gen, err := cfg.NewPipeline()
	if err != nil {
		return err
	}

	var inputs [][]byte

	for _, arg := range args {
		data, readErr := readInput(arg)
		if readErr != nil {
			return readErr
		}

		inputs = append(inputs, data)
	}

	var progressErr error

	progressDone := make(chan struct{})

	if showProgress {
		go func() {
			defer close(progressDone)

			progressErr = progress.Run(events, logger)
		}()
	}

	out, err := gen.Run(concatJSONDocuments(inputs))

	if showProgress {
		close(events)
		<-progressDone

		if progressErr != nil {
			logger.Warn("progress view exited", slog.Any("error", progressErr))
		}
	}

	if err != nil {
		return err
	}

	return writeOutput(outputPath, out, cmd.OutOrStdout())
}

// concatJSONDocuments joins multiple JSON document inputs into a single
// array document, so a multi-file invocation infers one shape across all
// of them the same way a single array-valued document would.
func concatJSONDocuments(inputs [][]byte) []byte {
	if len(inputs) == 1 {
		return inputs[0]
	}

	out := []byte{'['}

	for i, in := range inputs {
		if i > 0 {
			out = append(out, ',')
		}

		out = append(out, in...)
	}

	out = append(out, ']')

	return out
}

func readInput(arg string) ([]byte, error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("%w: stdin: %w", pipeline.ErrReadInput, err)
		}

		return data, nil
	}

	data, err := os.ReadFile(arg)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pipeline.ErrReadInput, err)
	}

	return data, nil
}

func writeOutput(path string, data []byte, stdout io.Writer) error {
	if path == "" || path == "-" {
		if _, err := stdout.Write(data); err != nil {
			return fmt.Errorf("%w: %w", pipeline.ErrWriteOutput, err)
		}

		return nil
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("%w: %w", pipeline.ErrWriteOutput, err)
	}

	return nil
}
