package cli

import (
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"dailyq/internal/config"
	"dailyq/internal/logging"
	"dailyq/internal/pipeline"
)

// runPipeline is swapped out by tests.
var runPipeline = pipeline.Run

// pipelineFlags holds the options shared by generate and validate.
type pipelineFlags struct {
	fs         *flag.FlagSet
	configPath *string
	input      *string
	output     *string
	buckets    *int
	uiMode     *string
	verbose    *bool
}

func bindPipelineFlags(fs *flag.FlagSet) *pipelineFlags {
	return &pipelineFlags{
		fs:         fs,
		configPath: fs.String("config", "", "Path to config file (default: search for .dailyq/config.yml)"),
		input:      fs.String("input", "", "Question document (overrides config)"),
		output:     fs.String("output", "", "Generated module path (overrides config)"),
		buckets:    fs.Int("buckets", 0, "Number of buckets (overrides config, default 45)"),
		uiMode:     fs.String("ui", "auto", "Summary style: auto|color|plain"),
		verbose:    fs.Bool("verbose", false, "Log pipeline stages and diagnostics to stderr"),
	}
}

func (f *pipelineFlags) bucketsSet() bool {
	set := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == "buckets" {
			set = true
		}
	})
	return set
}

// checkUsage rejects flag values that can never run.
func (f *pipelineFlags) checkUsage() error {
	if f.bucketsSet() && *f.buckets < 1 {
		return fmt.Errorf("--buckets must be at least 1, got %d", *f.buckets)
	}
	return nil
}

// params merges the config file with flag overrides. The config file is
// skipped when flags name every path the command needs.
func (f *pipelineFlags) params(requireOutput bool) (pipeline.Params, error) {
	input := strings.TrimSpace(*f.input)
	output := strings.TrimSpace(*f.output)
	explicitConfig := strings.TrimSpace(*f.configPath) != ""

	var params pipeline.Params
	if explicitConfig || input == "" || (requireOutput && output == "") {
		path, err := resolveConfigPath(*f.configPath)
		if err != nil {
			return pipeline.Params{}, err
		}
		cfg, err := config.Load(path)
		if err != nil {
			return pipeline.Params{}, err
		}
		params.InputPath = cfg.Input
		params.OutputPath = cfg.Output
		params.BucketCount = cfg.BucketCount
	}

	if input != "" {
		abs, err := filepath.Abs(input)
		if err != nil {
			return pipeline.Params{}, fmt.Errorf("resolve input path: %w", err)
		}
		params.InputPath = abs
	}
	if output != "" {
		abs, err := filepath.Abs(output)
		if err != nil {
			return pipeline.Params{}, fmt.Errorf("resolve output path: %w", err)
		}
		params.OutputPath = abs
	}
	if f.bucketsSet() {
		params.BucketCount = *f.buckets
	}
	if params.BucketCount == 0 {
		params.BucketCount = config.DefaultBucketCount
	}
	return params, nil
}

// logger builds the stderr logger, raising the level with --verbose.
func (f *pipelineFlags) logger(stderr io.Writer) *logging.Logger {
	opts := logging.FromEnv()
	opts.Writer = stderr
	opts.Component = "pipeline"
	if *f.verbose {
		opts.Level = "debug"
	}
	logger := logging.New(opts)
	return &logger
}

// parsePipelineArgs parses args and reports the exit code to use when
// parsing fails.
func parsePipelineArgs(cmd *Command, flags *pipelineFlags, args []string, stdout, stderr io.Writer) (int, bool) {
	if err := flags.fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			printCommandUsage(cmd, stdout)
			return ExitOK, false
		}
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if flags.fs.NArg() > 0 {
		fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.fs.Args(), " "))
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	if err := flags.checkUsage(); err != nil {
		fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
		printCommandUsage(cmd, stderr)
		return ExitUsage, false
	}
	return ExitOK, true
}
