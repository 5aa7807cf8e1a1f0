package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

// runValidate builds the handler for the validate command.
func runValidate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		flags := bindPipelineFlags(fs)
		strict := fs.Bool("strict", false, "Exit non-zero when any question is rejected")
		if code, ok := parsePipelineArgs(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		decision, err := resolveUIMode(*flags.uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		params, err := flags.params(false)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		params.Logger = flags.logger(stderr)
		params.DryRun = true

		report, err := runPipeline(context.Background(), params)
		if err != nil {
			fmt.Fprintf(stderr, "Validation failed:\n%v\n", err)
			return ExitError
		}
		writeSummary(stdout, report, decision.color)
		if *strict && report.Rejected > 0 {
			fmt.Fprintf(stderr, "Validation failed: %d question(s) rejected\n", report.Rejected)
			return ExitError
		}
		return ExitOK
	}
}
