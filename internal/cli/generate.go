package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
)

// runGenerate builds the handler for the generate command.
func runGenerate(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		fs.SetOutput(stderr)
		flags := bindPipelineFlags(fs)
		if code, ok := parsePipelineArgs(cmd, flags, args, stdout, stderr); !ok {
			return code
		}

		decision, err := resolveUIMode(*flags.uiMode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		params, err := flags.params(true)
		if err != nil {
			fmt.Fprintf(stderr, "Failed to load config:\n%v\n", err)
			return ExitError
		}
		params.Logger = flags.logger(stderr)

		report, err := runPipeline(context.Background(), params)
		if err != nil {
			fmt.Fprintf(stderr, "Generate failed: %v\n", err)
			return ExitError
		}
		writeSummary(stdout, report, decision.color)
		return ExitOK
	}
}
