package cli

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dailyq/internal/config"
)

// initInput allows tests to override stdin for init prompts.
var initInput io.Reader = os.Stdin

// runInit builds the handler for the init command.
func runInit(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}

		flags := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		flags.SetOutput(stderr)
		configPath := flags.String("config", "", "Path to config file (default: ./.dailyq/config.yml)")
		input := flags.String("input", config.DefaultInput, "Question document, relative to the project root")
		output := flags.String("output", config.DefaultOutput, "Generated module, relative to the project root")
		buckets := flags.Int("buckets", config.DefaultBucketCount, "Number of buckets")
		yes := flags.Bool("yes", false, "Accept flag values without prompting")
		if err := flags.Parse(args); err != nil {
			if err == flag.ErrHelp {
				printCommandUsage(cmd, stdout)
				return ExitOK
			}
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if flags.NArg() > 0 {
			fmt.Fprintf(stderr, "unexpected arguments: %s\n", strings.Join(flags.Args(), " "))
			printCommandUsage(cmd, stderr)
			return ExitUsage
		}
		if *buckets < 1 {
			fmt.Fprintf(stderr, "invalid arguments: --buckets must be at least 1, got %d\n", *buckets)
			return ExitUsage
		}

		targetPath, err := initTargetPath(*configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		configDir := filepath.Dir(targetPath)
		if info, err := os.Stat(configDir); err == nil && !info.IsDir() {
			fmt.Fprintf(stderr, "Init failed: config directory %q is not a directory\n", configDir)
			return ExitError
		}
		if info, err := os.Stat(targetPath); err == nil {
			if info.IsDir() {
				fmt.Fprintf(stderr, "Init failed: config path %q is a directory\n", targetPath)
				return ExitError
			}
			fmt.Fprintf(stderr, "Init failed: config file already exists at %q\n", targetPath)
			return ExitError
		} else if !os.IsNotExist(err) {
			fmt.Fprintf(stderr, "Init failed: stat config file: %v\n", err)
			return ExitError
		}

		answers := initAnswers{input: *input, output: *output, buckets: *buckets}
		if !*yes {
			in := initInput
			if in == nil {
				in = os.Stdin
			}
			confirmed, err := answers.prompt(bufio.NewReader(in), stdout, configDir)
			if err != nil {
				fmt.Fprintf(stderr, "Init failed: %v\n", err)
				return ExitError
			}
			if !confirmed {
				fmt.Fprintln(stderr, "Init cancelled.")
				return ExitError
			}
		}

		if err := config.Scaffold(targetPath, answers.input, answers.output, answers.buckets); err != nil {
			fmt.Fprintf(stderr, "Init failed: %v\n", err)
			return ExitError
		}
		fmt.Fprintf(stdout, "Wrote %s\n", targetPath)
		return ExitOK
	}
}

// initTargetPath picks the config file path for init.
func initTargetPath(configPath string) (string, error) {
	if value := strings.TrimSpace(configPath); value != "" {
		abs, err := filepath.Abs(value)
		if err != nil {
			return "", fmt.Errorf("resolve config path: %w", err)
		}
		return abs, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return config.ConfigPath(wd), nil
}

// initAnswers holds the scaffold values, seeded from flags.
type initAnswers struct {
	input   string
	output  string
	buckets int
}

// prompt asks for confirmation and each value, keeping defaults on empty input.
func (a *initAnswers) prompt(reader *bufio.Reader, out io.Writer, configDir string) (bool, error) {
	confirm, err := promptYesNo(reader, out, fmt.Sprintf("Initialize dailyq config in %s?", configDir), true)
	if err != nil || !confirm {
		return false, err
	}
	if a.input, err = promptString(reader, out, "Question document", a.input); err != nil {
		return false, err
	}
	if a.output, err = promptString(reader, out, "Generated module", a.output); err != nil {
		return false, err
	}
	value, err := promptString(reader, out, "Buckets", strconv.Itoa(a.buckets))
	if err != nil {
		return false, err
	}
	buckets, err := strconv.Atoi(value)
	if err != nil || buckets < 1 {
		return false, fmt.Errorf("buckets must be a positive integer, got %q", value)
	}
	a.buckets = buckets
	return true, nil
}
