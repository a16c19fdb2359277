package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gopak/minigrep/internal/assets"
	"github.com/gopak/minigrep/internal/config"
	"github.com/gopak/minigrep/internal/executor"
	"github.com/gopak/minigrep/internal/logging"
	"github.com/gopak/minigrep/internal/ui/console"
	"github.com/spf13/cobra"
)

// stageError tags a failure with the phase it happened in.
type stageError struct {
	stage string
	err   error
}

func (e *stageError) Error() string { return "Problem " + e.stage + ": " + e.err.Error() }
func (e *stageError) Unwrap() error { return e.err }

func parseErr(err error) error { return &stageError{stage: "parsing arguments", err: err} }
func runErr(err error) error   { return &stageError{stage: "running command", err: err} }

// Environment switches; presence alone enables them.
const (
	verboseEnv      = "MINIGREP_VERBOSE"
	listCommandsEnv = "MINIGREP_LIST_COMMANDS"
)

func envSet(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}

// NewRootCmd builds the minigrep command. Matches go to the command's output
// writer. Arguments are consumed positionally; nothing is parsed as a flag.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minigrep <query> <target>",
		Short: "Print the lines of a file, or of an allow-listed command's output, that contain a query",
		Long: "Print the lines of <target> that contain <query>.\n\n" +
			"When <query> names an allow-listed command, the command is run instead\n" +
			"and its output lines containing <target> are printed.\n\n" +
			"Set " + config.IgnoreCaseEnv + " (any value) for case-insensitive file search,\n" +
			verboseEnv + " to trace dispatch on standard error, and\n" +
			listCommandsEnv + " to print the allow-listed commands.",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Init()
			logging.SetVerbose(envSet(verboseEnv))
			cmds, err := config.LoadCommands(assets.DefaultCommands())
			if err != nil {
				return fmt.Errorf("commands: %w", err)
			}
			logging.Debug("allow-list: " + strings.Join(cmds.Names(), ", "))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if envSet(listCommandsEnv) {
				return console.PrintCommands(cmd.OutOrStdout(), config.Get())
			}
			cfg, err := config.Build(append([]string{cmd.Root().Name()}, args...))
			if err != nil {
				return parseErr(err)
			}
			if err := executor.New(cfg, config.Get(), cmd.OutOrStdout()).Run(); err != nil {
				return runErr(err)
			}
			return nil
		},
	}
	return cmd
}

// Execute runs the root command and prints a single diagnostic line on failure.
func Execute() error {
	return run(NewRootCmd(), os.Args[1:])
}

func run(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return nil
	}
	var se *stageError
	if errors.As(err, &se) {
		logging.Error(se.Error())
	} else {
		logging.Error(parseErr(err).Error())
	}
	return err
}
