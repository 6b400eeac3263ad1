package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stdin, os.Stdout, os.Stderr))
}

// usageError marks failures caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

func usagef(format string, args ...any) error {
	return usageError{fmt.Errorf(format, args...)}
}

// Exit codes: 0 success, 1 usage, 2 processing.
func run(args []string, getenv func(string) string, stdin io.Reader, stdout, stderr io.Writer) int {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, NoColor: true}).With().Timestamp().Logger()
	root := newRootCmd(getenv)
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	fmt.Fprintf(stderr, "flowaddr: %v\n", err)
	var ue usageError
	if errors.As(err, &ue) {
		return 1
	}
	return 2
}

func newRootCmd(getenv func(string) string) *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:   "flowaddr",
		Short: "Preview the key and address verification screens of the Flow device app",
		Long: `flowaddr derives a public key, resolves the device slot state for the
requested path and walks the address verification menu exactly as the
device UI loop does, printing every screen and page.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogging(logLevel)
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "trace, debug, info, warn or error")
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	root.AddCommand(
		newShowCmd(getenv),
		newPreviewCmd(getenv),
		newSlotsCmd(),
		newVersionCmd(),
	)
	return root
}

// setupLogging only adjusts the level; run already points the logger at
// the command's stderr.
func setupLogging(level string) error {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		return usagef("invalid --log-level %q", level)
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "flowaddr %s (%s) target=%s\n", version, commit, targetName())
			return nil
		},
	}
}
