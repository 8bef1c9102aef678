// Package cli implements the cipher command-line interface.
//
// The serve command runs the HTTP host; the caesar, vigenere, columnar and
// atbash commands transform text offline. All commands support --verbose
// (-v) for debug-level logging to stderr.
package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

// Execute runs the cipher CLI and returns an error if any command fails.
func Execute() error {
	return newRootCmd(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(context.Background())
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "cipher",
		Short:        "Classical ciphers: Caesar, Vigenère, columnar transposition and Atbash",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newServeCmd(),
		newListCmd(),
		newCaesarCmd(),
		newVigenereCmd(),
		newColumnarCmd(),
		newAtbashCmd(),
	)
	return root
}

// newLogger returns a logger writing to w at level, with short
// "HH:MM:SS.ms" timestamps so CLI output stays compact.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// loggerKey is the context key under which the command logger is stored.
// The unexported struct type cannot collide with keys from other packages.
type loggerKey struct{}

// withLogger attaches l to ctx; commands read it back with loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext returns the logger attached by the root command's
// PersistentPreRun, or log.Default() when a command runs without one (for
// example when invoked directly from a test).
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// inputText joins args with single spaces, or reads all of stdin when there
// are no args. A single trailing newline from stdin is dropped.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	text := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}
