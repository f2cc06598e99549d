package cmd

import (
	"os"

	"github.com/amoghbhardwaj/logoscript/internal/repl"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "logoscript [file]",
	Short: "logoscript is a small whitespace-delimited command-language interpreter",
	Long: `logoscript interprets a small Logo-family command language: numbers,
words, and lists, procedures called without parentheses, and "to ... end"
definitions.

Invoked with no argument it starts an interactive session. Invoked with a
file path it runs that file as the line source. Typing quit, exit, or bye
ends an interactive session.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogoscript,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runLogoscript(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()

		session := repl.New(f, os.Stdout, false)
		os.Exit(session.Run())
	}

	session := repl.New(os.Stdin, os.Stdout, true)
	os.Exit(session.Run())
	return nil
}
