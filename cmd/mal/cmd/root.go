package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-mal/internal/config"
	"github.com/cwbudde/go-mal/pkg/mal"
	"github.com/spf13/cobra"
)

var (
	rcFile  string
	dumpAST bool
	trace   bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "mal [script] [args...]",
	Short: "A tree-walking Lisp interpreter",
	Long: `mal is a small Lisp: a reader, a tree-walking evaluator with tail-call
optimization, lexical closures, and user-defined macros.

Run with no arguments to start an interactive REPL, or give it a script
file to execute; any remaining arguments are bound to *ARGV* inside the
script.`,
	Args: cobra.ArbitraryArgs,
	RunE: runMal,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&rcFile, "rc", "", "YAML config listing prelude scripts to load-file before running")
	rootCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "dump each form's parsed AST (for debugging)")
	rootCmd.Flags().BoolVar(&trace, "trace", false, "dump each form's evaluated result (for debugging)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostic output on stderr")
}

func runMal(_ *cobra.Command, args []string) error {
	interp := mal.New(os.Stdout)
	if dumpAST || trace {
		interp.SetDebug(os.Stderr, dumpAST, trace)
	}

	if rcFile != "" {
		cfg, err := config.Load(rcFile)
		if err != nil {
			return err
		}
		for _, f := range cfg.Prelude {
			if verbose {
				fmt.Fprintf(os.Stderr, "loading prelude: %s\n", f)
			}
			if err := interp.LoadPrelude(f); err != nil {
				return fmt.Errorf("loading prelude %s: %w", f, err)
			}
		}
	}

	if len(args) == 0 {
		return interp.REPL(os.Stdin)
	}
	return interp.RunFile(args[0], args[1:])
}
