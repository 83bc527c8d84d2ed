package cmd

import (
	"fmt"

	"github.com/cwbudde/go-mal/internal/builtins"
	"github.com/spf13/cobra"
)

var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "List every registered primitive function",
	Long:  `Print each primitive this interpreter's top-level environment is seeded with, alphabetically, with its category and a one-line description.`,
	Run: func(cmd *cobra.Command, args []string) {
		registry := builtins.New()
		for _, fn := range registry.AllFunctions() {
			fmt.Printf("%-14s %-14s %s\n", fn.Name, fn.Category, fn.Description)
		}
		fmt.Printf("\n%d primitives total\n", registry.Count())
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
