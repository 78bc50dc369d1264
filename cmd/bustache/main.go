// Command bustache is a small CLI collaborator around the bustache
// template engine: compile-check a template, render one against YAML
// data, or run a directory of mustache-spec-shaped JSON fixtures against
// the engine.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "bustache",
	Short: "compile and render bustache templates",
	Example: `  $ bustache render data.yml template.mustache
  $ cat data.yml | bustache render template.mustache
  $ bustache render --override over.yml data.yml template.mustache
  $ bustache check --dump template.mustache`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := zerolog.InfoLevel
		if verbose {
			level = zerolog.DebugLevel
		}
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
	},
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log compile/render diagnostics")
	rootCmd.AddCommand(renderCmd, checkCmd, specCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
