package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/RumbleDiscovery/bustache"
)

var dump bool

var checkCmd = &cobra.Command{
	Use:   "check template",
	Short: "compile a template and report any syntax error",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		format, err := bustache.Compile(string(src))
		if err != nil {
			if ferr, ok := err.(*bustache.FormatError); ok {
				return fmt.Errorf("%s: %s error at byte %d: %s", args[0], ferr.Code, ferr.Position, ferr.Message)
			}
			return err
		}
		if dump {
			format.Dump(os.Stdout)
		}
		fmt.Fprintf(os.Stderr, "%s: ok\n", args[0])
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&dump, "dump", false, "print the compiled content-ref tree")
}
