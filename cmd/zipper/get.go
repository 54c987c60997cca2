package main

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentic-research/zipper/internal/jsondoc"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get FILE JSONPATH",
	Short: "Query a document with a JSONPath expression",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, path, err := docFS(args[0])
		if err != nil {
			return err
		}
		doc, err := jsondoc.Load(fs, path)
		if err != nil {
			return err
		}
		matches, err := jsondoc.Select(doc, args[1])
		if err != nil {
			return err
		}
		for _, m := range matches {
			fmt.Fprintln(cmd.OutOrStdout(), oj.JSON(m))
		}
		return nil
	},
}
