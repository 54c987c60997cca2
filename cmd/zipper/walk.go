package main

import (
	"strings"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentic-research/zipper"
	"github.com/agentic-research/zipper/internal/jsondoc"
)

func init() {
	rootCmd.AddCommand(walkCmd)
}

var walkCmd = &cobra.Command{
	Use:   "walk FILE",
	Short: "Print every node of a document in pre-order",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, path, err := docFS(args[0])
		if err != nil {
			return err
		}
		doc, err := jsondoc.Load(fs, path)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for loc := zipper.New(doc); !loc.IsEnd(); loc = loc.Next() {
			depth := len(loc.Path())
			if _, err := out.Write([]byte(strings.Repeat("  ", depth) + oj.JSON(loc.Node()) + "\n")); err != nil {
				return err
			}
		}
		return nil
	},
}
