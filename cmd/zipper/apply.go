package main

import (
	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"

	"github.com/agentic-research/zipper/internal/editscript"
	"github.com/agentic-research/zipper/internal/jsondoc"
)

func init() {
	rootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply FILE SCRIPT",
	Short: "Apply an HCL edit script to a document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		fs, docPath, err := docFS(args[0])
		if err != nil {
			return err
		}
		_, scriptPath, err := docFS(args[1])
		if err != nil {
			return err
		}

		src, err := util.ReadFile(fs, scriptPath)
		if err != nil {
			return err
		}
		script, err := editscript.Parse(src, args[1])
		if err != nil {
			return err
		}

		doc, err := jsondoc.Load(fs, docPath)
		if err != nil {
			return err
		}
		out, err := script.Apply(doc)
		if err != nil {
			return err
		}
		return jsondoc.Save(fs, docPath, out)
	},
}
