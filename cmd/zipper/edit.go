package main

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/agentic-research/zipper"
	"github.com/agentic-research/zipper/internal/jsondoc"
)

var insertPos string

func init() {
	insertCmd.Flags().StringVar(&insertPos, "pos", "right", "where to insert: left, right, child, append")
	rootCmd.AddCommand(setCmd, insertCmd, removeCmd)
}

var setCmd = &cobra.Command{
	Use:   "set FILE STEPS JSON",
	Short: "Replace the node at a dotted index path",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editDoc(args[0], args[1], func(loc *zipper.Loc) (*zipper.Loc, error) {
			val, err := oj.ParseString(args[2])
			if err != nil {
				return nil, fmt.Errorf("value %q: %w", args[2], err)
			}
			return loc.Replace(val), nil
		})
	},
}

var insertCmd = &cobra.Command{
	Use:   "insert FILE STEPS JSON",
	Short: "Insert a node relative to a dotted index path",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editDoc(args[0], args[1], func(loc *zipper.Loc) (*zipper.Loc, error) {
			val, err := oj.ParseString(args[2])
			if err != nil {
				return nil, fmt.Errorf("value %q: %w", args[2], err)
			}
			switch insertPos {
			case "left":
				return loc.InsertLeft(val)
			case "right":
				return loc.InsertRight(val)
			case "child":
				return loc.InsertChild(val)
			case "append":
				return loc.AppendChild(val)
			}
			return nil, fmt.Errorf("unknown --pos %q", insertPos)
		})
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove FILE STEPS",
	Short: "Remove the node at a dotted index path",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return editDoc(args[0], args[1], func(loc *zipper.Loc) (*zipper.Loc, error) {
			return loc.Remove()
		})
	},
}

// editDoc loads a document, focuses the cursor, applies one edit, and
// writes the reconstructed document back.
func editDoc(file, steps string, edit func(*zipper.Loc) (*zipper.Loc, error)) error {
	fs, path, err := docFS(file)
	if err != nil {
		return err
	}
	doc, err := jsondoc.Load(fs, path)
	if err != nil {
		return err
	}
	loc, err := jsondoc.Focus(zipper.New(doc), steps)
	if err != nil {
		return err
	}
	loc, err = edit(loc)
	if err != nil {
		return err
	}
	return jsondoc.Save(fs, path, loc.Root())
}
