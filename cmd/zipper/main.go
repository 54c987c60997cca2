// Command zipper navigates and edits JSON documents with a tree cursor.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "zipper",
	Short:        "Navigate and edit JSON documents with a tree cursor",
	SilenceUsage: true,
}

// docFS resolves a user-supplied path against a filesystem rooted at /.
func docFS(path string) (billy.Filesystem, string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("resolve %s: %w", path, err)
	}
	return osfs.New("/"), abs, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
