// Package initcmder provides the init command scaffolding a config file.
package initcmder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/config"
)

type InitCommander struct {
	dir string
}

func NewInitCmd() *cobra.Command {
	cmder := &InitCommander{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starting config.toml",
		Long:  "Writes a config.toml with default values to the target directory (default ~/.folio).",
		RunE: func(_ *cobra.Command, _ []string) error {
			return cmder.run()
		},
	}

	cmd.Flags().StringVarP(&cmder.dir, "dir", "o", "", "Directory to write config.toml into (default ~/.folio)")

	return cmd
}

func (c *InitCommander) run() error {
	dir := c.dir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolving home dir: %w", err)
		}
		dir = filepath.Join(home, ".folio")
	}

	path, err := config.Write(config.NewDefaultConfig(), dir)
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s\n", path)
	return nil
}
