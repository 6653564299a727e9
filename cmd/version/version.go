// Package versioncmder prints build information.
package versioncmder

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/let-the-dreamers-rise/resume-sub000/pkg/utils"
)

func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Prints the folio version, commit, and build time.",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("folio %s (%s) built %s\n", utils.Version, utils.Sha, utils.Buildtime)
		},
	}
}
