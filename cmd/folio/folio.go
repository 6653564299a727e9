// Package foliocmder
package foliocmder

import (
	"github.com/spf13/cobra"

	askcmder "github.com/let-the-dreamers-rise/resume-sub000/cmd/folio/ask"
	initcmder "github.com/let-the-dreamers-rise/resume-sub000/cmd/folio/init"
	servecmder "github.com/let-the-dreamers-rise/resume-sub000/cmd/folio/serve"
	versioncmder "github.com/let-the-dreamers-rise/resume-sub000/cmd/version"
)

const folioLongDesc string = `Folio is the knowledge service behind the portfolio site's assistant.

Run services using:
  folio serve    Run the search and chat API server
  folio ask      Ask the assistant a question from the terminal
  folio init     Write a starting config.toml`

const folioShortDesc string = "Folio - portfolio knowledge service"

func NewFolioCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "folio",
		Short: folioShortDesc,
		Long:  folioLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().StringP("config", "c", "", "Directory holding config.toml")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(askcmder.NewAskCmd())
	cmd.AddCommand(initcmder.NewInitCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
