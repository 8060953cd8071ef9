package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leadstack/leadform/internal/server"
	"github.com/leadstack/leadform/pkg/attribution"
	"github.com/leadstack/leadform/pkg/emailcheck"
	"github.com/leadstack/leadform/pkg/geo"
	"github.com/leadstack/leadform/pkg/payload"
	"github.com/leadstack/leadform/pkg/relay"
)

const defaultPageMarkup = `<html><head></head><body></body></html>`

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the capture server",
	RunE: func(cmd *cobra.Command, args []string) error {
		listenAddr, _ := cmd.Flags().GetString("listen")
		if listenAddr == "" {
			listenAddr = viper.GetString("server.listen")
		}

		storePath, err := attribution.DefaultPath(viper.GetString("store.path"))
		if err != nil {
			return err
		}
		store, err := attribution.Open(storePath)
		if err != nil {
			return err
		}
		defer store.Close()

		markup := defaultPageMarkup
		if pagePath, _ := cmd.Flags().GetString("page"); pagePath != "" {
			raw, err := os.ReadFile(pagePath)
			if err != nil {
				return err
			}
			markup = string(raw)
		}

		relayURL := viper.GetString("relay.url")
		var checker *emailcheck.Checker
		if viper.GetBool("relay.checkemail") {
			checker = emailcheck.New(relayURL, viper.GetString("relay.security"))
		}

		return server.New(server.Config{
			Store: store,
			Geo: geo.NewResolver(
				viper.GetString("geo.trace_url"),
				viper.GetString("geo.lookup_url"),
				viper.GetString("geo.default_country"),
			),
			Relay:      relay.New(relayURL),
			EmailCheck: checker,
			Builder: &payload.Builder{
				Project:  viper.GetString("relay.project"),
				Category: viper.GetString("relay.category"),
			},
			Security:    viper.GetString("relay.security"),
			Post:        viper.GetString("relay.post"),
			LeadFormat:  viper.GetString("relay.lead_format"),
			WidgetHash:  viper.GetString("widget.hash"),
			WidgetToken: viper.GetString("widget.token"),
			PageMarkup:  markup,
			Username:    viper.GetString("server.username"),
			Password:    viper.GetString("server.password"),
		}).Start(listenAddr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("listen", "", "HTTP listen address (default from config, :8080)")
	serveCmd.Flags().String("page", "", "Path to the host page markup used for widget injection")
}
