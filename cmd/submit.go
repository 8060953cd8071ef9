package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leadstack/leadform/internal/utils"
	"github.com/leadstack/leadform/pkg/attribution"
	"github.com/leadstack/leadform/pkg/emailcheck"
	"github.com/leadstack/leadform/pkg/form"
	"github.com/leadstack/leadform/pkg/geo"
	"github.com/leadstack/leadform/pkg/payload"
	"github.com/leadstack/leadform/pkg/relay"
	"github.com/leadstack/leadform/pkg/session"
)

// submitCmd runs one capture end to end from the command line. Useful for
// verifying relay wiring before a page goes live.
var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Run a single lead submission through the pipeline",
	RunE: func(cmd *cobra.Command, args []string) error {
		pageURL, _ := cmd.Flags().GetString("page-url")
		name, _ := cmd.Flags().GetString("name")
		phone, _ := cmd.Flags().GetString("phone")
		email, _ := cmd.Flags().GetString("email")
		productName, _ := cmd.Flags().GetString("product-name")
		productID, _ := cmd.Flags().GetString("product-id")

		sess, err := session.FromPageURL(pageURL)
		if err != nil {
			return err
		}
		if sess.LocaleCode == "" {
			sess.LocaleCode = viper.GetString("locale.default")
		}
		sess.Security = viper.GetString("relay.security")
		sess.Post = viper.GetString("relay.post")
		sess.LeadFormat = viper.GetString("relay.lead_format")
		sess.UserAgent = "leadform-cli"
		if sess.WidgetToken == "" {
			sess.WidgetToken = viper.GetString("widget.token")
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

		tracker := attribution.NewTracker(store)
		if err := tracker.Persist(cmd.Context(), sess.Query()); err != nil {
			return err
		}

		relayURL := viper.GetString("relay.url")
		var checker *emailcheck.Checker
		if viper.GetBool("relay.checkemail") {
			checker = emailcheck.New(relayURL, viper.GetString("relay.security"))
		}

		handler, err := form.NewHandler(form.Config{
			Descriptor: form.Descriptor{FormID: "cli", ProductName: productName, ProductID: productID},
			Session:    sess,
			Geo: geo.NewResolver(
				viper.GetString("geo.trace_url"),
				viper.GetString("geo.lookup_url"),
				viper.GetString("geo.default_country"),
			),
			Tracker: tracker,
			Relay:   relay.New(relayURL),
			Builder: &payload.Builder{
				Project:  viper.GetString("relay.project"),
				Category: viper.GetString("relay.category"),
			},
			EmailCheck: checker,
			WidgetHash: viper.GetString("widget.hash"),
			PageMarkup: defaultPageMarkup,
			Track: func(ev form.TrackEvent) {
				utils.Log.Infof("lead event: conversion_id=%s", ev.ConversionID)
			},
		})
		if err != nil {
			return err
		}

		view := form.NewOutcomeView()
		input := form.Input{Name: name, Phone: phone, Email: email}

		if err := handler.Submit(cmd.Context(), input, view); err != nil {
			return err
		}

		fmt.Printf("state: %s\nstep: %d\n", handler.State(), view.Step)
		if view.SuccessNotice != "" {
			fmt.Println(view.SuccessNotice)
		}
		if view.ErrorNotice != "" {
			fmt.Println(view.ErrorNotice)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(submitCmd)
	submitCmd.Flags().String("page-url", "", "Page URL the submission originates from")
	submitCmd.Flags().String("name", "", "Lead name")
	submitCmd.Flags().String("phone", "", "Lead phone number")
	submitCmd.Flags().String("email", "", "Lead email")
	submitCmd.Flags().String("product-name", "", "Product name")
	submitCmd.Flags().String("product-id", "", "Product id")
	submitCmd.MarkFlagRequired("page-url")
	submitCmd.MarkFlagRequired("name")
	submitCmd.MarkFlagRequired("phone")
	submitCmd.MarkFlagRequired("email")
}
