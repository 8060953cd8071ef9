package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/leadstack/leadform/internal/utils"
)

var cfgFile string

const (
	LOGO = `	 _                _  __
	| | ___  __ _  __| |/ _| ___  _ __ _ __ ___
	| |/ _ \/ _' |/ _' | |_ / _ \| '__| '_ ' _ \
	| |  __/ (_| | (_| |  _| (_) | |  | | | | | |
	|_|\___|\__,_|\__,_|_|  \___/|_|  |_| |_| |_|

`
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "leadform",
	Short: "Lead-capture pipeline for static marketing pages.",
	Long: LOGO + `leadform validates, enriches and relays lead submissions from static
marketing pages: per-locale field validation, phone/country resolution,
UTM attribution with tiered expiry, and a two-branch CRM completion flow.`,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.leadform.yaml)")

	// Global flags
	rootCmd.PersistentFlags().StringP("loglevel", "l", "info", "Set log level. Available: debug, info, warn, error, fatal")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".leadform")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create it with defaults.
			home, _ := homedir.Dir()
			configPath := home + "/.leadform.yaml"
			if err := viper.SafeWriteConfigAs(configPath); err != nil {
				fmt.Printf("Error creating config file: %s", err)
			}
		}
	}

	// Set default empty values for all keys
	viper.SetDefault("relay.url", "")
	viper.SetDefault("relay.security", "")
	viper.SetDefault("relay.post", "")
	viper.SetDefault("relay.project", "")
	viper.SetDefault("relay.category", "Course")
	viper.SetDefault("relay.lead_format", "")
	viper.SetDefault("relay.checkemail", true)
	viper.SetDefault("locale.default", "uk")
	viper.SetDefault("geo.trace_url", "")
	viper.SetDefault("geo.lookup_url", "")
	viper.SetDefault("geo.default_country", "ua")
	viper.SetDefault("store.path", "")
	viper.SetDefault("widget.hash", "")
	viper.SetDefault("widget.token", "")
	viper.SetDefault("server.listen", ":8080")
	viper.SetDefault("server.username", "")
	viper.SetDefault("server.password", "")

	// Init log library
	levelString, _ := rootCmd.PersistentFlags().GetString("loglevel")
	utils.SetLogLevel(levelString)
}
