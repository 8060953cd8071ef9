package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/leadstack/leadform/pkg/attribution"
)

// attributionCmd inspects the durable mark store.
var attributionCmd = &cobra.Command{
	Use:   "attribution",
	Short: "Inspect the attribution mark store",
}

var attributionListCmd = &cobra.Command{
	Use:   "list",
	Short: "List live attribution marks",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()

		marks, err := store.Snapshot(cmd.Context())
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "MARK\tVALUE")
		names := make([]string, 0, len(marks))
		for name := range marks {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(tw, "%s\t%s\n", name, marks[name])
		}
		return tw.Flush()
	},
}

var attributionClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Drop all attribution marks",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		return store.Clear(cmd.Context())
	},
}

func openStore() (*attribution.Store, error) {
	path, err := attribution.DefaultPath(viper.GetString("store.path"))
	if err != nil {
		return nil, err
	}
	return attribution.Open(path)
}

func init() {
	rootCmd.AddCommand(attributionCmd)
	attributionCmd.AddCommand(attributionListCmd)
	attributionCmd.AddCommand(attributionClearCmd)
}
