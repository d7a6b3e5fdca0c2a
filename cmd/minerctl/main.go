// Command minerctl inspects and manages a MinerTapper deployment: it prints
// the catalog, shows or resets the saved economy state and runs offline
// simulations against the real economy rules.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// rootOptions are shared by every subcommand
type rootOptions struct {
	catalogPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "minerctl",
		Short: "MinerTapper operator tool",
		Long: `Inspect the unit catalog, read or reset the saved economy state and
simulate accrual offline. Store settings come from the same environment
variables (and .env file) as the server.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "catalog file (.yaml/.toml); defaults to CATALOG_PATH or the built-in catalog")

	rootCmd.AddCommand(
		newCatalogCmd(opts),
		newStateCmd(opts),
		newResetCmd(opts),
		newSimulateCmd(opts),
	)
	return rootCmd
}
