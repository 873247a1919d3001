package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	coresink "github.com/kilianp07/plugkit/core/sink"
	coresource "github.com/kilianp07/plugkit/core/source"
	corestore "github.com/kilianp07/plugkit/core/store"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered plugins per family",
	Run:   list,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func list(cmd *cobra.Command, args []string) {
	cmd.Printf("source: %s\n", strings.Join(coresource.Registry().Keys(), ", "))
	cmd.Printf("sink:   %s\n", strings.Join(coresink.Registry().Keys(), ", "))
	cmd.Printf("store:  %s\n", strings.Join(corestore.Registry().Keys(), ", "))
}
