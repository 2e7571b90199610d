package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "reactclient",
		Short:         "Drive the like/dislike controls of a forum page",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringP("page", "p", "", "URL of the page that carries the reaction controls")
	root.PersistentFlags().Bool("debug", false, "log every request")
	_ = root.MarkPersistentFlagRequired("page")

	root.AddCommand(newTargetsCmd(), newToggleCmd())
	return root
}
