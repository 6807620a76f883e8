package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kbukum/assemblyai-go/version"
)

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", version.Product, version.Get())
			return err
		},
	}
}
