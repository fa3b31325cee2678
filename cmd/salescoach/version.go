package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	salescoach "github.com/nsfeld/salescoach"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of salescoach",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("salescoach version %s\n", strings.TrimSpace(salescoach.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
