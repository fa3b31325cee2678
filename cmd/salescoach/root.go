package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "salescoach",
	Short: "salescoach is a dialogue-based sales training engine",
	Long: `salescoach runs training dialogues for sales managers: a simulated client
to talk to, a coach that scores every message and explains what to improve,
and six training modules from scripted objection handling to a final exam.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the YAML config file")
}
