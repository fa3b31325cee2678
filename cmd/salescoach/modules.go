package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nsfeld/salescoach/pkg/modules"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the available training modules",
	Run: func(cmd *cobra.Command, args []string) {
		registry := modules.Builtin()
		for _, id := range registry.IDs() {
			mod, err := registry.Get(id)
			if err != nil {
				continue
			}
			stages := make([]string, 0, len(mod.Graph.Stages()))
			for _, st := range mod.Graph.Stages() {
				stages = append(stages, st.Name)
			}
			fmt.Printf("%-12s %s\n", mod.ID, mod.Title)
			fmt.Printf("             этапы: %s\n", strings.Join(stages, " → "))
			fmt.Printf("             метрики: %s\n", strings.Join(mod.Metrics, ", "))
		}
	},
}

func init() {
	rootCmd.AddCommand(modulesCmd)
}
