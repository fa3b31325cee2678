package main

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	salescoach "github.com/nsfeld/salescoach"
	"github.com/nsfeld/salescoach/internal/cli"
	"github.com/nsfeld/salescoach/internal/config"
	"github.com/nsfeld/salescoach/internal/logging"
	"github.com/nsfeld/salescoach/internal/tui"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Practice a training module interactively",
	Long: `Starts an interactive practice session in the terminal. Type your messages
as the manager; the client answers and the coach scores every turn.
Use --session to resume an earlier session.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		moduleID, _ := cmd.Flags().GetString("module")
		key, _ := cmd.Flags().GetString("session")
		if key == "" {
			key = uuid.NewString()
		}
		clientType, _ := cmd.Flags().GetString("client")
		scenario, _ := cmd.Flags().GetString("scenario")

		params := map[string]string{}
		if clientType != "" {
			params["client_type"] = clientType
			params["objection_type"] = clientType
		}
		if scenario != "" {
			params["scenario"] = scenario
		}

		// keep slog noise away from the dialogue
		engine, cleanup, err := cli.BuildEngine(cfg, logging.NewNop(), salescoach.Hooks{})
		if err != nil {
			return err
		}
		defer cleanup()

		runner := salescoach.NewRunner()
		runner.Input = os.Stdin
		runner.Output = os.Stdout
		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner()
			runner.Renderer = tui.NewRenderer()
		}

		fmt.Printf("Модуль: %s | Сессия: %s\n\n", moduleID, key)
		return runner.Run(context.Background(), engine, key, moduleID, params)
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringP("module", "m", "master_path", "Training module to practice")
	chatCmd.Flags().StringP("session", "s", "", "Session key (default: random, use to resume)")
	chatCmd.Flags().String("client", "", "Client or objection type for the scenario")
	chatCmd.Flags().String("scenario", "", "Scenario name for upsell/exam modules")
}
