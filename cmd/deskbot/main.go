package main

import (
	"os"

	"github.com/spf13/cobra"

	"deskbot/internal/interfaces/cli/bot"
	"deskbot/internal/interfaces/cli/migrate"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "deskbot",
		Short: "Deskbot - Telegram support ticket bot",
		Long:  `Deskbot runs a Telegram support bot with ticket workflows, an FAQ knowledge base and admin tooling.`,
	}

	rootCmd.AddCommand(
		bot.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
