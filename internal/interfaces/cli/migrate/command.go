package migrate

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"deskbot/internal/infrastructure/config"
	"deskbot/internal/infrastructure/database"
	"deskbot/internal/infrastructure/migration"
	"deskbot/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, production)")

	cmd.AddCommand(newUpCommand())

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply the database schema",
		RunE:  runUp,
	}
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(env)
	if err != nil {
		if errors.Is(err, config.ErrFirstRun) {
			fmt.Println("A config template was written to ./configs/config.yaml. Edit it and rerun.")
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migration.Run(database.Get()); err != nil {
		return err
	}

	fmt.Println("migrations applied")
	return nil
}
