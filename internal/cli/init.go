package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/shopfloor/internal/config"
	"github.com/example/shopfloor/internal/db"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize the shopfloor database",
		Long: `Initialize the shopfloor database at ~/.shopfloor/shopfloor.db with the
required schema and the default department sequence.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbPath, err := db.GetDBPath()
			if err != nil {
				return fmt.Errorf("failed to get database path: %w", err)
			}

			fmt.Printf("Initializing shopfloor database at %s\n", dbPath)

			if err := db.InitSchema(); err != nil {
				return fmt.Errorf("failed to initialize schema: %w", err)
			}

			fmt.Println("✓ Database initialized successfully")

			if err := initConfig(); err != nil {
				return fmt.Errorf("failed to initialize config: %w", err)
			}

			fmt.Println("✓ Config file created at ~/.shopfloor/config.json")
			fmt.Println()
			fmt.Println("Next steps:")
			fmt.Println("  shopfloor department list")
			fmt.Println("  shopfloor product add \"My First Product\" --client Acme")

			return nil
		},
	}
}

// initConfig writes the initial config file, skipping if one exists
func initConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	if _, err := config.LoadConfig(home); err == nil {
		return nil
	}

	return config.SaveConfig(home, &config.Config{Version: "1"})
}
