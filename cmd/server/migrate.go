package main

import (
	"fmt"

	"github.com/ruralpay/hacklab/internal/config"
	"github.com/ruralpay/hacklab/internal/database"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create and seed the data store, then exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		db, err := database.InitDB(cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := database.Bootstrap(cmd.Context(), db); err != nil {
			return err
		}
		fmt.Printf("%s store ready\n", cfg.Database.Driver)
		return nil
	},
}
