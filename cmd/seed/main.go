package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"election-dashboard-go/internal/db"
	"election-dashboard-go/internal/seed"
	"election-dashboard-go/pkg/config"
)

func main() {
	var envFile string
	var schemaOnly bool

	rootCmd := &cobra.Command{
		Use:   "seed",
		Short: "Seed the election dashboard store",
		Long: `Creates the dashboard tables and loads the fixed catalogs:
14 parties and one location per party per governorate, all counters zero.

The run is idempotent - parties are keyed by abbreviation and locations by
(party, region), so re-running resets counters without duplicating rows.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return fmt.Errorf("load env file %s: %w", envFile, err)
				}
			}
			cfg := config.LoadConfig()

			conn, err := sqlx.Connect("postgres", cfg.DatabaseURL)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer conn.Close()

			if err := db.CreateSchema(conn); err != nil {
				return err
			}
			if schemaOnly {
				log.Println("Schema created, skipping seed data")
				return nil
			}

			if err := seed.Run(conn); err != nil {
				return err
			}

			log.Println("Seeding complete")
			return nil
		},
	}

	rootCmd.Flags().StringVar(&envFile, "env-file", "", "path to an alternate .env file")
	rootCmd.Flags().BoolVar(&schemaOnly, "schema-only", false, "create tables and stop")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
