package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/Aditi2k5/ai-job-dashboard/internal/articles"
	"github.com/Aditi2k5/ai-job-dashboard/internal/database"
	"github.com/Aditi2k5/ai-job-dashboard/internal/funding"
	"github.com/Aditi2k5/ai-job-dashboard/internal/repository"

	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the job impact table in a local development database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbConfig := database.LoadConfig()
			if err := database.Connect(dbConfig); err != nil {
				return err
			}
			defer database.Close()

			log.Printf("🔧 Migrating table %s", dbConfig.Table)
			return database.Migrate(dbConfig.Table)
		},
	}
}

func newSeedCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert sample job impact records for local development",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dbConfig := database.LoadConfig()
			if err := database.Connect(dbConfig); err != nil {
				return err
			}
			defer database.Close()

			if err := database.Migrate(dbConfig.Table); err != nil {
				return err
			}

			log.Printf("🌱 Seeding table %s", dbConfig.Table)
			inserted, err := database.Seed(database.DB, dbConfig.Table, force)
			if err != nil {
				return err
			}

			log.Printf("✅ Inserted %d sample records", inserted)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Insert samples even when the table already has rows")
	return cmd
}

func newInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <id>",
		Short: "Print the detail view of one record as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dbConfig := database.LoadConfig()
			if err := database.Connect(dbConfig); err != nil {
				return err
			}
			defer database.Close()

			repo := repository.NewJobImpactRepository(database.DB, dbConfig.Table)
			record, err := repo.GetByID(context.Background(), args[0])
			if err != nil {
				return err
			}

			article := articles.NewTransformer().Detail(*record)
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(article)
		},
	}
}

func newFundingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "funding <text>",
		Short: "Run the funding parser on free-form text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := strings.Join(args, " ")

			token, found := funding.Parse(raw)
			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "%q: no funding figure found\n", raw)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%q: %s\n", raw, token)
			return nil
		},
	}
}
