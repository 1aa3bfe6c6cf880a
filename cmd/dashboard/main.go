package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Aditi2k5/ai-job-dashboard/internal/articles"
	"github.com/Aditi2k5/ai-job-dashboard/internal/database"
	"github.com/Aditi2k5/ai-job-dashboard/internal/repository"
	"github.com/Aditi2k5/ai-job-dashboard/internal/router"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

func main() {
	root := &cobra.Command{
		Use:   "dashboard",
		Short: "Read-only API for the AI job impact dashboard",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load environment variables
			if err := godotenv.Load(); err != nil {
				log.Println("No .env file found, using environment variables")
			}
		},
		SilenceUsage: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSeedCommand(),
		newInspectCommand(),
		newFundingCommand(),
	)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
}

func runServe() error {
	dbConfig := database.LoadConfig()
	if err := database.Connect(dbConfig); err != nil {
		return err
	}
	defer database.Close()

	config := router.LoadConfig()
	repo := repository.NewJobImpactRepository(database.DB, dbConfig.Table)

	engine := router.New(config, router.Dependencies{
		Repository:  repo,
		Transformer: articles.NewTransformer(),
		Ping: func(ctx context.Context) error {
			return database.Ping(ctx, database.DB)
		},
	})

	server := &http.Server{
		Addr:              config.Addr(),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Setup graceful shutdown
	done := setupGracefulShutdown(server)

	log.Printf("🚀 Server starting on port %s (table %s)", config.Port, dbConfig.Table)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	<-done
	log.Println("Shutdown complete")
	return nil
}

// setupGracefulShutdown stops the server on SIGINT or SIGTERM. The returned
// channel is closed once in-flight requests have drained.
func setupGracefulShutdown(server *http.Server) <-chan struct{} {
	done := make(chan struct{})

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		defer close(done)
		<-c
		log.Println("Received shutdown signal, gracefully shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	return done
}
