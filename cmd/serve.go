package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/planner"
	"github.com/abhisek/coursegen/internal/server"
	"github.com/abhisek/coursegen/internal/store"
	"github.com/abhisek/coursegen/internal/tutor"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, _ := cmd.Flags().GetString("addr")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()
		provider, err := llm.NewProviderFromEnv(ctx, s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		plannerSvc := planner.NewService(provider, s.CourseRepo(), planner.DefaultConfig())
		tutorSvc := tutor.NewService(provider, s.CourseRepo(), s.LessonRepo(), tutor.DefaultConfig())

		srv := server.New(addr, plannerSvc, tutorSvc, s.CourseRepo(), s.LessonRepo())

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.Start()
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-sigCh:
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8787", "Listen address")
}
