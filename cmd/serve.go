package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jmath/jmath/internal/config"
	"github.com/jmath/jmath/internal/llm"
	"github.com/jmath/jmath/internal/server"
	"github.com/jmath/jmath/internal/store"
	"github.com/jmath/jmath/internal/tutor"
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the web UI and the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd)
	},
}

func runServe(cmd *cobra.Command) error {
	cfg, log, err := loadConfig()
	if err != nil {
		return err
	}
	if log.IsLevelEnabled(logrus.DebugLevel) {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var eventRepo store.EventRepo
	if cfg.DB != "" {
		if err := store.EnsureDir(cfg.DB); err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(cfg.DB)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()
		eventRepo = st.EventRepo()
		log.WithField("db", cfg.DB).Info("recording LLM requests")
	}

	provider, err := buildProvider(ctx, cfg, eventRepo, log)
	if err != nil {
		return err
	}

	srv := server.New(tutor.NewService(provider, log), log)
	errCh := srv.Run(cfg.Listen)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errCh
}

// buildProvider returns a nil provider when no API key is configured, so the
// server still starts and answers every capability with a 500.
func buildProvider(ctx context.Context, cfg config.Config, eventRepo store.EventRepo, log logrus.FieldLogger) (llm.Provider, error) {
	provider, err := llm.NewProvider(ctx, cfg.LLM(), eventRepo, log)
	if errors.Is(err, llm.ErrNotConfigured) {
		log.WithField("provider", cfg.Provider).Warn("LLM provider not configured, AI features will answer with an error")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"provider": cfg.Provider,
		"model":    provider.ModelID(),
	}).Info("LLM provider ready")
	return provider, nil
}
