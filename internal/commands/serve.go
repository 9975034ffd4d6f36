package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/victorcarvalhox1-creator/analisederesultado/internal/httpapi"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/narrative"
	"github.com/victorcarvalhox1-creator/analisederesultado/internal/report"
)

func newServeCommand() *cobra.Command {
	var repoDir, addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the DRE tree and budget editing over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, repoDir, addr)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "workspace directory")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default $DRE_ADDR)")

	return cmd
}

func runServe(cmd *cobra.Command, repoDir, addr string) error {
	s, err := openSession(cmd, repoDir)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = s.env.Addr
	}

	cache, err := report.NewCache(s.builder(), s.env.CacheSize)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var analyst *narrative.Analyst
	provider, err := narrative.NewGeminiProvider(ctx, s.env.GeminiAPIKey)
	switch {
	case errors.Is(err, narrative.ErrNoAPIKey):
		s.logger.Warn("GEMINI_API_KEY not set; analysis endpoint disabled")
	case err != nil:
		return err
	default:
		cfg := s.ws.Config().Analysis
		analyst = narrative.NewAnalyst(provider, cfg.Model, cfg.TopItems, s.logger)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           httpapi.New(s.ws, cache, analyst, s.logger).Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serving: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s.logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}
