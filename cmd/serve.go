package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"jacsonsite/handlers"
	"jacsonsite/seed"
)

var skipSeed bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Seeds an empty database and serves the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		st, err := openStore(ctx, appConfig.DatabaseURL)
		if err != nil {
			return fmt.Errorf("opening store: %w", err)
		}
		defer st.Close()

		authService := newAuthService(st)
		if !skipSeed {
			if err := seed.Run(ctx, st, authService); err != nil {
				return err
			}
		}

		server, err := handlers.NewServer(st, authService, appConfig)
		if err != nil {
			return err
		}

		srv := &http.Server{
			Addr:              appConfig.Addr(),
			Handler:           server.Routes(),
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Printf("Server starting on %s (%s, %s)", srv.Addr, appConfig.AppName, appConfig.Env)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Println("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().BoolVar(&skipSeed, "no-seed", false, "do not seed empty collections on start")
	rootCmd.AddCommand(serveCmd)
}
