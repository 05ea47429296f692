package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"feedboard/internal/controller"
	"feedboard/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the local web gateway",
	Long: `Runs the local gateway that exposes the screen state as JSON and
the screen actions as routes, for a UI layer to observe.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := newApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logger := app.logger
		nav := controller.NavigateFunc(func(route string) {
			logger.WithField("route", route).Debug("navigate")
		})

		login := controller.NewLogin(app.client, app.sessions, nav, logger)
		feed := controller.NewFeed(app.client, app.sessions, nav, logger, app.cfg.Messages.FeedTTL)
		admin := controller.NewAdmin(app.sessions, nav, logger)
		users := controller.NewUserManagement(app.client, logger, app.cfg.Messages.AdminTTL)

		gin.SetMode(gin.ReleaseMode)
		router := gin.New()
		router.Use(gin.Recovery())
		handler := web.NewHandler(login, feed, admin, users, app.sessions, logger)
		handler.RegisterRoutes(router)

		srv := &http.Server{
			Addr:    app.cfg.Server.Addr,
			Handler: router,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Infof("listening on %s", app.cfg.Server.Addr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				errCh <- err
			}
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}
		logger.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warnf("http shutdown: %v", err)
		}
		logger.Info("bye")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
