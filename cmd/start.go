package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"forum-provider/core/loader"
	"forum-provider/core/logger"
	"forum-provider/core/metrics"
	"forum-provider/core/middleware/auth"
	"forum-provider/core/middleware/rayid"
	"forum-provider/feature/maintenance"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "forum-provider/docs/swagger"
)

// @title Forum Provider API
// @version 1.0
// @description Maintenance API for the forum database provider.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the maintenance server",
	Long:  `Selects the configured provider, connects to its database and serves the maintenance API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap(false)
		if err != nil {
			return err
		}
		defer a.close()
		zap.ReplaceGlobals(a.log)

		if err := a.cfg.Server.Validate(); err != nil {
			return err
		}

		// The API still serves metadata without a database; function calls answer 503.
		if err := a.connect(); err != nil {
			a.log.Warn("Database connection failed", zap.Error(err))
		}

		if err := metrics.Register(nil); err != nil {
			return fmt.Errorf("failed to register metrics: %w", err)
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             a.cfg.Server.BodyLimit,
		})

		// RayID first so everything after it is traceable
		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(a.log, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey}))

		mgr := loader.NewManager(a.log)
		mgr.Register(maintenance.NewFeature(a.provider, a.registry, a.log))
		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		errCh := make(chan error, 1)
		go func() {
			a.log.Info("Starting server", zap.String("port", a.cfg.Server.Port))
			errCh <- app.Listen(a.cfg.Server.Addr())
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return fmt.Errorf("server failed: %w", err)
		case <-sig:
		}

		a.log.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
