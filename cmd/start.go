package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"content-validator/core/loader"
	"content-validator/core/logger"
	"content-validator/core/middleware/auth"
	"content-validator/core/middleware/rayid"
	"content-validator/core/remote"
	"content-validator/core/settings"
	"content-validator/core/storage"
	"content-validator/feature/content"
	"content-validator/feature/registry"
	"content-validator/feature/report"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "content-validator/docs/swagger"
)

// @title Content Validator API
// @version 1.0
// @description Serves local content to validating sites and runs validations against a destination site.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey PressSyncKey
// @in header
// @name X-Press-Sync-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the validation API server",
	Long: `Starts the HTTP server. It serves this site's content under
/wp-json/press-sync/v1 so other instances can validate against it, and runs
validations against the configured destination under /report.`,
	FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := loadRuntime(cmd)
		if err != nil {
			return err
		}
		logg := rt.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// Local content is optional; without it only reports are served.
		var source content.Source
		if src, closeSource, err := rt.openSource(); err != nil {
			logg.Warn("Local content unavailable", zap.Error(err))
		} else {
			defer closeSource()
			source = src
			logg.Info("Local content ready")
		}

		var client remote.Client
		if c, err := rt.remoteClient(); err != nil {
			logg.Warn("Destination not configured, reports disabled", zap.Error(err))
		} else {
			client = c
		}

		var archiver *report.Archiver
		if store, err := storage.NewClient(rt.cfg.Storage); err != nil {
			logg.Warn("Storage unavailable, archiving disabled", zap.Error(err))
		} else {
			archiver = report.NewArchiver(store, rt.cfg.Storage)
		}

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           rt.cfg.Server.ReadTimeout(),
		})

		mgr := loader.NewManager(logg)
		mgr.Register(content.NewFeature(source, logg))
		mgr.Register(report.NewFeature(report.NewService(registry.Deps{
			Source:  source,
			Remote:  client,
			Options: rt.options(),
			Logger:  logg,
			Timeout: rt.cfg.Server.ReportTimeout(),
		}, archiver, rt.cfg.Server.ReportCacheTTL(), logg)))

		// RayID first so every log line can be traced.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
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

		// Swagger stays public.
		app.Get("/swagger/*", swagger.HandlerDefault)

		if !rt.cfg.Server.AuthEnabled() {
			logg.Warn("No API key configured, the API is unprotected")
		}
		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		go func() {
			logg.Info("Starting server", zap.String("port", rt.cfg.Server.Port))
			if err := app.Listen(":" + rt.cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case <-c:
		case <-cmd.Context().Done():
		}
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	startCmd.Flags().Bool("verbose", false, "Debug logging")
	settings.RegisterFlags(startCmd.Flags())
	RootCmd.AddCommand(startCmd)
}
