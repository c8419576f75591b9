package cmd

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-extras/cobraflags"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"glamar-shop/config"
	"glamar-shop/controllers"
	"glamar-shop/libs"
	"glamar-shop/repositories"
	"glamar-shop/routes"
	"glamar-shop/services"
)

const (
	portFlag        = "port"
	autoMigrateFlag = "auto-migrate"
)

// serveFunc runs the API with an already resolved configuration.
type serveFunc func(cmd *cobra.Command, cfg *config.Config) error

// newServeFlags returns a fresh flag map; cobraflags binds each Flag to a
// single command, so the root and serve commands cannot share one.
func newServeFlags() map[string]cobraflags.Flag {
	return map[string]cobraflags.Flag{
		portFlag: &cobraflags.StringFlag{
			Name:  portFlag,
			Value: "",
			Usage: "Port to listen on (overrides APP_PORT/PORT)",
		},
		autoMigrateFlag: &cobraflags.StringFlag{
			Name:  autoMigrateFlag,
			Value: "",
			Usage: "Apply pending migrations before serving: true or false (overrides DB_AUTO_MIGRATE)",
		},
	}
}

func newServeCommand(run serveFunc) *cobra.Command {
	flags := newServeFlags()
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE:  serveRunE(flags, run),
	}
	cobraflags.RegisterMap(serveCmd, flags)
	return serveCmd
}

func serveRunE(flags map[string]cobraflags.Flag, run serveFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg := config.AppConfig
		if err := applyServeFlags(cfg, flags); err != nil {
			return err
		}
		return run(cmd, cfg)
	}
}

func applyServeFlags(cfg *config.Config, flags map[string]cobraflags.Flag) error {
	if port := flags[portFlag].GetString(); port != "" {
		cfg.Port = port
	}
	switch value := flags[autoMigrateFlag].GetString(); value {
	case "":
	case "true":
		cfg.DBAutoMigrate = true
	case "false":
		cfg.DBAutoMigrate = false
	default:
		return errors.Errorf("invalid --%s value %q: want true or false", autoMigrateFlag, value)
	}
	return nil
}

func serve(cmd *cobra.Command, cfg *config.Config) error {
	log := logrus.StandardLogger()

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.DBAutoMigrate {
		if err := config.RunMigrations(cfg.DSN()); err != nil {
			return err
		}
	}

	db, err := config.ConnectDB(ctx, cfg)
	if err != nil {
		return err
	}
	defer config.CloseDB()

	cache := config.ConnectRedis(ctx, cfg)
	defer config.CloseRedis()

	var notifier services.ContactNotifier
	if mailer, err := libs.NewMailer(cfg); err == nil {
		notifier = mailer
	} else {
		log.WithError(err).Info("Contact notifications disabled")
	}

	router := routes.NewRouter(log, routes.Controllers{
		Auth: controllers.NewAuthController(
			services.NewAuthService(repositories.NewUserRepository(db)),
		),
		Product: controllers.NewProductController(
			services.NewProductService(repositories.NewProductRepository(db), cache, cfg.ProductCacheTTL, log),
		),
		Cart: controllers.NewCartController(
			services.NewCartService(repositories.NewCartRepository(db)),
		),
		Contact: controllers.NewContactController(
			services.NewContactService(repositories.NewContactRepository(db), notifier, log),
		),
		Health: controllers.NewHealthController(db),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithFields(logrus.Fields{"port": cfg.Port, "env": cfg.AppEnv}).Info("Server starting")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrap(err, "listen")
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
