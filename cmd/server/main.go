// Package main provides the linkhub server and its maintenance commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"github.com/example/linkhub/internal/config"
	"github.com/example/linkhub/internal/database"
	"github.com/example/linkhub/internal/logger"
	"github.com/example/linkhub/internal/services"
	"github.com/example/linkhub/internal/store"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "linkhub",
	Short:         "Link hub landing page and admin console",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(renormalizeCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(hashPasswordCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "linkhub", version)
	},
}

// app bundles what every database-backed command needs.
type app struct {
	cfg     *config.Config
	db      *gorm.DB
	links   *store.LinkStore
	socials *store.SocialStore
	brand   *store.BrandStore
}

// bootstrap loads configuration, starts the logger and connects to the
// database. Callers must call close.
func bootstrap() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := logger.Init(cfg.AppEnv, cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	db, err := database.Connect(cfg.DatabaseURL, cfg.DBLogLevel)
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:     cfg,
		db:      db,
		links:   store.NewLinkStore(db),
		socials: store.NewSocialStore(db),
		brand:   store.NewBrandStore(db),
	}, nil
}

func (a *app) admin(notifier services.Notifier) *services.AdminService {
	return services.NewAdminService(a.links, a.socials, a.brand, notifier)
}

func (a *app) close() {
	database.Close(a.db)
	logger.Sync()
}
