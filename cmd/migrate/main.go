package main

import (
	"context" // Context for the seed transaction
	"os"      // Exit status

	"tuarica/internal/api"     // Cache key prefix
	"tuarica/internal/config"  // Custom import path (Config)
	"tuarica/internal/db"      // Custom import path (Database)
	"tuarica/internal/logging" // Logger setup
	"tuarica/internal/utils"   // Redis helpers

	"github.com/sirupsen/logrus" // Logrus for structured logging
	"github.com/spf13/cobra"     // CLI framework
	"gorm.io/gorm"               // GORM ORM library
)

var rootCmd = &cobra.Command{
	Use:           "migrate",
	Short:         "Create or update the TuArica schema",
	Long:          "Auto-migrates the categoria, subcategoria, comercio, producto and usuario tables",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, gdb, err := connect()
		if err != nil {
			return err
		}
		defer db.Close(gdb)
		return db.Migrate(gdb)
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Migrate, then insert the demonstration rows",
	Long:  "Inserts the embedded demonstration data in one transaction. Rows are not upserted, so a second run fails and changes nothing.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, gdb, err := connect()
		if err != nil {
			return err
		}
		defer db.Close(gdb)
		if err := db.Migrate(gdb); err != nil {
			return err
		}

		data, err := db.LoadSeedData()
		if err != nil {
			return err
		}
		ctx := cmd.Context()
		report, err := db.Seed(ctx, gdb, data)
		if err != nil {
			return err
		}
		logrus.WithFields(logrus.Fields{
			"categorias":    report.Categories,
			"subcategorias": report.Subcategories,
			"usuarios":      report.Users,
			"comercios":     report.Commerces,
			"productos":     report.Products,
		}).Info("Seed completed")

		purgeCache(ctx, cfg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

// connect loads the configuration and opens the database
func connect() (*config.Config, *gorm.DB, error) {
	cfg, err := config.LoadConfig() // Load configuration
	if err != nil {
		return nil, nil, err
	}
	logging.Setup(cfg.LogLevel, cfg.IsProd)
	gdb, err := db.Open(cfg.DSN())
	if err != nil {
		return nil, nil, err
	}
	return cfg, gdb, nil
}

// purgeCache drops cached API responses so fresh rows show up at once
func purgeCache(ctx context.Context, cfg *config.Config) {
	rdb, err := utils.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		logrus.WithError(err).Warn("Redis unreachable, cached responses expire on their own")
		return
	}
	if rdb == nil {
		return
	}
	defer rdb.Close()
	n, err := utils.DeleteCachePrefix(ctx, rdb, api.CachePrefix)
	if err != nil {
		logrus.WithError(err).Warn("Failed to purge cache")
		return
	}
	logrus.WithField("keys", n).Info("Cache purged")
}

// Main entry point for migration
func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logrus.Errorf("migrate failed: %v", err)
		os.Exit(1)
	}
}
