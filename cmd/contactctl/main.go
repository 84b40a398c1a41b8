// contactctl is the operational CLI for the contacts service: upsert, read,
// delete and seed records against the same database the API serves.
package main

import (
	"fmt"
	"os"
	"strconv"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-contacts-app/internal/core/config"
	"go-contacts-app/internal/core/database"
	"go-contacts-app/internal/core/logger"
	"go-contacts-app/internal/domain"
	"go-contacts-app/internal/feature/contact"
	"go-contacts-app/internal/repo"
	"go-contacts-app/internal/service"
)

type cliEnv struct {
	log     *zap.Logger
	cleanup func()
	db      *gorm.DB
	svc     *service.ContactService
}

func openEnv(configPath string) (*cliEnv, error) {
	_ = godotenv.Load()
	if configPath == "" {
		configPath = os.Getenv("CONFIG_PATH")
	}
	cfg := config.Load(configPath)
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		cleanup()
		return nil, fmt.Errorf("db open: %w", err)
	}
	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&contact.ContactModel{}); err != nil {
			cleanup()
			return nil, fmt.Errorf("automigrate: %w", err)
		}
	}

	return &cliEnv{
		log:     log,
		cleanup: cleanup,
		db:      db,
		svc:     service.NewContactService(repo.NewContactRepo(db), log),
	}, nil
}

// resolve finds a contact by numeric id first, then by phone number,
// mirroring the lookup order the read/delete commands promise.
func (e *cliEnv) resolve(cmd *cobra.Command, identifier string) (*domain.Contact, error) {
	ctx := cmd.Context()
	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		c, err := e.svc.Get(ctx, uint(id))
		if err != nil {
			return nil, err
		}
		if c != nil {
			return c, nil
		}
	}
	c, err := e.svc.GetByPhone(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("contact with identifier '%s' not found", identifier)
	}
	return c, nil
}

func main() {
	var configPath string

	root := &cobra.Command{
		Use:           "contactctl",
		Short:         "Manage contacts from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (defaults to CONFIG_PATH)")

	root.AddCommand(
		newUpsertCmd(&configPath),
		newReadCmd(&configPath),
		newDeleteCmd(&configPath),
		newSeedCmd(&configPath),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
