package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload" // Autoload .env file.
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/Keerthid-10/taylor/internal/collection"
	"github.com/Keerthid-10/taylor/internal/config"
	"github.com/Keerthid-10/taylor/internal/db"
	"github.com/Keerthid-10/taylor/internal/logger"
)

// collectiond serves the generic collection API the storefront persists
// through: schemaless CRUD over named record sets, backed by memory or
// postgres depending on config.
func main() {
	if err := start(); err != nil {
		panic(err)
	}
}

func start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	store, err := openStore(conf)
	if err != nil {
		return fmt.Errorf("failed to initialize collection store -> %w", err)
	}

	s := collection.NewServer(conf.Gin.Mode, store)

	addr := ":" + conf.Collection.Port
	zap.L().Info(fmt.Sprintf("starting collection server at %v", addr),
		zap.String("driver", conf.Collection.Driver))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}

func openStore(conf *config.AppConfig) (collection.Store, error) {
	if conf.Collection.Driver != "postgres" {
		return collection.NewMemoryStore(), nil
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	var err error
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database -> %w", err)
	}

	return collection.NewGormStore(postgresDB)
}
