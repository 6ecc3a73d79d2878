package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Keerthid-10/taylor/internal/config"
)

// OpenPostgres connects using the discrete config fields.
func OpenPostgres(conf *config.PostgresConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		conf.Host, conf.User, conf.Password, conf.DB, conf.Port,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

// OpenPostgresWithURL connects using a full DATABASE_URL, which takes
// precedence in deployed environments.
func OpenPostgresWithURL(url string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(url), &gorm.Config{})
}
