// Package backend opens the storage selected in the configuration and
// exposes it through the provider interfaces of the managers.
package backend

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/u4905139763-creator/aplikacja-magazynowa/app/categories"
	"github.com/u4905139763-creator/aplikacja-magazynowa/app/products"
	"github.com/u4905139763-creator/aplikacja-magazynowa/config"
	"github.com/u4905139763-creator/aplikacja-magazynowa/database"
	"github.com/u4905139763-creator/aplikacja-magazynowa/models"
)

// Backend is the single storage handle of the process.
type Backend struct {
	Name       string
	Categories categories.CategoryProvider
	Products   products.ProductProvider
	close      func() error
}

func Open(cfg config.Config) (*Backend, error) {
	switch cfg.Backend {
	case config.BackendRemote:
		return OpenRemote(cfg.DatabaseURL, cfg.AutoMigrate)
	case config.BackendLocal:
		return OpenLocal(cfg.SQLitePath)
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// OpenRemote connects to the hosted Postgres database.
func OpenRemote(dsn string, autoMigrate bool) (*Backend, error) {
	log.Println("Connecting to remote database...")
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	return newGormBackend("remote", db, autoMigrate)
}

func newGormBackend(name string, db *gorm.DB, autoMigrate bool) (*Backend, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("error getting database instance: %w", err)
	}

	if autoMigrate {
		if err := models.AutoMigrate(db); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}
	log.Printf("Database connection successful (%s).", name)

	return &Backend{
		Name:       name,
		Categories: models.NewCategoriesRepository(db),
		Products:   models.NewProductsRepository(db),
		close:      sqlDB.Close,
	}, nil
}

// OpenLocal opens (and creates when missing) the SQLite file at path.
func OpenLocal(path string) (*Backend, error) {
	log.Printf("Opening local database %s...", path)
	db, err := database.Open(path)
	if err != nil {
		return nil, err
	}
	log.Println("Database connection successful (local).")

	return &Backend{
		Name:       "local",
		Categories: database.NewCategoriesRepository(db),
		Products:   database.NewProductsRepository(db),
		close:      db.Close,
	}, nil
}

func (b *Backend) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}
