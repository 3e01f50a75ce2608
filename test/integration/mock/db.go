// Package mock provides in-memory stand-ins for the API's external
// dependencies during integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/honey-ledger/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection migrated with the
// ledger schema. The connection is a process-wide singleton so every
// scenario sees the same database.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb returns the shared in-memory database, opening and migrating
// it on first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive
	// for the whole suite.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	models := []any{
		&model.BeekeeperModel{},
		&model.FactoryModel{},
		&model.SupplierModel{},
		&model.ProductModel{},
		&model.EntryModel{},
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic("failed to migrate database. err: " + err.Error())
	}

	return &Db{
		DbConn: dbConn,
		models: models,
	}
}

// Reset empties every table so scenarios start from a clean slate.
func (d *Db) Reset() error {
	for _, m := range d.models {
		session := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true})
		if err := session.Unscoped().Delete(m).Error; err != nil {
			return fmt.Errorf("failed to reset table for model %T: %w", m, err)
		}
	}
	return nil
}
