// Package mock provides shared test doubles for the feature suite.
package mock

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var once sync.Once
var db *Db

// Db wraps a shared in-memory SQLite database for the feature suite. The pool
// is pinned to a single connection so every scenario and the server under test
// see the same memory store.
type Db struct {
	Conn       *gorm.DB
	models     map[string]any
	resetOrder []string
}

// NewDb opens the shared test database and migrates the given models. The
// database is a process-wide singleton; repeated calls return the same
// instance. resetOrder lists table names child-first so Reset can clear rows
// without tripping foreign keys.
func NewDb(models map[string]any, resetOrder []string) *Db {
	once.Do(func() {
		db = open(models, resetOrder)
	})
	return db
}

func open(models map[string]any, resetOrder []string) *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to open test database: " + err.Error())
	}

	d := &Db{Conn: conn, models: models, resetOrder: resetOrder}
	if err := d.migrate(); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %v", err))
	}
	return d
}

func (d *Db) migrate() error {
	list := make([]any, 0, len(d.models))
	for _, m := range d.models {
		list = append(list, m)
	}
	if err := d.Conn.AutoMigrate(list...); err != nil {
		return err
	}
	for _, m := range list {
		if !d.Conn.Migrator().HasTable(m) {
			return fmt.Errorf("table for model %T was not created", m)
		}
	}
	return nil
}

// Reset deletes every row so each scenario starts from a clean database.
func (d *Db) Reset() error {
	for _, table := range d.resetOrder {
		m, ok := d.models[table]
		if !ok {
			return fmt.Errorf("table %q is not registered", table)
		}
		if err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(m).Error; err != nil {
			return err
		}
		err := d.Conn.Exec("DELETE FROM sqlite_sequence WHERE name = ?", table).Error
		if err != nil && !strings.Contains(err.Error(), "no such table") {
			return err
		}
	}
	return nil
}

// GetModel returns the registered model for a table name.
func (d *Db) GetModel(table string) (any, bool) {
	m, ok := d.models[table]
	return m, ok
}
