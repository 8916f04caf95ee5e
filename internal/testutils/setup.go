package testutils

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/Paul-Briman/lumina-photography/internal/config"
	"github.com/Paul-Briman/lumina-photography/internal/db"
	"github.com/Paul-Briman/lumina-photography/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

var (
	testDBSeq  int64
	configOnce sync.Once
)

// SetupConfig loads configuration defaults once per test binary. No config
// file is present in tests, so every value is a default (including the
// insecure development JWT secret).
func SetupConfig(t *testing.T) {
	t.Helper()
	configOnce.Do(func() {
		config.InitConfig("")
	})
}

// SetupDB initializes a unique in-memory SQLite database for testing, sets
// the global db.DB, and performs auto-migration.
func SetupDB(t *testing.T) *gorm.DB {
	t.Helper()
	SetupConfig(t)

	seq := atomic.AddInt64(&testDBSeq, 1)
	dsn := fmt.Sprintf("file:lumina_%d?mode=memory&cache=shared", seq)
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("get sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	prevDB := db.DB
	t.Cleanup(func() {
		if prevDB != nil && db.DB == gdb {
			db.DB = prevDB
		}
		_ = sqlDB.Close()
	})

	if err := gdb.AutoMigrate(
		&model.Photographer{},
		&model.Gallery{},
		&model.Photo{},
		&model.Invoice{},
	); err != nil {
		t.Fatalf("automigrate: %v", err)
	}

	db.DB = gdb
	return gdb
}
