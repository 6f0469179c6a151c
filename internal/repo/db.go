package repo

import (
	"RecipeBox/internal/model"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// DefaultSQLitePath: файл базы по умолчанию, если DSN не задан.
const DefaultSQLitePath = "recipebox.sqlite"

// InitDB открывает хранилище по DSN и применяет миграции.
// postgres:// , postgresql:// и DSN вида "host=..." уходят в Postgres, остальное в SQLite (modernc).
func InitDB(dsn string) (*gorm.DB, error) {
	dial := dialectorFor(dsn)
	db, err := gorm.Open(dial, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if dial.Name() == "sqlite" {
		// одно соединение: SQLite не любит параллельных писателей, а :memory: живёт в рамках соединения
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.SetMaxOpenConns(1)
		}
	}
	if err := Migrate(db); err != nil {
		_ = CloseDB(db)
		return nil, err
	}
	return db, nil
}

// Migrate создаёт/обновляет все таблицы схемы.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.Models()...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// CloseDB закрывает пул соединений.
func CloseDB(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func dialectorFor(dsn string) gorm.Dialector {
	d := strings.TrimSpace(dsn)
	if isPostgresDSN(d) {
		return postgres.Open(d)
	}
	if d == "" {
		d = DefaultSQLitePath
	}
	// SQLite без cgo: драйвер modernc регистрируется под именем "sqlite"
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: d}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") ||
		strings.HasPrefix(dsn, "postgresql://") ||
		strings.Contains(dsn, "host=")
}
