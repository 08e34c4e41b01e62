package config

import (
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB opens the database connection. A MySQL DSN takes priority when
// DB_DSN is set; otherwise a local SQLite file is used so the app runs
// with zero configuration.
func InitDB() (*gorm.DB, error) {
	if dsn := os.Getenv("DB_DSN"); dsn != "" {
		return gorm.Open(mysql.Open(dsn), &gorm.Config{})
	}

	path := os.Getenv("DB_PATH")
	if path == "" {
		path = "qrresto.db"
	}
	return gorm.Open(sqlite.Open(path), &gorm.Config{})
}

// BaseURL is the public URL prefix baked into table QR codes.
func BaseURL() string {
	if base := os.Getenv("BASE_URL"); base != "" {
		return base
	}
	return "http://localhost:8080"
}
