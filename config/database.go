package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/yoockh/facultyportal/internal/models"
)

var DB *gorm.DB

// InitDatabase opens the relational store. DB_DRIVER picks the dialect
// (postgres by default, mysql for the legacy schema host).
func InitDatabase() error {
	uri := os.Getenv("DATABASE_URI")
	if uri == "" {
		uri = os.Getenv("POSTGRES_URI")
	}
	if uri == "" {
		return errors.New("DATABASE_URI (or POSTGRES_URI) environment variable is not set")
	}

	var dialector gorm.Dialector
	switch driver := strings.ToLower(getEnv("DB_DRIVER", "postgres")); driver {
	case "postgres", "postgresql":
		dialector = postgres.Open(uri)
	case "mysql":
		dialector = mysql.Open(uri)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	// Connection Pooling settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	DB = db
	return nil
}

// Models lists every table the API owns.
func Models() []any {
	return []any{
		&models.User{},
		&models.Personal{},
		&models.Education{},
		&models.Experience{},
		&models.Publication{},
		&models.PhD{},
		&models.Course{},
		&models.UserInfo{},
		&models.Marks{},
	}
}

// Migrate runs AutoMigrate when DB_AUTO_MIGRATE is true.
func Migrate() error {
	if DB == nil {
		return errors.New("DB is nil; call InitDatabase() first")
	}
	if !getBool("DB_AUTO_MIGRATE", true) {
		return nil
	}
	return DB.AutoMigrate(Models()...)
}
