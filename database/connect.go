package database

import (
	"fmt"
	"hotel_manager/config"
	"hotel_manager/model"
	"log"
	"strconv"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Open abre la base de datos; driver es "postgres" o "sqlite"
func Open(driver, dsn string) (*gorm.DB, error) {
	switch driver {
	case "sqlite":
		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		// SQLite serializa las escrituras; con :memory: cada conexión sería otra base
		sqlDB.SetMaxOpenConns(1)
		return db, nil
	case "postgres", "":
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	default:
		return nil, fmt.Errorf("driver de base de datos desconocido: %s", driver)
	}
}

func dsnFromConfig(driver string) (string, error) {
	if driver == "sqlite" {
		return config.ConfigOr("DB_NAME", "hotel.db"), nil
	}
	p := config.ConfigOr("DB_PORT", "5432")
	port, err := strconv.ParseUint(p, 10, 32)
	if err != nil {
		return "", fmt.Errorf("failed to parse database port: %w", err)
	}
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", config.Config("DB_HOST"), port, config.Config("DB_USER"), config.Config("DB_PASSWORD"), config.Config("DB_NAME")), nil
}

func ConnectDB() {
	driver := config.ConfigOr("DB_DRIVER", "postgres")
	dsn, err := dsnFromConfig(driver)
	if err != nil {
		panic(err)
	}

	DB, err = Open(driver, dsn)
	if err != nil {
		panic("failed to connect database")
	}

	log.Println("Connection Opened to Database")
	if err := Migrate(DB); err != nil {
		panic(fmt.Sprintf("failed to migrate database: %v", err))
	}
	log.Println("Database Migrated")

	SeedData(DB)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Account{},
		&model.Session{},
		&model.Hotel{},
		&model.Room{},
		&model.Guest{},
		&model.Service{},
		&model.HotelService{},
	)
}
