package config

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

const Schema = "club"

var enumQueries = []string{
	`CREATE TYPE club.registration_status AS ENUM ('pending', 'confirmed', 'rejected')`,
	`CREATE TYPE club.payment_provider AS ENUM ('BKash')`,
}

func DSN(host string, port string, user string, password string, dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable", host, port, user, password, dbName)
}

// OpenDB connects without touching the schema.
func OpenDB(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{
			TablePrefix:   Schema + ".",
			SingularTable: false,
		},
		Logger: logger.Default.LogMode(logger.Silent),
	})
}

// PrepareSchema creates the schema and the enum types the models depend on.
// It has to run before AutoMigrate.
func PrepareSchema(db *gorm.DB) error {
	x := db.Exec(`CREATE SCHEMA IF NOT EXISTS ` + Schema)
	if x.Error != nil {
		return x.Error
	}
	for _, query := range enumQueries {
		x := db.Exec(query)
		if x.Error != nil {
			if strings.Contains(x.Error.Error(), "already exists") {
				continue
			}
			return x.Error
		}
	}
	return nil
}

func InitDB(host string, port string, user string, password string, dbName string, models ...interface{}) (*gorm.DB, error) {
	db, err := OpenDB(DSN(host, port, user, password, dbName))
	if err != nil {
		return nil, err
	}
	if err := PrepareSchema(db); err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(models...); err != nil {
		return nil, err
	}
	return db, nil
}
