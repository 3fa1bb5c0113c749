package config

import (
	"fmt"
	"os"

	apperrors "attendbot/errors"
	"attendbot/utils"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func getDBConfigByEnv(env string) (string, error) {
	var prefix string
	switch env {
	case "dev":
		prefix = "DEV"
	case "qc":
		prefix = "QC"
	case "prod":
		prefix = "PROD"
	default:
		return "", apperrors.NewAppError(apperrors.ErrCodeInvalidConfig, fmt.Sprintf("Unknown environment: %s", env), nil)
	}

	user := os.Getenv(prefix + "_DB_USER")
	password := os.Getenv(prefix + "_DB_PASSWORD")
	host := os.Getenv(prefix + "_DB_HOST")
	port := os.Getenv(prefix + "_DB_PORT")
	name := os.Getenv(prefix + "_DB_NAME")
	sslmode := getEnvDefault(prefix+"_DB_SSLMODE", "require")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		host, user, password, name, port, sslmode, utils.DefaultTimezone)
	return dsn, nil
}

// ConnectDB mở kết nối postgres theo ENV
func ConnectDB(env string, level gormlogger.LogLevel) (*gorm.DB, error) {
	dsn, err := getDBConfigByEnv(env)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(level),
	})
	if err != nil {
		return nil, apperrors.NewStorageError("Fail to connect to db", err)
	}
	return db, nil
}
