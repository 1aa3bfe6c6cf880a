package database

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"strconv"
	"strings"

	"github.com/Aditi2k5/ai-job-dashboard/internal/models"

	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

// DB holds the database connection
var DB *gorm.DB

// Config holds database configuration
type Config struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	Table        string
	SSLMode      string
	MaxOpenConns int
	LogLevel     string
}

// LoadConfig loads database configuration from environment variables
func LoadConfig() *Config {
	driver := strings.ToLower(getEnv("DB_DRIVER", DriverMySQL))

	defaultPort := "3306"
	if driver == DriverPostgres {
		defaultPort = "5432"
	}

	return &Config{
		Driver:       driver,
		Host:         getEnv("MYSQL_HOST", "localhost"),
		Port:         getEnv("MYSQL_PORT", getEnv("DB_PORT", defaultPort)),
		User:         getEnv("MYSQL_USER", "root"),
		Password:     getEnv("MYSQL_PASSWORD", ""),
		DBName:       getEnv("MYSQL_DATABASE", "ai_jobs"),
		Table:        getEnv("MYSQL_TABLE", models.JobImpactRecordTable),
		SSLMode:      getEnv("DB_SSLMODE", "disable"),
		MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 10),
		LogLevel:     getEnv("DB_LOG_LEVEL", "warn"),
	}
}

// DSN builds the data source name for the configured driver
func (c *Config) DSN() (string, error) {
	switch c.Driver {
	case DriverMySQL:
		cfg := mysqldriver.NewConfig()
		cfg.User = c.User
		cfg.Passwd = c.Password
		cfg.Net = "tcp"
		cfg.Addr = net.JoinHostPort(c.Host, c.Port)
		cfg.DBName = c.DBName
		cfg.ParseTime = true
		cfg.Params = map[string]string{"charset": "utf8mb4"}
		return cfg.FormatDSN(), nil

	case DriverPostgres:
		// Build DSN without empty password parameter
		dsn := fmt.Sprintf(
			"host=%s port=%s user=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.DBName, c.SSLMode,
		)
		if c.Password != "" {
			dsn = fmt.Sprintf(
				"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
				c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
			)
		}
		return dsn, nil
	}

	return "", fmt.Errorf("unsupported database driver %q", c.Driver)
}

// Dialector returns the gorm dialector for the configured driver
func (c *Config) Dialector() (gorm.Dialector, error) {
	dsn, err := c.DSN()
	if err != nil {
		return nil, err
	}

	if c.Driver == DriverPostgres {
		return postgres.Open(dsn), nil
	}
	return mysql.Open(dsn), nil
}

// Open creates a pooled connection without touching the package level DB
func Open(config *Config) (*gorm.DB, error) {
	dialector, err := config.Dialector()
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel(config.LogLevel)),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	// Waiters queue on the pool without limit once every connection is busy
	sqlDB.SetMaxOpenConns(config.MaxOpenConns)
	sqlDB.SetMaxIdleConns(config.MaxOpenConns)

	return db, nil
}

// Connect establishes the shared database connection
func Connect(config *Config) error {
	db, err := Open(config)
	if err != nil {
		return err
	}

	DB = db
	log.Printf("Successfully connected to %s database %s", config.Driver, config.DBName)
	return nil
}

// Migrate creates or updates the job impact table. Only used to prepare
// local development databases; the service itself never writes.
func Migrate(table string) error {
	if DB == nil {
		return fmt.Errorf("database connection not established")
	}

	if err := models.AutoMigrate(DB, table); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// Ping checks that the database is reachable
func Ping(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection not established")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes the database connection
func Close() error {
	if DB == nil {
		return nil
	}

	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	return sqlDB.Close()
}

func logLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}

// getEnv returns environment variable value or default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable value as a positive int or default
func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}
