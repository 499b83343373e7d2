package config

import (
	"context"
	"time"

	"food-ordering-api/models"

	"github.com/glebarez/sqlite"
	"github.com/sethvargo/go-envconfig"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Config holds all runtime settings, read from the environment.
type Config struct {
	Port     string `env:"PORT, default=8080"`
	Env      string `env:"ENV, default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	DBPath string `env:"DB_PATH, default=food_ordering.db"`

	JWTSecret       string        `env:"JWT_SECRET, default=food_ordering_dev_secret"`
	AccessTokenTTL  time.Duration `env:"ACCESS_TOKEN_TTL, default=30m"`
	RefreshTokenTTL time.Duration `env:"REFRESH_TOKEN_TTL, default=168h"`
}

var (
	// DB is the shared gorm handle, set by InitDB (or directly in tests).
	DB *gorm.DB

	// App is the loaded configuration, set by Load.
	App *Config

	// JWTSecret signs and verifies tokens.
	JWTSecret []byte
)

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, err
	}
	App = &cfg
	JWTSecret = []byte(cfg.JWTSecret)
	return &cfg, nil
}

// InitDB opens the sqlite database and migrates the schema.
func InitDB(cfg *Config) error {
	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return err
	}
	if err := Migrate(db); err != nil {
		return err
	}
	DB = db
	return nil
}

// Migrate applies the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
	)
}
