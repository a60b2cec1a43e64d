package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// Pool backs the readiness probe and the CLI's bulk reads.
	Pool *pgxpool.Pool
	// DB is the GORM handle used by every handler.
	DB *gorm.DB
)

func InitDB(app AppConfig) {
	dsn := app.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/%s?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
			getEnv("DB_NAME", "sticker_shuttle"),
		)
		Log.Warn("DATABASE_URL not set, using local default")
	}

	initPgx(dsn)
	initGORM(dsn, app.IsProduction())
}

func initPgx(dsn string) {
	var err error
	Pool, err = pgxpool.New(context.Background(), dsn)
	if err != nil {
		Log.Fatal("Unable to create pgx pool", zap.Error(err))
	}

	ctx, cancel := WithTimeout()
	defer cancel()
	if err = Pool.Ping(ctx); err != nil {
		Log.Fatal("Database ping failed", zap.Error(err))
	}
	Log.Info("Database connected (pgx)")
}

func initGORM(dsn string, production bool) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if production {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		Log.Fatal("Failed to connect to database with GORM", zap.Error(err))
	}
	if sqlDB, err := DB.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	Log.Info("Database connected (GORM)")
}

// Migrate creates or alters the tables for the given models.
func Migrate(models ...any) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	return DB.AutoMigrate(models...)
}

func CloseDB() {
	if Pool != nil {
		Pool.Close()
		Log.Info("Database connection closed (pgx)")
	}
	if DB != nil {
		if sqlDB, _ := DB.DB(); sqlDB != nil {
			sqlDB.Close()
			Log.Info("Database connection closed (GORM)")
		}
	}
}
