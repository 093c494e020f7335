package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"studytrackr/internal/config"
	mysqlClient "studytrackr/internal/platform/mysql"
	redisClient "studytrackr/internal/platform/redis"
	sqliteClient "studytrackr/internal/platform/sqlite"
	"studytrackr/internal/repository"
	"studytrackr/internal/session"
)

type App struct {
	Config   *config.Config
	DB       *gorm.DB
	Redis    *redis.Client
	Sessions *session.Manager

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	db, err := openDatabase(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := repository.AutoMigrate(db); err != nil {
		closeDB(db)
		return nil, err
	}

	redisCli, err := redisClient.New(ctx, cfg.Redis)
	if err != nil {
		closeDB(db)
		return nil, err
	}

	return Assemble(cfg, db, redisCli), nil
}

// Assemble builds an App from already opened resources.
func Assemble(cfg *config.Config, db *gorm.DB, redisCli *redis.Client) *App {
	sessions := session.NewManager(
		session.NewRedisStore(redisCli, cfg.App.Name+":session:"),
		session.Options{
			CookieName: cfg.Session.CookieName,
			Secret:     cfg.Session.Secret,
			TTL:        cfg.SessionTTL(),
			Secure:     cfg.Session.SecureCookie,
		},
	)
	return &App{
		Config:    cfg,
		DB:        db,
		Redis:     redisCli,
		Sessions:  sessions,
		StartedAt: time.Now(),
	}
}

func openDatabase(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	switch cfg.Database.Driver {
	case config.DriverMySQL:
		return mysqlClient.New(ctx, cfg.MySQLDSN())
	case config.DriverSQLite:
		dsn, err := sqliteClient.FileDSN(cfg.SQLite.Path)
		if err != nil {
			return nil, err
		}
		return sqliteClient.New(ctx, dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func (a *App) Close() error {
	var closeErr error
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = errors.Join(closeErr, fmt.Errorf("close redis failed: %w", err))
		}
	}
	if a.DB != nil {
		sqlDB, err := a.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				closeErr = errors.Join(closeErr, fmt.Errorf("close database failed: %w", err))
			}
		}
	}
	return closeErr
}
