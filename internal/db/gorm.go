package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrDuplicate         = errors.New("duplicate record")
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// sqlite only allows one writer; the busy timeout makes concurrent writers
// wait for the lock instead of failing with SQLITE_BUSY.
const sqliteOptions = "_busy_timeout=5000&_journal_mode=WAL"

type GormDB struct {
	DB *gorm.DB
}

// NewGormDB opens a connection for the given driver ("sqlite" or "postgres").
// For sqlite the dsn is a file path and the file is created when absent.
func NewGormDB(driver, dsn string, logLevel logger.LogLevel) (*GormDB, error) {
	dialector, err := openDialector(driver, dsn)
	if err != nil {
		return &GormDB{}, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logLevel),
		TranslateError: true,
	})
	if err != nil {
		return &GormDB{}, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return &GormDB{}, fmt.Errorf("get sql db conn: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return &GormDB{
		DB: db,
	}, nil
}

func openDialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case "sqlite":
		if !strings.Contains(dsn, "?") {
			dsn = dsn + "?" + sqliteOptions
		}
		return sqlite.Open(dsn), nil
	case "postgres":
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}

// ParseLogLevel maps "silent", "error", "warn" and "info" to the GORM log level.
func ParseLogLevel(name string) logger.LogLevel {
	switch strings.ToLower(name) {
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

func (f *GormDB) MigrateModels(models ...any) error {
	err := f.DB.AutoMigrate(models...)
	if err != nil {
		return fmt.Errorf("failed to migrate table: %w", err)
	}

	return nil
}

// Create inserts a single record and fills in its generated primary key.
func (f *GormDB) Create(ctx context.Context, record any) error {
	err := f.DB.WithContext(ctx).Create(record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("insert to table: %w", ErrDuplicate)
		}
		return fmt.Errorf("insert to table: %w", err)
	}

	return nil
}

func (f *GormDB) GetOneBy(ctx context.Context, column string, value any, entity any) error {
	query := fmt.Sprintf("%s = ?", column)
	err := f.DB.WithContext(ctx).Where(query, value).First(entity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("getting record by %q: %w", column, err)
	}
	return nil
}

// ListAll loads every row of the entity's table sorted by orderBy.
func (f *GormDB) ListAll(ctx context.Context, orderBy string, entities any) error {
	tx := f.DB.WithContext(ctx).Order(orderBy).Find(entities)
	if tx.Error != nil {
		return fmt.Errorf("listing records: %w", tx.Error)
	}
	return nil
}

func (f *GormDB) Ping(ctx context.Context) error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}

func (f *GormDB) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return fmt.Errorf("get sql db conn: %w", err)
	}
	return sqlDB.Close()
}
