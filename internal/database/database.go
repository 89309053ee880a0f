package database

import (
	"database/sql"
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mrlokans/catalog/internal/config"
	"github.com/mrlokans/catalog/internal/entities"
)

// Database owns the connection pool. There is no package-level handle:
// callers receive a *Database from NewDatabase and pass it on explicitly.
type Database struct {
	DB     *gorm.DB
	driver string
}

// NewDatabase connects using the configured driver and DSN and migrates the
// catalog schema. Any failure is reported as a *ConnectionInitError and the
// partially opened pool is closed.
func NewDatabase(cfg config.Database, gormLogger logger.Interface) (*Database, error) {
	if gormLogger == nil {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	dialector, err := openDialector(cfg)
	if err != nil {
		return nil, &ConnectionInitError{Driver: cfg.Driver, Err: err}
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, &ConnectionInitError{Driver: cfg.Driver, Err: fmt.Errorf("failed to connect to database: %w", err)}
	}

	database := &Database{DB: db, driver: cfg.Driver}

	if err := database.configurePool(cfg); err != nil {
		database.Close()
		return nil, &ConnectionInitError{Driver: cfg.Driver, Err: err}
	}

	err = db.AutoMigrate(
		&entities.Author{},
		&entities.Category{},
		&entities.Book{},
	)
	if err != nil {
		database.Close()
		return nil, &ConnectionInitError{Driver: cfg.Driver, Err: fmt.Errorf("failed to migrate database: %w", err)}
	}

	return database, nil
}

func openDialector(cfg config.Database) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		// Opened through database/sql so the pool can be pinned to a
		// single connection before gorm touches it.
		sqlDB, err := sql.Open(sqlite.DriverName, cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		if err := sqlDB.Ping(); err != nil {
			sqlDB.Close()
			return nil, fmt.Errorf("failed to ping sqlite: %w", err)
		}
		return &sqlite.Dialector{DSN: cfg.DSN, Conn: sqlDB}, nil
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN), nil
	case config.DriverPostgres:
		return postgres.New(postgres.Config{
			DSN:                  cfg.DSN,
			PreferSimpleProtocol: true,
		}), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func (d *Database) configurePool(cfg config.Database) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if d.driver == config.DriverSQLite {
		// One connection serializes every transaction, and an in-memory
		// database only lives as long as its last connection.
		sqlDB.SetMaxOpenConns(1)
		sqlDB.SetMaxIdleConns(1)
		sqlDB.SetConnMaxLifetime(0)
		return nil
	}

	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
		sqlDB.SetMaxIdleConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	return sqlDB.Ping()
}

// Driver returns the configured driver name.
func (d *Database) Driver() string {
	return d.driver
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Transaction runs fn inside a single database transaction. The transaction
// is committed when fn returns nil and rolled back otherwise; a panic in fn
// rolls back and re-panics. Failures come back as *TransactionError tagged
// with op.
func (d *Database) Transaction(op string, fn func(tx *gorm.DB) error) error {
	if err := d.DB.Transaction(fn); err != nil {
		return &TransactionError{Op: op, Err: err}
	}
	return nil
}
