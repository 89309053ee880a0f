package database

import (
	"errors"
	"fmt"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ConnectionInitError reports that the database could not be opened,
// configured or migrated. The process cannot continue without it.
type ConnectionInitError struct {
	Driver string
	Err    error
}

func (e *ConnectionInitError) Error() string {
	return fmt.Sprintf("failed to initialize %s database connection: %v", e.Driver, e.Err)
}

func (e *ConnectionInitError) Unwrap() error {
	return e.Err
}

// TransactionError reports a failed transactional operation. The
// transaction has been rolled back by the time the caller sees it.
type TransactionError struct {
	Op  string
	Err error
}

func (e *TransactionError) Error() string {
	return fmt.Sprintf("%s: transaction rolled back: %v", e.Op, e.Err)
}

func (e *TransactionError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is gorm's record-not-found error.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// MySQL error numbers for duplicate entries and foreign key failures.
const (
	mysqlDuplicateEntry     = 1062
	mysqlRowIsReferenced    = 1451
	mysqlNoReferencedRow    = 1452
	postgresUniqueViolation = "23505"
	postgresFKViolation     = "23503"
)

// IsConstraintViolation reports whether err was caused by a unique or
// foreign key constraint, for any of the supported drivers.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.Code == sqlite3.ErrConstraint
	}

	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) {
		switch mysqlErr.Number {
		case mysqlDuplicateEntry, mysqlRowIsReferenced, mysqlNoReferencedRow:
			return true
		}
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == postgresUniqueViolation || pgErr.Code == postgresFKViolation
	}

	return false
}
