package config

// Supported database drivers
const (
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
	DriverPostgres = "postgres"
)

const (
	// DefaultDriver is used when DATABASE_DRIVER is not set
	DefaultDriver = DriverSQLite

	// DefaultDSN is a named in-memory sqlite database with foreign keys enforced
	DefaultDSN = "file:catalog?mode=memory&cache=shared&_fk=1"

	// DefaultDotEnvFile is read at startup if present
	DefaultDotEnvFile = ".env"
)

// Log output formats
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)
