package database

import "time"

// Connection pool defaults
const (
	DefaultMinConnections = 2
	DefaultMaxConnections = 10
	DefaultMaxIdleTime    = 5 * time.Minute
	DefaultMaxLifetime    = 30 * time.Minute
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToApplyMigrations = "failed to apply migrations"
)

// Log messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
