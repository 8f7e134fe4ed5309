package postgres

// Postgres error codes
const (
	UniqueViolationCode = "23505"
)
