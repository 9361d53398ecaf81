package store

import (
	"strings"
)

// Messages produced by go-sqlite3. The driver's typed errors only exist in
// cgo builds, so classification goes by message text.
const (
	sqliteUniqueViolation = "UNIQUE constraint failed"
	sqliteBusy            = "database is locked"
	sqliteTableLocked     = "database table is locked"
)

// SQLiteErrorClassifier implements [ErrorClassificator] for sqlite3.
// Lock contention is retryable, everything else is not.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify implements [ErrorClassificator].
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	msg := err.Error()
	if strings.Contains(msg, sqliteBusy) || strings.Contains(msg, sqliteTableLocked) {
		return Retryable
	}

	return NonRetryable
}
