package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("record not found")

	// ErrEmailAlreadyExists is returned when registration hits the unique
	// email constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrPartnerAlreadyExists is returned when a partner name or API key is
	// already taken.
	ErrPartnerAlreadyExists = errors.New("partner already exists")

	// ErrServiceAlreadyExists is returned when a partner already offers a
	// service with the same name.
	ErrServiceAlreadyExists = errors.New("partner service already exists")

	// ErrNoActiveKey is returned when a user has no active encryption key.
	ErrNoActiveKey = errors.New("no active encryption key")

	// ErrAccountLocked is returned when a login attempt is claimed on an
	// account whose lock has not expired yet.
	ErrAccountLocked = errors.New("account is locked")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel fails to render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the driver cannot start a
	// transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing a transaction fails.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")
)

// ErrUnknownRole is returned when a stored role cannot be normalised.
var ErrUnknownRole = errors.New("unknown role")
