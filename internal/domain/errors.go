package domain

import (
	"errors"
	"fmt"
)

// Domain errors (no external dependencies).
var (
	ErrNotFound           = errors.New("resource not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicate          = errors.New("duplicate resource")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("access denied")
	ErrConflict           = errors.New("conflict with current state")
	ErrInsufficientStock  = errors.New("insufficient stock")
)

// DataSourceError marks a failed fetch against one of the external data sources
// (movements, sales, returns, inventory). The stock ledger engine wraps every
// fetch failure in this type and aborts the whole computation: a report built
// from three of four sources would be numerically wrong.
type DataSourceError struct {
	Source string // "movements" | "sales" | "returns" | "inventory"
	Err    error
}

func (e *DataSourceError) Error() string {
	return fmt.Sprintf("data source %s: %v", e.Source, e.Err)
}

func (e *DataSourceError) Unwrap() error { return e.Err }

// IsDataSourceError reports whether err is (or wraps) a DataSourceError.
func IsDataSourceError(err error) bool {
	var dse *DataSourceError
	return errors.As(err, &dse)
}
