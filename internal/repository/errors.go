package repository

import (
	"errors"
	"fmt"

	"employee_manager/pkg/log"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgForeignKeyViolation = "23503"

	mysqlRowIsReferenced = 1451
	mysqlNoReferencedRow = 1452
)

// StoreError reports a failed statement together with the operation that issued it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// fail logs err with its operation name and returns it wrapped. Store errors
// are never swallowed here; the caller decides how to present them.
func fail(op string, err error) error {
	log.Errorw("store operation failed", "op", op, "error", err)
	return &StoreError{Op: op, Err: err}
}

// IsForeignKeyViolation reports whether err was caused by a foreign key
// constraint, either deleting a row that is still referenced or pointing at a
// row that does not exist. Both PostgreSQL and MySQL errors are recognised.
func IsForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlRowIsReferenced || myErr.Number == mysqlNoReferencedRow
	}
	return false
}

// Op returns the operation name carried by a StoreError, or "" for other errors.
func Op(err error) string {
	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return storeErr.Op
	}
	return ""
}
