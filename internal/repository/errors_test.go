package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsForeignKeyViolation(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{name: "postgres fk", err: &pgconn.PgError{Code: "23503"}, want: true},
		{name: "postgres unique", err: &pgconn.PgError{Code: "23505"}, want: false},
		{name: "mysql parent row", err: &mysql.MySQLError{Number: 1451}, want: true},
		{name: "mysql child row", err: &mysql.MySQLError{Number: 1452}, want: true},
		{name: "mysql duplicate", err: &mysql.MySQLError{Number: 1062}, want: false},
		{name: "wrapped", err: &StoreError{Op: "department.delete", Err: fmt.Errorf("exec: %w", &pgconn.PgError{Code: "23503"})}, want: true},
		{name: "plain", err: errors.New("boom"), want: false},
		{name: "nil", err: nil, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsForeignKeyViolation(tc.err); got != tc.want {
				t.Fatalf("IsForeignKeyViolation() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestStoreError(t *testing.T) {
	inner := errors.New("timeout")
	err := fail("employee.create", inner)

	if err.Error() != "employee.create: timeout" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Fatalf("expected StoreError to unwrap to the driver error")
	}
	if Op(errors.New("other")) != "" {
		t.Fatalf("expected empty op for non-store errors")
	}
}
