package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/lib/pq"
)

var (
	ErrNotFound = errors.New("document not found")
	// ErrStoreUnavailable means the document store could not serve the call at
	// all. It never stands for an empty result.
	ErrStoreUnavailable = errors.New("document store unavailable")
)

// storeError tags err with ErrStoreUnavailable only when the store could not be
// reached. Statement errors (constraints, bad SQL) keep their own identity.
func storeError(op string, err error) error {
	if isUnavailable(err) {
		return unavailableError(op, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func unavailableError(op string, cause error) error {
	if cause == nil || errors.Is(cause, ErrStoreUnavailable) {
		return fmt.Errorf("%s: %w", op, ErrStoreUnavailable)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, cause)
}

func isUnavailable(err error) bool {
	switch {
	case errors.Is(err, ErrStoreUnavailable),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, io.ErrUnexpectedEOF):
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	// Class 08 is connection_exception; 57P0x covers server shutdown and
	// "cannot connect now".
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return pqErr.Code.Class() == "08" || (len(code) == 5 && code[:4] == "57P0")
	}

	return false
}
