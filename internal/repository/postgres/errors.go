package postgres

import (
	"errors"
	"fmt"

	"englearn/internal/repository"

	"github.com/lib/pq"
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// mapError translates driver-level errors into the repository fault
// taxonomy. sql.ErrNoRows is not mapped here; query sites decide
// whether an empty result is ErrNotFound or simply no data.
func mapError(op string, err error) error {
	if err == nil {
		return nil
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w: %v", op, repository.ErrConstraint, err)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: %w: %v", op, repository.ErrNotFound, err)
		}
	}

	// Everything else (bad connections, pool exhaustion, scan faults)
	// is a store-level failure.
	return fmt.Errorf("%s: %w: %v", op, repository.ErrStoreUnavailable, err)
}
