package shared

import (
	"context"

	"rehearsal-rooms/internal/infra/db"
	"rehearsal-rooms/internal/pkg/errs"
)

var (
	ErrTransactionBegin   = errs.New("failed to begin transaction")
	ErrTransactionCommit  = errs.New("failed to commit transaction")
	ErrMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

// TxRunner wraps the check-then-write critical sections. Within guarantees
// that fn either commits atomically or every effect is rolled back, and that
// transaction-scoped locks are released on every exit path.
type TxRunner interface {
	Within(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}
