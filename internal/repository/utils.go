package repository

import (
	"context"
	"errors"

	"github.com/osse101/IdleForge_Go/internal/domain"
	"github.com/osse101/IdleForge_Go/internal/logger"
)

// ErrTxClosed is returned by Rollback after Commit or a previous Rollback
var ErrTxClosed = errors.New(domain.ErrMsgTxClosed)

// SafeRollback rolls back a transaction and logs any error
func SafeRollback(ctx context.Context, tx Tx) {
	if err := tx.Rollback(ctx); err != nil {
		// Committed transactions report closed; not worth logging
		if !errors.Is(err, ErrTxClosed) && err.Error() != domain.ErrMsgTxClosed {
			logger.FromContext(ctx).Error("Failed to rollback transaction", "error", err)
		}
	}
}
