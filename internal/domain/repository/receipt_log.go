package repository

import (
	"context"

	"cashreg/internal/domain/entity"
)

// ReceiptLog defines the append-only transaction record sink. Records are
// never read back or mutated by this application; the log is write-only
// from its perspective.
type ReceiptLog interface {
	// Append writes one transaction record to the log.
	Append(ctx context.Context, record *entity.TransactionRecord) error
}
