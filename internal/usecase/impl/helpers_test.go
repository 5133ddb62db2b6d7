package impl

import (
	"context"
	"io"
	"log/slog"

	"cashreg/internal/domain/entity"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingReceiptLog captures appended records; failErr, when set, makes
// every append fail.
type recordingReceiptLog struct {
	records []*entity.TransactionRecord
	failErr error
}

func (l *recordingReceiptLog) Append(_ context.Context, record *entity.TransactionRecord) error {
	if l.failErr != nil {
		return l.failErr
	}
	l.records = append(l.records, record)

	return nil
}
