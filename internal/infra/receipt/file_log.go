// Package receipt implements the append-only transaction log as a plain
// text file.
package receipt

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"cashreg/config"
	"cashreg/internal/domain/entity"
	"cashreg/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	recordHeader = "=== TRANSACTION RECORD ==="
	recordFooter = "==========================="
	dateLayout   = "2006-01-02 15:04:05"
	logFilePerm  = 0o644
)

// Params defines the parameters required for the file log.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// fileLog appends one formatted record per checkout. The file is opened,
// appended and closed for the duration of exactly one write; no handle is
// held between transactions.
type fileLog struct {
	path   string
	logger *slog.Logger
}

// NewFileLog is the constructor for fileLog.
func NewFileLog(params Params) repository.ReceiptLog {
	return &fileLog{
		path:   params.Config.Receipt.Path,
		logger: params.Logger,
	}
}

// Append writes one transaction record to the log file.
func (l *fileLog) Append(_ context.Context, record *entity.TransactionRecord) error {
	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
	if err != nil {
		return errors.Wrapf(err, "open receipt log %s", l.path)
	}

	_, writeErr := file.WriteString(Format(record))
	closeErr := file.Close()

	if writeErr != nil {
		return errors.Wrapf(writeErr, "write receipt log %s", l.path)
	}
	if closeErr != nil {
		return errors.Wrapf(closeErr, "close receipt log %s", l.path)
	}

	l.logger.Info("Transaction logged",
		slog.String("transaction_id", record.ID.String()),
		slog.String("cashier", record.Cashier),
		slog.String("total", record.Total.StringFixed(2)))

	return nil
}

// Format renders a transaction record in the receipt log format, ending
// with the footer line and a blank line.
func Format(record *entity.TransactionRecord) string {
	var b strings.Builder

	b.WriteString(recordHeader + "\n")
	b.WriteString("Cashier: " + record.Cashier + "\n")
	b.WriteString("Date: " + record.Timestamp.Format(dateLayout) + "\n")
	b.WriteString("Items:\n")
	for _, item := range record.Items {
		b.WriteString("- " + item.String() + "\n")
	}
	b.WriteString("TOTAL: " + entity.FormatAmount(record.Total) + "\n")
	b.WriteString("PAID: " + entity.FormatAmount(record.Paid) + "\n")
	b.WriteString("CHANGE: " + entity.FormatAmount(record.Change) + "\n")
	b.WriteString(recordFooter + "\n\n")

	return b.String()
}
