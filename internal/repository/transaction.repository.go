package repository

import (
	"fmt"
	"os"
	"time"

	"finsight/internal/domain"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// TransactionRepository supplies raw spend records from the
// aggregation collaborator's export.
type TransactionRepository interface {
	List() ([]domain.Transaction, error)
}

func NewTransactionRepository(path string) TransactionRepository {
	return transactionRepositoryHandler{path: path}
}

type transactionRepositoryHandler struct {
	path string
}

type transactionRow struct {
	Merchant    string          `csv:"merchant"`
	RawCategory string          `csv:"category"`
	Amount      decimal.Decimal `csv:"amount"`
	Date        string          `csv:"date"`
}

func (h transactionRepositoryHandler) List() ([]domain.Transaction, error) {
	f, err := os.Open(h.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transactions %s: %w", h.path, err)
	}
	defer f.Close()

	rows := []transactionRow{}
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse transactions %s: %w", h.path, err)
	}

	txns := make([]domain.Transaction, 0, len(rows))
	for _, row := range rows {
		date, err := time.Parse("2006-01-02", row.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid transaction date %q: %w", row.Date, err)
		}
		txns = append(txns, domain.Transaction{
			Merchant:    row.Merchant,
			RawCategory: row.RawCategory,
			Amount:      row.Amount,
			Date:        date,
		})
	}

	return txns, nil
}
