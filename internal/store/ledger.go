package store

import (
	"fmt"
	"os"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/parsererror"
)

// ReceiptCSVRow is the CSV representation of one stored receipt.
// Monetary fields are kept as strings on the wire; parsing back coerces
// malformed values to zero, matching validation's value-failure semantics.
type ReceiptCSVRow struct {
	BillID   string `csv:"bill_id"`
	Vendor   string `csv:"vendor"`
	Date     string `csv:"date"`
	Amount   string `csv:"amount"`
	Tax      string `csv:"tax"`
	Subtotal string `csv:"subtotal"`
	Category string `csv:"category"`
}

// Ledger is the CSV-backed receipts store. It satisfies the validation
// engine's ExistenceChecker interface, making it the duplicate-detection
// collaborator for the upload flow.
type Ledger struct {
	Path string
}

// NewLedger creates a ledger at the given CSV path. The file is created on
// first append.
func NewLedger(path string) *Ledger {
	return &Ledger{Path: path}
}

// Append adds one receipt to the ledger, creating the file with headers when
// it does not yet exist.
func (l *Ledger) Append(r models.Receipt) error {
	rows, err := l.loadRows()
	if err != nil {
		return err
	}
	rows = append(rows, toRow(r))
	return l.writeRows(rows)
}

// WriteReceipts replaces the ledger contents with the given receipts.
func (l *Ledger) WriteReceipts(receipts []models.Receipt) error {
	rows := make([]ReceiptCSVRow, 0, len(receipts))
	for _, r := range receipts {
		rows = append(rows, toRow(r))
	}
	return l.writeRows(rows)
}

// LoadReceipts returns every stored receipt, in ledger order.
func (l *Ledger) LoadReceipts() ([]models.Receipt, error) {
	rows, err := l.loadRows()
	if err != nil {
		return nil, err
	}

	receipts := make([]models.Receipt, 0, len(rows))
	for _, row := range rows {
		receipts = append(receipts, fromRow(row))
	}
	return receipts, nil
}

// ExistsByBillID reports whether a receipt with the given bill id is stored.
func (l *Ledger) ExistsByBillID(billID string) (bool, error) {
	rows, err := l.loadRows()
	if err != nil {
		return false, err
	}
	for _, row := range rows {
		if row.BillID == billID {
			return true, nil
		}
	}
	return false, nil
}

// ExistsByFingerprint reports whether a receipt with the same vendor, date,
// and amount is stored. This catches repeat entries whose identifiers differ,
// including synthesized ones.
func (l *Ledger) ExistsByFingerprint(vendor, date string, amount decimal.Decimal) (bool, error) {
	receipts, err := l.LoadReceipts()
	if err != nil {
		return false, err
	}
	for _, r := range receipts {
		if strings.EqualFold(r.Vendor, vendor) && r.Date == date && r.AmountValue().Equal(amount) {
			return true, nil
		}
	}
	return false, nil
}

func (l *Ledger) loadRows() ([]ReceiptCSVRow, error) {
	file, err := os.Open(l.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &parsererror.StoreError{Op: "load", Path: l.Path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close ledger file")
		}
	}()

	var rows []ReceiptCSVRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		if err == gocsv.ErrEmptyCSVFile {
			return nil, nil
		}
		return nil, &parsererror.StoreError{Op: "load", Path: l.Path, Err: fmt.Errorf("parsing ledger CSV: %w", err)}
	}
	return rows, nil
}

func (l *Ledger) writeRows(rows []ReceiptCSVRow) error {
	file, err := os.Create(l.Path)
	if err != nil {
		return &parsererror.StoreError{Op: "append", Path: l.Path, Err: err}
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close ledger file")
		}
	}()

	if err := gocsv.MarshalFile(&rows, file); err != nil {
		return &parsererror.StoreError{Op: "append", Path: l.Path, Err: fmt.Errorf("writing ledger CSV: %w", err)}
	}

	log.WithField("count", len(rows)).Debug("Wrote receipts ledger")
	return nil
}

func toRow(r models.Receipt) ReceiptCSVRow {
	return ReceiptCSVRow{
		BillID:   r.BillID,
		Vendor:   r.Vendor,
		Date:     r.Date,
		Amount:   r.AmountValue().StringFixed(2),
		Tax:      r.TaxValue().StringFixed(2),
		Subtotal: r.Subtotal.StringFixed(2),
		Category: r.Category,
	}
}

func fromRow(row ReceiptCSVRow) models.Receipt {
	return models.Receipt{
		BillID:   row.BillID,
		Vendor:   row.Vendor,
		Date:     row.Date,
		Amount:   models.NullAmount(models.ParseAmount(row.Amount)),
		Tax:      models.NullAmount(models.ParseAmount(row.Tax)),
		Subtotal: models.ParseAmount(row.Subtotal),
		Category: row.Category,
	}
}
