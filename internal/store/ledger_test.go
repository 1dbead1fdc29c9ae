package store

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
)

func testReceipt(billID string) models.Receipt {
	return models.Receipt{
		BillID:   billID,
		Vendor:   "Blue Bistro",
		Date:     "2024-03-15",
		Amount:   models.NullAmount(decimal.NewFromFloat(45.67)),
		Tax:      models.NullAmount(decimal.NewFromFloat(3.25)),
		Subtotal: decimal.NewFromFloat(42.42),
		Category: models.CategoryFood,
	}
}

func tempLedger(t *testing.T) *Ledger {
	t.Helper()
	return NewLedger(filepath.Join(t.TempDir(), "receipts.csv"))
}

func TestLedgerAppendAndLoad(t *testing.T) {
	ledger := tempLedger(t)

	require.NoError(t, ledger.Append(testReceipt("INV-1")))
	require.NoError(t, ledger.Append(testReceipt("INV-2")))

	receipts, err := ledger.LoadReceipts()
	require.NoError(t, err)
	require.Len(t, receipts, 2)

	assert.Equal(t, "INV-1", receipts[0].BillID)
	assert.Equal(t, "INV-2", receipts[1].BillID)
	assert.Equal(t, "Blue Bistro", receipts[0].Vendor)
	assert.Equal(t, "2024-03-15", receipts[0].Date)
	assert.True(t, receipts[0].Amount.Valid)
	assert.Equal(t, "45.67", receipts[0].AmountValue().StringFixed(2))
	assert.Equal(t, "3.25", receipts[0].TaxValue().StringFixed(2))
	assert.Equal(t, "42.42", receipts[0].Subtotal.StringFixed(2))
	assert.Equal(t, models.CategoryFood, receipts[0].Category)
}

func TestLedgerWritesHeader(t *testing.T) {
	ledger := tempLedger(t)
	require.NoError(t, ledger.Append(testReceipt("INV-1")))

	data, err := os.ReadFile(ledger.Path)
	require.NoError(t, err)
	header := strings.SplitN(string(data), "\n", 2)[0]
	assert.Equal(t, "bill_id,vendor,date,amount,tax,subtotal,category", strings.TrimRight(header, "\r"))
}

func TestLedgerWriteReceiptsReplacesContents(t *testing.T) {
	ledger := tempLedger(t)
	require.NoError(t, ledger.Append(testReceipt("INV-1")))

	require.NoError(t, ledger.WriteReceipts([]models.Receipt{testReceipt("INV-9")}))

	receipts, err := ledger.LoadReceipts()
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.Equal(t, "INV-9", receipts[0].BillID)
}

func TestLedgerLoadMissingFile(t *testing.T) {
	ledger := tempLedger(t)

	receipts, err := ledger.LoadReceipts()
	require.NoError(t, err)
	assert.Empty(t, receipts)
}

func TestLedgerLoadEmptyFile(t *testing.T) {
	ledger := tempLedger(t)
	require.NoError(t, os.WriteFile(ledger.Path, nil, 0o600))

	receipts, err := ledger.LoadReceipts()
	require.NoError(t, err)
	assert.Empty(t, receipts)
}

func TestLedgerMalformedAmountCoercesToZero(t *testing.T) {
	ledger := tempLedger(t)
	csv := "bill_id,vendor,date,amount,tax,subtotal,category\n" +
		"INV-9,Shop,2024-01-01,abc,,1.00,Food\n"
	require.NoError(t, os.WriteFile(ledger.Path, []byte(csv), 0o600))

	receipts, err := ledger.LoadReceipts()
	require.NoError(t, err)
	require.Len(t, receipts, 1)
	assert.True(t, receipts[0].AmountValue().IsZero())
	assert.True(t, receipts[0].TaxValue().IsZero())
}

func TestLedgerExistsByBillID(t *testing.T) {
	ledger := tempLedger(t)
	require.NoError(t, ledger.Append(testReceipt("INV-1")))

	exists, err := ledger.ExistsByBillID("INV-1")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = ledger.ExistsByBillID("INV-404")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLedgerExistsByFingerprint(t *testing.T) {
	ledger := tempLedger(t)
	require.NoError(t, ledger.Append(testReceipt("BILL-123456")))

	amount := decimal.NewFromFloat(45.67)

	exists, err := ledger.ExistsByFingerprint("blue bistro", "2024-03-15", amount)
	require.NoError(t, err)
	assert.True(t, exists, "vendor match is case-insensitive")

	exists, err = ledger.ExistsByFingerprint("Blue Bistro", "2024-03-16", amount)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = ledger.ExistsByFingerprint("Blue Bistro", "2024-03-15", decimal.NewFromFloat(45.68))
	require.NoError(t, err)
	assert.False(t, exists)
}
