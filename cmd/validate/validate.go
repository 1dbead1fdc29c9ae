// Package validate contains the command that re-validates a stored receipt,
// mirroring the stored-receipt validation flow of the original application.
package validate

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/cmd/root"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/parsererror"
)

var (
	billID string
	vendor string
	amount string
)

// Cmd is the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Re-validate a receipt already stored in the ledger",
	Long: `Look up a stored receipt by bill id, vendor, or amount and run the
validation checks against it. The duplicate check is skipped: the record
being looked at is necessarily already stored.`,
	Run: validateFunc,
}

func init() {
	Cmd.Flags().StringVarP(&billID, "bill-id", "b", "", "Bill id substring to match")
	Cmd.Flags().StringVarP(&vendor, "vendor", "v", "", "Vendor substring to match (case-insensitive)")
	Cmd.Flags().StringVarP(&amount, "amount", "a", "", "Exact amount to match (e.g. 45.67)")
}

func validateFunc(cmd *cobra.Command, args []string) {
	cfg := root.LoadConfig()
	ledger := root.NewLedger(cfg)
	engine := root.NewEngine(cfg, ledger)

	receipts, err := ledger.LoadReceipts()
	if err != nil {
		root.Log.Fatalf("Error loading ledger: %v", err)
	}

	match, err := findMatch(receipts)
	if err != nil {
		root.Log.Fatal(err.Error())
	}

	fmt.Printf("Validation for %s\n", match.BillID)
	report := engine.Validate(*match, true)
	for _, res := range report.Results {
		marker := "OK "
		if res.Status == models.StatusError {
			marker = "ERR"
		}
		fmt.Printf("[%s] %s: %s\n", marker, res.Title, res.Message)
	}
	if report.Passed {
		fmt.Println("Stored receipt passed validation")
	} else {
		fmt.Println("Stored receipt failed validation")
	}
}

// findMatch returns the first stored receipt satisfying every provided
// filter, in ledger order.
func findMatch(receipts []models.Receipt) (*models.Receipt, error) {
	for i := range receipts {
		r := &receipts[i]
		if billID != "" && !strings.Contains(r.BillID, billID) {
			continue
		}
		if vendor != "" && !strings.Contains(strings.ToLower(r.Vendor), strings.ToLower(vendor)) {
			continue
		}
		if amount != "" && r.AmountValue().StringFixed(2) != models.ParseAmount(amount).StringFixed(2) {
			continue
		}
		return r, nil
	}
	return nil, &parsererror.NotFoundError{Criteria: describeFilters()}
}

func describeFilters() string {
	var parts []string
	if billID != "" {
		parts = append(parts, fmt.Sprintf("bill_id~%q", billID))
	}
	if vendor != "" {
		parts = append(parts, fmt.Sprintf("vendor~%q", vendor))
	}
	if amount != "" {
		parts = append(parts, fmt.Sprintf("amount=%s", amount))
	}
	if len(parts) == 0 {
		return "any receipt (ledger is empty)"
	}
	return strings.Join(parts, ", ")
}
