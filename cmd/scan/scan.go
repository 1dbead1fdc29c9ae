// Package scan contains the command that digitizes one OCR text file:
// extraction, validation, and (on success) ledger append.
package scan

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/cmd/root"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
)

var (
	inputFile     string
	skipDuplicate bool
	noSave        bool
)

// Cmd is the scan command
var Cmd = &cobra.Command{
	Use:   "scan",
	Short: "Extract a structured record from an OCR text file",
	Long: `Parse the OCR text of one receipt into a structured record, validate it,
and append it to the receipts ledger when validation passes.`,
	Run: scanFunc,
}

func init() {
	Cmd.Flags().StringVarP(&inputFile, "input", "i", "", "Input OCR text file (required)")
	Cmd.Flags().BoolVar(&skipDuplicate, "skip-duplicate", false, "Skip the duplicate detection check")
	Cmd.Flags().BoolVar(&noSave, "no-save", false, "Do not append the record to the ledger")
	if err := Cmd.MarkFlagRequired("input"); err != nil {
		panic(err)
	}
}

func scanFunc(cmd *cobra.Command, args []string) {
	cfg := root.LoadConfig()
	parser := root.NewParser(cfg)
	ledger := root.NewLedger(cfg)
	engine := root.NewEngine(cfg, ledger)

	receipt, items, err := parser.ParseFile(cmd.Context(), inputFile)
	if err != nil {
		root.Log.Fatalf("Error parsing receipt: %v", err)
	}

	printReceipt(receipt, items)

	report := engine.Validate(receipt, skipDuplicate)
	printReport(report)

	if !report.Passed {
		root.Log.Warn("Receipt failed validation, not saved")
		return
	}
	if noSave {
		return
	}

	if err := ledger.Append(receipt); err != nil {
		root.Log.Fatalf("Error saving receipt: %v", err)
	}
	root.Log.WithField("bill_id", receipt.BillID).Info("Receipt saved to ledger")
}

func printReceipt(r models.Receipt, items []models.LineItem) {
	fmt.Printf("Bill ID:  %s\n", r.BillID)
	fmt.Printf("Vendor:   %s\n", r.Vendor)
	fmt.Printf("Date:     %s\n", r.Date)
	fmt.Printf("Amount:   %s\n", r.AmountValue().StringFixed(2))
	fmt.Printf("Tax:      %s\n", r.TaxValue().StringFixed(2))
	fmt.Printf("Subtotal: %s\n", r.Subtotal.StringFixed(2))
	fmt.Printf("Category: %s\n", r.Category)
	for _, item := range items {
		fmt.Printf("  - %s  %s\n", item.Name, item.Price.StringFixed(2))
	}
}

func printReport(report models.ValidationReport) {
	for _, res := range report.Results {
		marker := "OK "
		if res.Status == models.StatusError {
			marker = "ERR"
		}
		fmt.Printf("[%s] %s: %s\n", marker, res.Title, res.Message)
	}
	if report.Passed {
		fmt.Println("Receipt passed validation")
	} else {
		fmt.Println("Receipt failed validation")
	}
}
