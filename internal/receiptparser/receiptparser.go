// Package receiptparser is the extraction orchestrator: it composes the
// template registry, field extractor, and categorizer into a single call
// that turns raw OCR text into a finalized receipt record and item list.
// This is the sole entry point the upload flow invokes.
package receiptparser

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/categorizer"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/extractor"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/parsererror"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/store"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/templates"
)

var log = logrus.New()

// SetLogger allows setting a configured logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
		extractor.SetLogger(logger)
	}
}

// Parser parses raw receipt text into structured records. It holds only
// immutable collaborators, so one instance serves concurrent callers.
type Parser struct {
	registry *templates.Registry
	cat      *categorizer.Categorizer
}

// New creates a Parser. A nil registry falls back to the built-in templates;
// cat is required.
func New(registry *templates.Registry, cat *categorizer.Categorizer) *Parser {
	if registry == nil {
		registry = templates.Default()
	}
	return &Parser{registry: registry, cat: cat}
}

// ParseText extracts a structured record and item list from raw OCR text.
// Template matching runs first; a matched template locks the fields its
// patterns capture, and generic heuristics fill the rest. The returned
// record is fully populated: extraction degrades to defaults rather than
// failing, and field correctness is checked downstream by validation.
func (p *Parser) ParseText(ctx context.Context, text string) (models.Receipt, []models.LineItem) {
	tmpl := p.registry.Match(text)
	if tmpl != nil {
		log.WithField("template", tmpl.Name).Debug("Matched vendor template")
	}

	fields, items := extractor.Extract(text, tmpl)
	category := p.cat.Categorize(ctx, text, fields.Vendor)

	receipt := models.Receipt{
		BillID:   fields.BillID,
		Vendor:   fields.Vendor,
		Date:     fields.Date,
		Amount:   models.NullAmount(models.Round2(fields.Amount)),
		Tax:      models.NullAmount(models.Round2(fields.Tax)),
		Subtotal: models.Round2(fields.Subtotal),
		Category: category,
	}

	for i := range items {
		items[i].Price = models.Round2(items[i].Price)
	}

	log.WithFields(logrus.Fields{
		"bill_id":  receipt.BillID,
		"vendor":   receipt.Vendor,
		"category": receipt.Category,
		"amount":   receipt.Amount.Decimal.String(),
	}).Info("Parsed receipt")

	return receipt, items
}

// ParseFile reads an OCR text file and parses its contents.
func (p *Parser) ParseFile(ctx context.Context, path string) (models.Receipt, []models.LineItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Receipt{}, nil, &parsererror.ParseError{
			Stage: "read",
			Input: path,
			Err:   fmt.Errorf("reading OCR text file: %w", err),
		}
	}

	receipt, items := p.ParseText(ctx, string(data))
	return receipt, items, nil
}

// WriteToCSV writes parsed receipts to a CSV file at the given path,
// replacing any existing contents.
func WriteToCSV(receipts []models.Receipt, csvFile string) error {
	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(receipts),
	}).Debug("Writing receipts to CSV")
	return store.NewLedger(csvFile).WriteReceipts(receipts)
}
