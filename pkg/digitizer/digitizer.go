// Package digitizer exposes the extraction and validation core as a small
// library facade for external callers (upload flows, services) that hand in
// raw OCR text and consume the structured record plus validation report.
package digitizer

import (
	"context"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/categorizer"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/receiptparser"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/templates"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/validation"
)

// Receipt is the structured record produced by extraction.
type Receipt = models.Receipt

// LineItem is a single purchased item recovered from the receipt body.
type LineItem = models.LineItem

// ValidationReport is the ordered pass/fail result of validating a record.
type ValidationReport = models.ValidationReport

// ExistenceChecker is the duplicate-detection collaborator supplied by the
// caller's persistence layer.
type ExistenceChecker = validation.ExistenceChecker

// Digitizer bundles a ready-to-use extraction pipeline and validation engine.
// Instances are immutable and safe for concurrent use.
type Digitizer struct {
	parser *receiptparser.Parser
	engine *validation.Engine
}

// New creates a Digitizer with the built-in templates, the built-in category
// table, and the default tax band. checker may be nil when validation is
// always run with the duplicate check skipped.
func New(checker ExistenceChecker) *Digitizer {
	cat := categorizer.NewCategorizer(nil, nil, nil)
	return &Digitizer{
		parser: receiptparser.New(templates.Default(), cat),
		engine: validation.NewEngine(checker, nil),
	}
}

// Parse extracts a structured record and item list from raw OCR text.
// It never fails: missing fields degrade to deterministic defaults.
func (d *Digitizer) Parse(ctx context.Context, text string) (Receipt, []LineItem) {
	return d.parser.ParseText(ctx, text)
}

// Validate runs the consistency checks against a parsed record.
func (d *Digitizer) Validate(r Receipt, skipDuplicateCheck bool) ValidationReport {
	return d.engine.Validate(r, skipDuplicateCheck)
}
