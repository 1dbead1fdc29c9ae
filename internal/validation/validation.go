// Package validation checks arithmetic and semantic consistency of an
// extracted receipt record, producing an ordered pass/fail report. All
// checks are pure and synchronous; the only external state consulted is the
// injected duplicate-existence collaborator.
package validation

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/dateutils"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/logging"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
)

// Check titles, in report order.
const (
	TitleRequiredFields = "Required Fields"
	TitleDateFormat     = "Date Format"
	TitleTotalAmount    = "Total Amount"
	TitleTaxRate        = "Tax Rate"
	TitleDuplicate      = "Duplicate Detection"
)

// Accepted effective tax band: |rate - expected| <= tolerance. The band is
// wide on purpose; it absorbs OCR noise and varying regional tax schemes.
// Downstream pass/fail behavior is bound to these exact values.
const (
	DefaultExpectedTaxRate = 0.08
	DefaultTaxTolerance    = 0.05
)

// ExistenceChecker is the persistence collaborator consulted by duplicate
// detection. It is injected, never owned: the engine treats it as a
// synchronous query and reports its errors as a failing check rather than
// propagating them.
type ExistenceChecker interface {
	ExistsByBillID(billID string) (bool, error)
}

// ExistenceCheckerFunc adapts a function to the ExistenceChecker interface.
type ExistenceCheckerFunc func(billID string) (bool, error)

func (f ExistenceCheckerFunc) ExistsByBillID(billID string) (bool, error) {
	return f(billID)
}

// Engine validates extracted receipt records. Instances are immutable and
// safe for concurrent use.
type Engine struct {
	expectedRate decimal.Decimal
	tolerance    decimal.Decimal
	checker      ExistenceChecker
	logger       logging.Logger
}

// NewEngine creates an Engine with the default tax band. checker may be nil
// when callers always skip duplicate detection.
func NewEngine(checker ExistenceChecker, logger logging.Logger) *Engine {
	return NewEngineWithBand(checker, DefaultExpectedTaxRate, DefaultTaxTolerance, logger)
}

// NewEngineWithBand creates an Engine with an explicit tax band, typically
// sourced from configuration.
func NewEngineWithBand(checker ExistenceChecker, expectedRate, tolerance float64, logger logging.Logger) *Engine {
	if logger == nil {
		logger = logging.GetLogger()
	}
	return &Engine{
		expectedRate: decimal.NewFromFloat(expectedRate),
		tolerance:    decimal.NewFromFloat(tolerance),
		checker:      checker,
		logger:       logger,
	}
}

// Validate runs the ordered checks against a record and returns the report.
// Every check runs regardless of earlier failures, with one exception:
// missing required fields short-circuit into a single-result failing report,
// since such a record cannot be meaningfully validated further. The same
// record and the same duplicate answer always yield an identical report.
func (e *Engine) Validate(r models.Receipt, skipDuplicateCheck bool) models.ValidationReport {
	report := models.ValidationReport{Passed: true}

	if missing := r.MissingFields(); len(missing) > 0 {
		report.Add(models.CheckResult{
			Status:  models.StatusError,
			Title:   TitleRequiredFields,
			Message: fmt.Sprintf("Missing fields: %s", strings.Join(missing, ", ")),
		})
		return report
	}
	report.Add(models.CheckResult{
		Status:  models.StatusSuccess,
		Title:   TitleRequiredFields,
		Message: "All required fields present",
	})

	e.checkDateFormat(r, &report)
	e.checkAmount(r, &report)
	e.checkTaxRate(r, &report)
	e.checkDuplicate(r, skipDuplicateCheck, &report)

	e.logger.WithFields(
		logging.Field{Key: logging.FieldBillID, Value: r.BillID},
		logging.Field{Key: logging.FieldStatus, Value: report.Passed},
	).Debug("Validated receipt")

	return report
}

func (e *Engine) checkDateFormat(r models.Receipt, report *models.ValidationReport) {
	if dateutils.IsCanonical(r.Date) {
		report.Add(models.CheckResult{
			Status:  models.StatusSuccess,
			Title:   TitleDateFormat,
			Message: fmt.Sprintf("Valid date: %s", r.Date),
		})
		return
	}
	report.Add(models.CheckResult{
		Status:  models.StatusError,
		Title:   TitleDateFormat,
		Message: fmt.Sprintf("Invalid date format: %s", r.Date),
	})
}

func (e *Engine) checkAmount(r models.Receipt, report *models.ValidationReport) {
	amount := r.AmountValue()
	if amount.IsPositive() {
		report.Add(models.CheckResult{
			Status:  models.StatusSuccess,
			Title:   TitleTotalAmount,
			Message: fmt.Sprintf("Amount %s is valid", amount.StringFixed(2)),
		})
		return
	}
	report.Add(models.CheckResult{
		Status:  models.StatusError,
		Title:   TitleTotalAmount,
		Message: "Invalid amount value",
	})
}

// checkTaxRate accepts a record whose effective tax rate lands inside the
// configured band against either candidate subtotal base: amount-tax first,
// then amount itself. Zero tax passes trivially.
func (e *Engine) checkTaxRate(r models.Receipt, report *models.ValidationReport) {
	amount := r.AmountValue()
	tax := r.TaxValue()

	if tax.IsZero() {
		report.Add(models.CheckResult{
			Status:  models.StatusSuccess,
			Title:   TitleTaxRate,
			Message: "No tax applied",
		})
		return
	}

	for _, base := range []decimal.Decimal{amount.Sub(tax), amount} {
		if !base.IsPositive() {
			continue
		}
		rate := tax.Div(base)
		if rate.Sub(e.expectedRate).Abs().LessThanOrEqual(e.tolerance) {
			report.Add(models.CheckResult{
				Status: models.StatusSuccess,
				Title:  TitleTaxRate,
				Message: fmt.Sprintf("Tax rate OK (%s%%, Subtotal %s)",
					rate.Mul(decimal.NewFromInt(100)).StringFixed(2), base.StringFixed(2)),
			})
			return
		}
	}

	report.Add(models.CheckResult{
		Status: models.StatusError,
		Title:  TitleTaxRate,
		Message: fmt.Sprintf("Tax mismatch. Expected ~%s%% but got %s on amount %s",
			e.expectedRate.Mul(decimal.NewFromInt(100)).StringFixed(1),
			tax.StringFixed(2), amount.StringFixed(2)),
	})
}

func (e *Engine) checkDuplicate(r models.Receipt, skip bool, report *models.ValidationReport) {
	if skip {
		report.Add(models.CheckResult{
			Status:  models.StatusSuccess,
			Title:   TitleDuplicate,
			Message: "Duplicate check skipped",
		})
		return
	}

	if e.checker == nil {
		report.Add(models.CheckResult{
			Status:  models.StatusError,
			Title:   TitleDuplicate,
			Message: "Duplicate check failed: no receipt store configured",
		})
		return
	}

	exists, err := e.checker.ExistsByBillID(r.BillID)
	if err != nil {
		// Collaborator unavailability surfaces as a check failure, never a fault.
		report.Add(models.CheckResult{
			Status:  models.StatusError,
			Title:   TitleDuplicate,
			Message: fmt.Sprintf("Duplicate check failed: %v", err),
		})
		return
	}
	if exists {
		report.Add(models.CheckResult{
			Status:  models.StatusError,
			Title:   TitleDuplicate,
			Message: "Duplicate receipt found in database",
		})
		return
	}
	report.Add(models.CheckResult{
		Status:  models.StatusSuccess,
		Title:   TitleDuplicate,
		Message: "No duplicate found",
	})
}
