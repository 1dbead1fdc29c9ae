package categorizer

import (
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
)

// CategoryStoreInterface defines the category persistence operations the
// categorizer depends on. The concrete implementation lives in the store
// package; this abstraction keeps the categorizer testable without files.
type CategoryStoreInterface interface {
	// LoadCategories returns the ordered category keyword table.
	LoadCategories() ([]models.CategoryConfig, error)
}
