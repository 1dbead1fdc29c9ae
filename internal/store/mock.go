package store

import (
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
)

// MockConfigStore is a mock implementation of the configuration store for
// testing.
type MockConfigStore struct {
	Categories []models.CategoryConfig
	Templates  []models.TemplateConfig

	LoadCategoriesError error
	LoadTemplatesError  error
}

// LoadCategories returns the mock categories.
func (m *MockConfigStore) LoadCategories() ([]models.CategoryConfig, error) {
	if m.LoadCategoriesError != nil {
		return nil, m.LoadCategoriesError
	}
	return m.Categories, nil
}

// LoadTemplates returns the mock template configurations.
func (m *MockConfigStore) LoadTemplates() ([]models.TemplateConfig, error) {
	if m.LoadTemplatesError != nil {
		return nil, m.LoadTemplatesError
	}
	return m.Templates, nil
}

// MockExistenceChecker is a canned duplicate-check collaborator for testing.
type MockExistenceChecker struct {
	Existing map[string]bool
	Err      error
	Calls    []string
}

// ExistsByBillID records the call and returns the canned answer.
func (m *MockExistenceChecker) ExistsByBillID(billID string) (bool, error) {
	m.Calls = append(m.Calls, billID)
	if m.Err != nil {
		return false, m.Err
	}
	return m.Existing[billID], nil
}
