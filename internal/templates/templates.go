// Package templates holds the registry of vendor-specific extraction
// templates. A template pins down where a known vendor prints its date,
// total, tax, and receipt number, so extraction can skip the generic
// heuristics for those fields.
package templates

import (
	"fmt"
	"regexp"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
)

// Template is a compiled vendor-specific extraction ruleset.
// Only Vendor is mandatory; nil patterns mean the template does not
// extract that field.
type Template struct {
	Name     string
	Vendor   *regexp.Regexp
	Date     *regexp.Regexp
	Total    *regexp.Regexp
	Tax      *regexp.Regexp
	BillID   *regexp.Regexp
	LineItem *regexp.Regexp
}

// Registry is an ordered, read-only list of templates. Order is a deliberate
// priority ordering: Match returns the first template whose vendor pattern
// hits, so more specific templates must come first. Safe for concurrent use.
type Registry struct {
	templates []Template
}

// NewRegistry builds a registry from the given templates, in order.
func NewRegistry(tmpls []Template) *Registry {
	return &Registry{templates: tmpls}
}

// Default returns a registry holding the built-in vendor templates.
func Default() *Registry {
	return NewRegistry(builtin())
}

// DefaultWith returns a registry with the built-in templates followed by the
// given extras. Built-ins keep priority; extras are tried in their own order.
func DefaultWith(extra []Template) *Registry {
	return NewRegistry(append(builtin(), extra...))
}

// Match scans the ordered template list and returns the first template whose
// vendor pattern matches anywhere in text. Absence of a match is a normal
// outcome and returns nil: extraction falls through to generic heuristics.
func (r *Registry) Match(text string) *Template {
	for i := range r.templates {
		if r.templates[i].Vendor.MatchString(text) {
			return &r.templates[i]
		}
	}
	return nil
}

// Len returns the number of registered templates.
func (r *Registry) Len() int {
	return len(r.templates)
}

// Compile builds a Template from its YAML configuration form.
func Compile(cfg models.TemplateConfig) (Template, error) {
	if cfg.Name == "" {
		return Template{}, fmt.Errorf("template has no name")
	}
	if cfg.VendorPattern == "" {
		return Template{}, fmt.Errorf("template %q has no vendor_pattern", cfg.Name)
	}

	t := Template{Name: cfg.Name}

	var err error
	if t.Vendor, err = regexp.Compile(cfg.VendorPattern); err != nil {
		return Template{}, fmt.Errorf("template %q: bad vendor_pattern: %w", cfg.Name, err)
	}
	for _, p := range []struct {
		pattern string
		dst     **regexp.Regexp
		field   string
	}{
		{cfg.DatePattern, &t.Date, "date_pattern"},
		{cfg.TotalPattern, &t.Total, "total_pattern"},
		{cfg.TaxPattern, &t.Tax, "tax_pattern"},
		{cfg.BillIDPattern, &t.BillID, "bill_id_pattern"},
		{cfg.LineItemPattern, &t.LineItem, "line_item_pattern"},
	} {
		if p.pattern == "" {
			continue
		}
		if *p.dst, err = regexp.Compile(p.pattern); err != nil {
			return Template{}, fmt.Errorf("template %q: bad %s: %w", cfg.Name, p.field, err)
		}
	}

	return t, nil
}

// CompileAll compiles a slice of template configurations, preserving order.
func CompileAll(cfgs []models.TemplateConfig) ([]Template, error) {
	tmpls := make([]Template, 0, len(cfgs))
	for _, cfg := range cfgs {
		t, err := Compile(cfg)
		if err != nil {
			return nil, err
		}
		tmpls = append(tmpls, t)
	}
	return tmpls, nil
}

// builtin returns the built-in vendor templates. These cover common US retail
// layouts; site-specific templates can be appended from the templates YAML.
func builtin() []Template {
	return []Template{
		{
			Name:   "Walmart",
			Vendor: regexp.MustCompile(`(?i)walmart`),
			Date:   regexp.MustCompile(`(\d{2}/\d{2}/\d{2,4})`),
			Total:  regexp.MustCompile(`(?i)\btotal\s+due\s+\$?\s*(\d+\.\d{2})`),
			Tax:    regexp.MustCompile(`(?i)tax\s+\d+\s*\$?\s*(\d+\.\d{2})`),
			BillID: regexp.MustCompile(`(?i)tc#\s*(\d+)`),
		},
		{
			Name:   "Target",
			Vendor: regexp.MustCompile(`(?i)target`),
			Date:   regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`),
			Total:  regexp.MustCompile(`(?i)\btotal\s+\$?\s*(\d+\.\d{2})`),
			BillID: regexp.MustCompile(`(?i)receipt#\s*([a-zA-Z0-9-]+)`),
		},
		{
			Name:   "Costco",
			Vendor: regexp.MustCompile(`(?i)costco`),
			Date:   regexp.MustCompile(`(\d{2}/\d{2}/\d{4})`),
			Total:  regexp.MustCompile(`(?i)total\s+owned\s+\$?\s*(\d+\.\d{2})`),
		},
		{
			Name:   "Amazon",
			Vendor: regexp.MustCompile(`(?i)amazon`),
			Date:   regexp.MustCompile(`(?i)shipped on\s+(\w+\s+\d{1,2},\s+\d{4})`),
			Total:  regexp.MustCompile(`(?i)grand total:\s*\$?\s*(\d+\.\d{2})`),
			BillID: regexp.MustCompile(`(?i)order #\s*([0-9-]{10,})`),
		},
	}
}
