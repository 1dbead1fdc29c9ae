package models

// TemplateConfig represents one vendor template as configured in the
// templates YAML file. Patterns are regular expressions; empty strings mean
// the template does not extract that field.
type TemplateConfig struct {
	Name            string `yaml:"name"`
	VendorPattern   string `yaml:"vendor_pattern"`
	DatePattern     string `yaml:"date_pattern,omitempty"`
	TotalPattern    string `yaml:"total_pattern,omitempty"`
	TaxPattern      string `yaml:"tax_pattern,omitempty"`
	BillIDPattern   string `yaml:"bill_id_pattern,omitempty"`
	LineItemPattern string `yaml:"line_item_pattern,omitempty"`
}

// TemplatesConfig represents the structure of the templates YAML file.
// Order is significant: templates are tried first to last.
type TemplatesConfig struct {
	Templates []TemplateConfig `yaml:"templates"`
}
