// Package categorizer assigns a spending category to an extracted receipt
// using, in order:
// 1. Keyword matching of the vendor name against the category keyword sets
// 2. Keyword matching of the full receipt text
// 3. AI-based categorization using the Gemini model as an optional fallback
package categorizer

import (
	"context"
	"regexp"
	"strings"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/logging"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
)

// Categorizer classifies receipts into spending categories. The category
// table is loaded once at construction and read-only afterwards, so a single
// instance is safe for concurrent callers.
type Categorizer struct {
	categories []models.CategoryConfig
	matchers   []categoryMatcher
	aiClient   AIClient
	logger     logging.Logger
}

// categoryMatcher precompiles one category's keywords. Keywords match on
// word boundaries: "mart" must not trip on "Walmart", "fun" not on "refund".
type categoryMatcher struct {
	name     string
	keywords []string
	patterns []*regexp.Regexp
}

func compileMatchers(categories []models.CategoryConfig) []categoryMatcher {
	matchers := make([]categoryMatcher, 0, len(categories))
	for _, cat := range categories {
		m := categoryMatcher{name: cat.Name, keywords: cat.Keywords}
		for _, kw := range cat.Keywords {
			m.patterns = append(m.patterns, keywordPattern(kw))
		}
		matchers = append(matchers, m)
	}
	return matchers
}

func keywordPattern(keyword string) *regexp.Regexp {
	p := regexp.QuoteMeta(strings.ToLower(keyword))
	// \b only applies where the keyword edge is a word character; keywords
	// like "dr." end on punctuation and anchor only at the front.
	if startsWithWordChar(keyword) {
		p = `\b` + p
	}
	if endsWithWordChar(keyword) {
		p += `\b`
	}
	return regexp.MustCompile(`(?i)` + p)
}

func startsWithWordChar(s string) bool {
	return s != "" && isWordChar(s[0])
}

func endsWithWordChar(s string) bool {
	return s != "" && isWordChar(s[len(s)-1])
}

func isWordChar(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// NewCategorizer creates a Categorizer backed by the given store. aiClient
// may be nil to disable the AI fallback. When the store cannot provide
// categories, the built-in table is used.
func NewCategorizer(store CategoryStoreInterface, aiClient AIClient, logger logging.Logger) *Categorizer {
	if logger == nil {
		logger = logging.GetLogger()
	}

	c := &Categorizer{
		aiClient: aiClient,
		logger:   logger,
	}

	if store != nil {
		cats, err := store.LoadCategories()
		if err == nil && len(cats) > 0 {
			c.categories = cats
		} else if err != nil {
			logger.WithError(err).Warn("Could not load categories from store, using built-in table")
		}
	}
	if len(c.categories) == 0 {
		c.categories = DefaultCategories()
	}
	c.matchers = compileMatchers(c.categories)

	return c
}

// Categorize maps a receipt to a category name. The vendor name is checked
// first against every category's keyword set; vendor identity is a stronger
// signal than incidental words in the receipt body. Only when the vendor
// misses is the full text checked. Returns "Uncategorized" when nothing
// matches and the AI fallback is disabled or fails.
func (c *Categorizer) Categorize(ctx context.Context, text, vendor string) string {
	vendorLower := strings.ToLower(vendor)
	textLower := strings.ToLower(text)

	if cat, keyword, ok := c.matchKeywords(vendorLower); ok {
		c.logger.WithFields(
			logging.Field{Key: logging.FieldVendor, Value: vendor},
			logging.Field{Key: logging.FieldKeyword, Value: keyword},
			logging.Field{Key: logging.FieldCategory, Value: cat},
		).Debug("Categorized by vendor keyword")
		return cat
	}

	if cat, keyword, ok := c.matchKeywords(textLower); ok {
		c.logger.WithFields(
			logging.Field{Key: logging.FieldKeyword, Value: keyword},
			logging.Field{Key: logging.FieldCategory, Value: cat},
		).Debug("Categorized by receipt text keyword")
		return cat
	}

	if c.aiClient != nil {
		if cat, err := c.aiClient.Categorize(ctx, vendor, text); err == nil && c.isKnownCategory(cat) {
			c.logger.WithFields(
				logging.Field{Key: logging.FieldVendor, Value: vendor},
				logging.Field{Key: logging.FieldCategory, Value: cat},
				logging.Field{Key: logging.FieldStrategy, Value: "ai"},
			).Debug("Categorized by AI fallback")
			return cat
		} else if err != nil {
			c.logger.WithError(err).Warn("AI categorization failed")
		}
	}

	return models.CategoryUncategorized
}

// matchKeywords checks the haystack against every category's keyword set in
// table order. The first matching category wins. Matching is case-insensitive
// and word-boundary aware.
func (c *Categorizer) matchKeywords(haystack string) (category, keyword string, ok bool) {
	if strings.TrimSpace(haystack) == "" {
		return "", "", false
	}
	for _, m := range c.matchers {
		for i, p := range m.patterns {
			if p.MatchString(haystack) {
				return m.name, m.keywords[i], true
			}
		}
	}
	return "", "", false
}

func (c *Categorizer) isKnownCategory(name string) bool {
	for _, cat := range c.categories {
		if cat.Name == name {
			return true
		}
	}
	return name == models.CategoryUncategorized
}

// DefaultCategories returns the built-in category keyword table, in priority
// order. Categories configured in the store replace this table entirely.
func DefaultCategories() []models.CategoryConfig {
	return []models.CategoryConfig{
		{Name: models.CategoryUtility, Keywords: []string{
			"power", "electricity", "water", "gas", "bescom", "tata power", "bill", "supply", "electric",
		}},
		{Name: models.CategoryFood, Keywords: []string{
			"restaurant", "cafe", "kitchen", "hotel", "dining", "burger", "pizza", "swiggy", "zomato",
			"coffee", "tea", "bistro", "foods",
		}},
		{Name: models.CategoryGrocery, Keywords: []string{
			"mart", "super market", "fresh", "store", "vegetable", "fruit", "market", "grocer", "kirana", "basket",
		}},
		{Name: models.CategoryMedical, Keywords: []string{
			"pharmacy", "hospital", "clinic", "doctor", "dr.", "medplus", "apollo", "pharma", "health", "medical",
		}},
		{Name: models.CategoryTravel, Keywords: []string{
			"fuel", "petrol", "diesel", "station", "pump", "uber", "ola", "rapido", "ride", "trip", "travel",
		}},
		{Name: models.CategoryShopping, Keywords: []string{
			"retail", "fashion", "clothing", "trends", "zudio", "apparel", "garment", "mall", "shoe", "footwear",
		}},
		{Name: models.CategoryEntertainment, Keywords: []string{
			"movie", "cinema", "theatre", "show", "entertainment", "game", "fun",
		}},
	}
}
