package categorizer

import "context"

// AIClient defines the interface for AI-based categorization services.
// This abstraction allows the core categorization logic to be tested
// independently of external API calls and provides flexibility in choosing
// AI providers.
type AIClient interface {
	// Categorize returns a category name for the given vendor and receipt
	// text, or an error if the service is unavailable or the answer is
	// unusable. Implementations interact with an external AI service
	// (e.g. Google Gemini).
	Categorize(ctx context.Context, vendor, text string) (string, error)
}
