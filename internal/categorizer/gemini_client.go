package categorizer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/logging"
	"github.com/Tisha0129/Receipt-and-Invoice-Digitizer/internal/models"
)

// GeminiClient implements the AIClient interface using the Google Gemini API.
// The underlying client is created lazily on first use so that construction
// never requires network access or an API key.
type GeminiClient struct {
	apiKey    string
	modelName string
	timeout   time.Duration
	logger    logging.Logger

	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiClient creates a GeminiClient. The API key is required at call
// time, not at construction.
func NewGeminiClient(apiKey, modelName string, timeout time.Duration, logger logging.Logger) *GeminiClient {
	if logger == nil {
		logger = logging.GetLogger()
	}
	if modelName == "" {
		modelName = "gemini-2.0-flash"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &GeminiClient{
		apiKey:    apiKey,
		modelName: modelName,
		timeout:   timeout,
		logger:    logger,
	}
}

// ensureClient initializes the Gemini client on first use.
func (c *GeminiClient) ensureClient(ctx context.Context) error {
	if c.client != nil {
		return nil
	}
	if c.apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	c.client = client
	c.model = client.GenerativeModel(c.modelName)
	return nil
}

// Categorize asks the Gemini model to place the receipt into one of the
// known category names. The model is instructed to answer with the bare
// category name; anything else is rejected by the caller.
func (c *GeminiClient) Categorize(ctx context.Context, vendor, text string) (string, error) {
	if err := c.ensureClient(ctx); err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	prompt := fmt.Sprintf(
		"Classify this retail receipt into exactly one of the following categories: %s.\n"+
			"Vendor: %s\n"+
			"Receipt text:\n%s\n"+
			"Answer with the category name only.",
		strings.Join(models.KnownCategories(), ", "), vendor, truncate(text, 2000),
	)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini request failed: %w", err)
	}

	answer := firstTextPart(resp)
	if answer == "" {
		return "", fmt.Errorf("gemini returned no usable content")
	}

	category := strings.TrimSpace(answer)
	c.logger.WithFields(
		logging.Field{Key: logging.FieldVendor, Value: vendor},
		logging.Field{Key: logging.FieldCategory, Value: category},
	).Debug("Gemini categorization answer")

	return category, nil
}

// Close releases the underlying API client, if one was created.
func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	err := c.client.Close()
	c.client = nil
	c.model = nil
	return err
}

func firstTextPart(resp *genai.GenerateContentResponse) string {
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if txt, ok := part.(genai.Text); ok {
				return string(txt)
			}
		}
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
