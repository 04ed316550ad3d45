package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"tienda/internal/models"
	"tienda/pkg/llm"
)

// Error kinds surfaced by the insight gateway. Handlers map these onto HTTP
// statuses; callers test them with errors.Is.
var (
	// ErrMissingProduct means the request carried no product payload.
	// Terminal: retrying the same request cannot succeed.
	ErrMissingProduct = errors.New("product data is required")
	// ErrProviderCredits means the provider's quota or billing is exhausted.
	ErrProviderCredits = errors.New("provider credits exhausted")
	// ErrProviderRateLimited means the provider rejected the call with a
	// rate limit; the user may retry after a pause.
	ErrProviderRateLimited = errors.New("provider rate limited")
	// ErrProviderFailure covers transport failures and any other non-2xx
	// provider reply.
	ErrProviderFailure = errors.New("provider request failed")
	// ErrBadProviderResponse means the provider answered but the content was
	// missing or not the expected JSON shape.
	ErrBadProviderResponse = errors.New("provider returned no usable content")
)

const insightSystemPrompt = `You are an enthusiastic product expert for a geek/otaku store. Your job is to analyze products and create engaging, informative descriptions that appeal to collectors and fans. Always be accurate about the product details provided.`

const insightUserPromptFormat = `Analyze this product and provide an engaging description:

Product Data:
%s

Please provide a JSON response with the following structure:
{
  "title": "An exciting, catchy title for this product",
  "pitch": "A 2-3 sentence compelling pitch that highlights why this product is special",
  "bullets": ["3-5 key features or highlights as bullet points"],
  "recommendation": "A personalized recommendation explaining who would love this product and why",
  "stock_text": "A natural statement about stock availability (based on stock: %d)",
  "whatsapp_text": "A pre-formatted message for WhatsApp including product name, SKU, and a friendly inquiry"
}

Important:
- Be enthusiastic but accurate
- Reference the actual product attributes provided
- For limited_edition items, emphasize rarity
- Format prices in Mexican Pesos (MXN)
- Make the WhatsApp text natural and conversational`

// EventPublisher publishes diagnostic events about insight requests. The
// gateway treats publishing as best-effort: a broker failure never fails the
// client request.
type EventPublisher interface {
	PublishInsightEvent(event map[string]interface{}) error
}

// InsightService forwards a product to a text-generation provider and returns
// the provider's structured promotional summary. Stateless: every call is an
// independent single-shot request with no caching and no automatic retry.
type InsightService struct {
	provider llm.Client
	events   EventPublisher
	log      *logrus.Logger
	timeout  time.Duration
}

// NewInsightService creates a new InsightService. events may be nil when no
// broker is configured.
func NewInsightService(provider llm.Client, events EventPublisher, log *logrus.Logger, timeout time.Duration) *InsightService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &InsightService{
		provider: provider,
		events:   events,
		log:      log,
		timeout:  timeout,
	}
}

// Analyze builds the analysis prompt for product, performs one provider call
// and returns the parsed result. The outbound call is bounded by the service
// timeout.
func (s *InsightService) Analyze(ctx context.Context, product *models.Product) (result *models.InsightResult, err error) {
	if product == nil {
		return nil, ErrMissingProduct
	}

	start := time.Now()
	defer func() {
		s.publishEvent(product.ID, start, err)
	}()

	serialized, merr := json.MarshalIndent(product, "", "  ")
	if merr != nil {
		return nil, fmt.Errorf("failed to serialize product: %w", merr)
	}
	userPrompt := fmt.Sprintf(insightUserPromptFormat, serialized, product.Stock)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	raw, cerr := s.provider.Complete(ctx, insightSystemPrompt, userPrompt)
	if cerr != nil {
		err = s.classifyProviderError(cerr)
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"provider":   s.provider.Name(),
		"product_id": product.ID,
		"bytes":      len(raw),
	}).Debug("provider response received")

	parsed, perr := parseInsight(raw)
	if perr != nil {
		s.log.WithFields(logrus.Fields{
			"provider":   s.provider.Name(),
			"product_id": product.ID,
		}).Warn("provider content was not valid insight JSON")
		err = perr
		return nil, err
	}
	return parsed, nil
}

// classifyProviderError maps provider failures onto the gateway's error kinds.
// Provider bindings report non-2xx upstream replies as *llm.APIError; 402 and
// 429 get their own kinds, everything else (including timeouts) is a general
// provider failure.
func (s *InsightService) classifyProviderError(err error) error {
	var apiErr *llm.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.StatusCode {
		case 402:
			return fmt.Errorf("%w: %v", ErrProviderCredits, err)
		case 429:
			return fmt.Errorf("%w: %v", ErrProviderRateLimited, err)
		}
		return fmt.Errorf("%w: %v", ErrProviderFailure, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: provider call timed out: %v", ErrProviderFailure, err)
	}
	return fmt.Errorf("%w: %v", ErrProviderFailure, err)
}

// parseInsight applies the strict parsing policy: the provider content must be
// a JSON object in the documented shape. Code fences around the object are
// tolerated since JSON-mode models occasionally add them.
func parseInsight(raw string) (*models.InsightResult, error) {
	content := strings.TrimSpace(raw)
	if content == "" {
		return nil, ErrBadProviderResponse
	}
	content = stripCodeFence(content)

	var result models.InsightResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadProviderResponse, err)
	}
	if result.Title == "" && result.Pitch == "" && len(result.Bullets) == 0 {
		return nil, ErrBadProviderResponse
	}
	return &result, nil
}

// stripCodeFence removes a surrounding ``` or ```json fence, if present.
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// publishEvent emits a diagnostic event for one analysis cycle. Failures are
// logged and swallowed: insight diagnostics must never break the request.
func (s *InsightService) publishEvent(productID string, start time.Time, analyzeErr error) {
	if s.events == nil {
		return
	}
	status := "succeeded"
	if analyzeErr != nil {
		status = "failed"
	}
	event := map[string]interface{}{
		"product_id":  productID,
		"provider":    s.provider.Name(),
		"status":      status,
		"duration_ms": time.Since(start).Milliseconds(),
	}
	if err := s.events.PublishInsightEvent(event); err != nil {
		s.log.WithError(err).Warn("failed to publish insight event")
	}
}
