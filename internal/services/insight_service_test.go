package services_test

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tienda/internal/models"
	"tienda/internal/services"
	"tienda/pkg/llm"
)

// MockProvider is a mock implementation of llm.Client.
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Name() string {
	return "mock"
}

func (m *MockProvider) Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	args := m.Called(ctx, systemPrompt, userPrompt)
	return args.String(0), args.Error(1)
}

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishInsightEvent(event map[string]interface{}) error {
	args := m.Called(event)
	return args.Error(0)
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func charizardProduct() *models.Product {
	return &models.Product{
		ID:             "sku-000130",
		Title:          "Pokemon Charizard VMAX Card",
		PriceSuggested: 8999,
		Currency:       "MXN",
		Stock:          2,
		Attributes:     models.ProductAttributes{"limited_edition": true},
	}
}

const charizardInsightJSON = `{
	"title": "Charizard VMAX Rainbow Rare",
	"pitch": "An ultra-rare rainbow secret rare in mint condition.",
	"bullets": ["Rainbow Rare from Champions Path", "Professionally graded", "Only 2 left in stock"],
	"recommendation": "Perfect for serious TCG collectors and investors.",
	"stock_text": "Only 2 left, this limited edition card will not last long!",
	"whatsapp_text": "Hi! I am interested in the Pokemon Charizard VMAX Card (SKU: sku-000130). Is it still available?"
}`

func TestInsightService_AnalyzeSuccess(t *testing.T) {
	provider := new(MockProvider)
	service := services.NewInsightService(provider, nil, testLogger(), time.Second)

	// The prompt must embed the serialized product, including its id, and
	// interpolate the stock count into the required output shape.
	provider.On("Complete", mock.Anything, mock.Anything, mock.MatchedBy(func(userPrompt string) bool {
		return strings.Contains(userPrompt, "sku-000130") &&
			strings.Contains(userPrompt, "(based on stock: 2)") &&
			strings.Contains(userPrompt, "whatsapp_text")
	})).Return(charizardInsightJSON, nil).Once()

	result, err := service.Analyze(context.Background(), charizardProduct())

	assert.NoError(t, err)
	assert.NotEmpty(t, result.Bullets)
	assert.Contains(t, result.StockText, "limited")
	assert.Contains(t, result.WhatsappText, "sku-000130")
	provider.AssertExpectations(t)
}

func TestInsightService_MissingProduct(t *testing.T) {
	provider := new(MockProvider)
	service := services.NewInsightService(provider, nil, testLogger(), time.Second)

	result, err := service.Analyze(context.Background(), nil)

	assert.Nil(t, result)
	assert.ErrorIs(t, err, services.ErrMissingProduct)
	provider.AssertNotCalled(t, "Complete")
}

func TestInsightService_ProviderStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		want       error
	}{
		{"credits exhausted", 402, services.ErrProviderCredits},
		{"rate limited", 429, services.ErrProviderRateLimited},
		{"service unavailable", 503, services.ErrProviderFailure},
		{"bad gateway", 502, services.ErrProviderFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockProvider)
			apiErr := &llm.APIError{Provider: "mock", StatusCode: tt.statusCode}
			provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", apiErr).Once()

			service := services.NewInsightService(provider, nil, testLogger(), time.Second)
			_, err := service.Analyze(context.Background(), charizardProduct())

			assert.ErrorIs(t, err, tt.want)
			provider.AssertExpectations(t)
		})
	}
}

func TestInsightService_TransportFailure(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("", fmt.Errorf("connection refused")).Once()

	service := services.NewInsightService(provider, nil, testLogger(), time.Second)
	_, err := service.Analyze(context.Background(), charizardProduct())

	assert.ErrorIs(t, err, services.ErrProviderFailure)
}

func TestInsightService_UnparseableContent(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"plain prose", "This card is amazing, you should buy it!"},
		{"empty content", ""},
		{"truncated json", `{"title": "Charizard`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := new(MockProvider)
			provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(tt.content, nil).Once()

			service := services.NewInsightService(provider, nil, testLogger(), time.Second)
			result, err := service.Analyze(context.Background(), charizardProduct())

			assert.Nil(t, result)
			assert.ErrorIs(t, err, services.ErrBadProviderResponse)
		})
	}
}

func TestInsightService_AcceptsFencedJSON(t *testing.T) {
	provider := new(MockProvider)
	fenced := "```json\n" + charizardInsightJSON + "\n```"
	provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(fenced, nil).Once()

	service := services.NewInsightService(provider, nil, testLogger(), time.Second)
	result, err := service.Analyze(context.Background(), charizardProduct())

	assert.NoError(t, err)
	assert.Equal(t, "Charizard VMAX Rainbow Rare", result.Title)
}

func TestInsightService_PublishesDiagnosticEvents(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(charizardInsightJSON, nil).Once()

	events := new(MockEventPublisher)
	events.On("PublishInsightEvent", mock.MatchedBy(func(event map[string]interface{}) bool {
		return event["product_id"] == "sku-000130" && event["status"] == "succeeded"
	})).Return(nil).Once()

	service := services.NewInsightService(provider, events, testLogger(), time.Second)
	_, err := service.Analyze(context.Background(), charizardProduct())

	assert.NoError(t, err)
	events.AssertExpectations(t)
}

func TestInsightService_EventFailureDoesNotFailRequest(t *testing.T) {
	provider := new(MockProvider)
	provider.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(charizardInsightJSON, nil).Once()

	events := new(MockEventPublisher)
	events.On("PublishInsightEvent", mock.Anything).Return(fmt.Errorf("broker unavailable")).Once()

	service := services.NewInsightService(provider, events, testLogger(), time.Second)
	result, err := service.Analyze(context.Background(), charizardProduct())

	assert.NoError(t, err)
	assert.NotNil(t, result)
}
