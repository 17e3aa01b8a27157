package controllers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "storefront-service/errors"
	"storefront-service/models"
	"storefront-service/services"
)

// --- Mock Service ---

type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) CreateSession(ctx context.Context, req models.CheckoutRequest) (*services.CheckoutResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CheckoutResult), args.Error(1)
}

// --- Tests ---

func TestCreateSessionEndpoint(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(svc *MockCheckoutService) *gin.Engine {
		router := gin.New()
		router.POST("/api/checkout/create-session", NewCheckoutController(svc).CreateSession)
		return router
	}

	t.Run("Success - mock checkout url with note", func(t *testing.T) {
		mockService := new(MockCheckoutService)
		mockService.On("CreateSession", mock.Anything, mock.AnythingOfType("models.CheckoutRequest")).
			Return(&services.CheckoutResult{
				CheckoutURL: "https://checkout.mock/abc123",
				OrderID:     "abc123",
				Note:        "Stripe not configured; using mock checkout URL. Set STRIPE_SECRET_KEY to enable real payments.",
			}, nil).Once()

		recorder := postJSON(newRouter(mockService), "/api/checkout/create-session",
			`{"items": [{"product_id": "p1", "quantity": 2}]}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"checkout_url":"https://checkout.mock/abc123"`)
		assert.Contains(t, recorder.Body.String(), `"order_id":"abc123"`)
		assert.Contains(t, recorder.Body.String(), `"note"`)
		mockService.AssertExpectations(t)
	})

	t.Run("Success - provider url omits note", func(t *testing.T) {
		mockService := new(MockCheckoutService)
		mockService.On("CreateSession", mock.Anything, mock.Anything).
			Return(&services.CheckoutResult{
				CheckoutURL: "https://checkout.stripe.com/pay/cs_test",
				OrderID:     "abc123",
			}, nil).Once()

		recorder := postJSON(newRouter(mockService), "/api/checkout/create-session",
			`{"items": [{"product_id": "p1", "quantity": 1}], "customer_email": "buyer@example.com"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.NotContains(t, recorder.Body.String(), `"note"`)
	})

	t.Run("Failure - empty cart - 400", func(t *testing.T) {
		mockService := new(MockCheckoutService)
		mockService.On("CreateSession", mock.Anything, mock.Anything).
			Return(nil, apperrors.BadRequest("No items provided")).Once()

		recorder := postJSON(newRouter(mockService), "/api/checkout/create-session", `{"items": []}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "No items provided")
	})

	t.Run("Failure - unknown product - 404", func(t *testing.T) {
		mockService := new(MockCheckoutService)
		mockService.On("CreateSession", mock.Anything, mock.Anything).
			Return(nil, apperrors.NotFound("Product not found: p404")).Once()

		recorder := postJSON(newRouter(mockService), "/api/checkout/create-session",
			`{"items": [{"product_id": "p404", "quantity": 1}]}`)

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Product not found: p404")
	})

	t.Run("Failure - invalid customer email - 400", func(t *testing.T) {
		mockService := new(MockCheckoutService)

		recorder := postJSON(newRouter(mockService), "/api/checkout/create-session",
			`{"items": [{"product_id": "p1", "quantity": 1}], "customer_email": "nope"}`)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockService.AssertNotCalled(t, "CreateSession")
	})
}
