package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"storefront-service/models"
)

// --- Mock Service ---

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) EnsureSeeded(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockCatalogService) ListProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

// --- Tests ---

func TestGetProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	getProducts := func(svc *MockCatalogService) *httptest.ResponseRecorder {
		router := gin.New()
		router.GET("/api/products", NewProductController(svc).GetProducts)
		req, _ := http.NewRequest(http.MethodGet, "/api/products", nil)
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)
		return recorder
	}

	t.Run("Success - seeds then lists", func(t *testing.T) {
		mockService := new(MockCatalogService)
		mockService.On("EnsureSeeded", mock.Anything).Once()
		mockService.On("ListProducts", mock.Anything).
			Return([]models.Product{{Title: "Citrus Bloom", PriceCents: 5900, Currency: "usd"}}, nil).Once()

		recorder := getProducts(mockService)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Citrus Bloom")
		mockService.AssertExpectations(t)
	})

	t.Run("Success - empty catalog renders empty list", func(t *testing.T) {
		mockService := new(MockCatalogService)
		mockService.On("EnsureSeeded", mock.Anything).Once()
		mockService.On("ListProducts", mock.Anything).Return([]models.Product{}, nil).Once()

		recorder := getProducts(mockService)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), `"products":[]`)
	})

	t.Run("Failure - store error - 500", func(t *testing.T) {
		mockService := new(MockCatalogService)
		mockService.On("EnsureSeeded", mock.Anything).Once()
		mockService.On("ListProducts", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		recorder := getProducts(mockService)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	})
}
