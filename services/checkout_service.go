package services

import (
	"context"

	"go.uber.org/zap"

	"storefront-service/errors"
	"storefront-service/models"
	"storefront-service/repository"
)

const orderCollection = "order"

const mockCheckoutNote = "Stripe not configured; using mock checkout URL. Set STRIPE_SECRET_KEY to enable real payments."

// ProductCatalog is the catalog read surface the checkout needs.
type ProductCatalog interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// PaymentProvider creates hosted checkout sessions with an external provider.
type PaymentProvider interface {
	IsConfigured() bool
	CreateCheckoutSession(lines []CheckoutLine, customerEmail, successURL, cancelURL string) (url, sessionID string, err error)
}

// CheckoutResult is returned for every successful checkout, real or mock.
type CheckoutResult struct {
	CheckoutURL string
	OrderID     string
	Note        string
}

// CheckoutService prices a cart against the catalog, persists the order, and
// hands off to the payment provider when one is configured.
type CheckoutService struct {
	store      repository.DocumentStore
	catalog    ProductCatalog
	payments   PaymentProvider
	successURL string
	cancelURL  string
}

func NewCheckoutService(
	store repository.DocumentStore,
	catalog ProductCatalog,
	payments PaymentProvider,
	successURL, cancelURL string,
) *CheckoutService {
	return &CheckoutService{
		store:      store,
		catalog:    catalog,
		payments:   payments,
		successURL: successURL,
		cancelURL:  cancelURL,
	}
}

// CreateSession runs the checkout workflow: validate the cart, price it from
// a catalog snapshot, persist the order, then attempt a provider session.
// The cart is rejected before any persistence; a provider failure after the
// order exists degrades to a mock checkout URL, never an error.
func (s *CheckoutService) CreateSession(ctx context.Context, req models.CheckoutRequest) (*CheckoutResult, error) {
	if len(req.Items) == 0 {
		return nil, errors.BadRequest("No items provided")
	}

	products, err := s.catalog.ListProducts(ctx)
	if err != nil {
		return nil, errors.Store("Database error: "+err.Error(), err)
	}
	byID := make(map[string]models.Product, len(products))
	for _, p := range products {
		byID[p.ID.Hex()] = p
	}

	// Resolve every line before touching the store; a single unknown
	// product aborts the whole checkout.
	var amountTotal int64
	totalQuantity := 0
	lines := make([]CheckoutLine, 0, len(req.Items))
	for _, item := range req.Items {
		prod, ok := byID[item.ProductID]
		if !ok {
			return nil, errors.NotFound("Product not found: " + item.ProductID)
		}
		qty := item.Quantity
		if qty < 1 {
			qty = 1
		}
		amountTotal += prod.PriceCents * int64(qty)
		totalQuantity += qty
		lines = append(lines, CheckoutLine{
			Name:            prod.Title,
			UnitAmountCents: prod.PriceCents,
			Currency:        currencyOrDefault(prod.Currency),
			Quantity:        int64(qty),
		})
	}

	order := models.Order{
		ProductID:        req.Items[0].ProductID,
		Quantity:         totalQuantity,
		AmountTotalCents: amountTotal,
		Currency:         "usd",
		Status:           models.OrderStatusCreated,
		CustomerEmail:    req.CustomerEmail,
	}
	orderID, err := s.store.Create(ctx, orderCollection, order)
	if err != nil {
		return nil, errors.Store("Database error: "+err.Error(), err)
	}

	if s.payments != nil && s.payments.IsConfigured() {
		url, _, err := s.payments.CreateCheckoutSession(
			lines,
			req.CustomerEmail,
			s.successURL+"?order_id="+orderID,
			s.cancelURL+"?order_id="+orderID,
		)
		if err == nil {
			return &CheckoutResult{CheckoutURL: url, OrderID: orderID}, nil
		}
		// Order is already persisted; degrade to the mock URL.
		zap.L().Warn("checkout: provider session failed, falling back",
			zap.String("order_id", orderID),
			zap.Error(err),
		)
	}

	return &CheckoutResult{
		CheckoutURL: "https://checkout.mock/" + orderID,
		OrderID:     orderID,
		Note:        mockCheckoutNote,
	}, nil
}

func currencyOrDefault(currency string) string {
	if currency == "" {
		return "usd"
	}
	return currency
}
