package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/flexprice/storefront/internal/api/dto"
	"github.com/flexprice/storefront/internal/cache"
	"github.com/flexprice/storefront/internal/domain/order"
	"github.com/flexprice/storefront/internal/domain/payment"
	"github.com/flexprice/storefront/internal/domain/tax"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/idempotency"
	"github.com/flexprice/storefront/internal/types"
	"golang.org/x/sync/singleflight"
)

// CheckoutService prices carts and prepares payment for them
type CheckoutService interface {
	Preview(ctx context.Context, req *dto.CheckoutPreviewRequest) (*dto.CheckoutPreviewResponse, error)
	CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error)
}

type checkoutService struct {
	ServiceParams
	inflight *singleflight.Group
}

func NewCheckoutService(params ServiceParams) CheckoutService {
	return &checkoutService{
		ServiceParams: params,
		inflight:      &singleflight.Group{},
	}
}

// billing is who pays and the country the cart is taxed in
type billing struct {
	userID  string
	country string
}

// pricedCart is a cart with its lines priced in the billing currency and a single tax decision
type pricedCart struct {
	userID   string
	lines    []order.LineItem
	decision *tax.Decision
}

func (s *checkoutService) Preview(ctx context.Context, req *dto.CheckoutPreviewRequest) (*dto.CheckoutPreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.resolveBilling(ctx, req)
	if err != nil {
		return nil, err
	}

	cart, err := s.priceCart(ctx, b, req.Items)
	if err != nil {
		return nil, err
	}

	return dto.NewCheckoutPreviewResponse(cart.lines, cart.decision), nil
}

func (s *checkoutService) CreatePaymentIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest) (*dto.PaymentIntentResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	b, err := s.resolveBilling(ctx, &req.CheckoutPreviewRequest)
	if err != nil {
		return nil, err
	}

	key, replayable := s.idempotencyKey(req, b)
	if !replayable {
		return s.createPaymentIntent(ctx, req, b, key)
	}
	cacheKey := cache.GenerateKey(cache.PrefixPaymentIntent, key, b.userID, b.country)

	// joined callers share the provider call, so it must outlive the caller that started it
	sharedCtx := context.WithoutCancel(ctx)
	result, err, shared := s.inflight.Do(cacheKey, func() (interface{}, error) {
		if cached, found := s.Cache.ForceCacheGet(sharedCtx, cacheKey); found {
			if resp, ok := cached.(*dto.PaymentIntentResponse); ok {
				s.Logger.Infow("returning cached payment intent",
					"idempotency_key", key,
					"order_id", resp.OrderID,
				)
				return resp, nil
			}
		}

		resp, err := s.createPaymentIntent(sharedCtx, req, b, key)
		if err != nil {
			return nil, err
		}

		s.Cache.ForceCacheSet(sharedCtx, cacheKey, resp, s.Config.Checkout.IdempotencyTTL)
		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	if shared {
		s.Logger.Debugw("payment intent request joined an in-flight call", "idempotency_key", key)
	}
	return result.(*dto.PaymentIntentResponse), nil
}

// idempotencyKey returns the key sent to the provider and whether a response stored
// under it may be replayed. Derived keys cover the paying user and the billing country.
// Anonymous carts without a caller supplied key get a fresh key and are never replayed.
func (s *checkoutService) idempotencyKey(req *dto.CreatePaymentIntentRequest, b *billing) (string, bool) {
	if key := strings.TrimSpace(req.IdempotencyKey); key != "" {
		return key, true
	}
	if b.userID == "" {
		return types.GenerateUUIDWithPrefix(types.UUID_PREFIX_IDEMPOTENCY), false
	}
	return s.IdempotencyGenerator.GenerateKey(idempotency.ScopePaymentIntent, req.IdempotencyParams(b.userID, b.country)), true
}

func (s *checkoutService) createPaymentIntent(ctx context.Context, req *dto.CreatePaymentIntentRequest, b *billing, key string) (*dto.PaymentIntentResponse, error) {
	cart, err := s.priceCart(ctx, b, req.Items)
	if err != nil {
		return nil, err
	}

	decision := cart.decision
	if err := decision.Validate(); err != nil {
		s.Sentry.CaptureException(err)
		return nil, err
	}

	o := &order.Order{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER),
		Number:    types.GenerateShortIDWithPrefix(types.SHORT_ID_PREFIX_ORDER),
		UserID:    cart.userID,
		Country:   decision.Country,
		Currency:  decision.Currency,
		LineItems: cart.lines,
		Tax:       *decision,
		Status:    types.OrderStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	o.Metadata = req.Metadata.Merge(types.Metadata{
		"order_id":     o.ID,
		"order_number": o.Number,
		"country":      decision.Country,
		"tax_amount":   strconv.FormatInt(decision.TaxAmount, 10),
		"tax_rate":     decision.Rate.String(),
	})

	intent, err := s.Gateway.CreatePaymentIntent(ctx, &payment.IntentRequest{
		OrderID:        o.ID,
		Amount:         decision.TotalAmount,
		Currency:       decision.Currency,
		Description:    "Order " + o.Number,
		IdempotencyKey: key,
		Metadata:       o.Metadata,
	})
	if err != nil {
		s.Logger.Errorw("failed to create payment intent",
			"error", err,
			"order_id", o.ID,
			"provider", s.Gateway.Provider(),
			"amount", decision.TotalAmount,
			"currency", decision.Currency,
		)
		return nil, err
	}

	o.PaymentIntentID = intent.ID
	if err := s.OrderRepo.Create(ctx, o); err != nil {
		return nil, err
	}

	s.Logger.Infow("created payment intent",
		"order_id", o.ID,
		"order_number", o.Number,
		"payment_intent_id", intent.ID,
		"provider", intent.Provider,
		"country", o.Country,
		"currency", o.Currency,
		"total_amount", decision.TotalAmount,
	)

	// publishing is best effort once the order is stored
	if err := s.OrderPublisher.PublishOrderEvent(ctx, order.NewCreatedEvent(o)); err != nil {
		s.Logger.Errorw("failed to publish order created event", "error", err, "order_id", o.ID)
		s.Sentry.CaptureException(err)
	}

	return dto.NewPaymentIntentResponse(o, intent, key), nil
}

// resolveBilling picks the billing country. The user profile wins over the
// request country, which wins over the country hint of the request context.
func (s *checkoutService) resolveBilling(ctx context.Context, req *dto.CheckoutPreviewRequest) (*billing, error) {
	b := &billing{country: types.NormalizeCountry(countryOrHint(ctx, req.Country))}
	if req.UserID != "" {
		u, err := getUser(ctx, s.ServiceParams, req.UserID)
		if err != nil {
			return nil, err
		}
		b.userID = u.ID
		b.country = u.Country
	}
	return b, nil
}

// priceCart prices every line in the billing currency and runs tax once on the cart total
func (s *checkoutService) priceCart(ctx context.Context, b *billing, items []dto.CartItem) (*pricedCart, error) {
	cart := &pricedCart{userID: b.userID}
	currency := tax.CurrencyForCountry(b.country)

	var base int64
	for _, item := range items {
		p, err := getProduct(ctx, s.ServiceParams, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !p.Active {
			return nil, ierr.NewError("product is not available").
				WithHint("A product in your cart is no longer sold").
				WithReportableDetails(map[string]any{
					"product_id": p.ID,
				}).
				Mark(ierr.ErrInvalidOperation)
		}

		unit, err := basePrice(p, currency)
		if err != nil {
			return nil, err
		}

		if unit > 0 && item.Quantity > math.MaxInt64/unit {
			return nil, cartOverflowError(p.ID)
		}
		amount := unit * item.Quantity
		if amount > math.MaxInt64-base {
			return nil, cartOverflowError(p.ID)
		}
		base += amount

		cart.lines = append(cart.lines, order.LineItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  item.Quantity,
			UnitPrice: unit,
			Amount:    amount,
		})
	}

	decision, err := tax.Resolve(b.country, base)
	if err != nil {
		return nil, err
	}
	cart.decision = decision

	return cart, nil
}

func cartOverflowError(productID string) error {
	return ierr.NewError("cart total overflows").
		WithHint("Cart total is too large").
		WithReportableDetails(map[string]any{
			"product_id": productID,
		}).
		Mark(ierr.ErrInvalidAmount)
}
