package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/flexprice/storefront/internal/api/dto"
	"github.com/flexprice/storefront/internal/domain/order"
	"github.com/flexprice/storefront/internal/domain/payment"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/testutil"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type OrderServiceSuite struct {
	testutil.BaseServiceTestSuite
	service         OrderService
	checkoutService CheckoutService
	userService     UserService
	eventService    *orderEventService
}

func TestOrderService(t *testing.T) {
	suite.Run(t, new(OrderServiceSuite))
}

func (s *OrderServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	params := newTestServiceParams(&s.BaseServiceTestSuite)
	s.service = NewOrderService(params)
	s.checkoutService = NewCheckoutService(params)
	s.userService = NewUserService(params)
	s.eventService = NewOrderEventService(params, s.GetPubSub()).(*orderEventService)

	s.GetGateway().
		On("CreatePaymentIntent", mock.Anything, mock.Anything).
		Return(func(_ context.Context, req *payment.IntentRequest) *payment.Intent {
			return testutil.EchoIntent("pi_"+req.OrderID, req)
		}, nil).
		Maybe()
}

func (s *OrderServiceSuite) checkout(userID string, idempotencyKey string) *dto.PaymentIntentResponse {
	resp, err := s.checkoutService.CreatePaymentIntent(s.GetContext(), &dto.CreatePaymentIntentRequest{
		CheckoutPreviewRequest: dto.CheckoutPreviewRequest{
			UserID: userID,
			Items:  []dto.CartItem{{ProductID: "mesh-node", Quantity: 1}},
		},
		IdempotencyKey: idempotencyKey,
	})
	s.Require().NoError(err)
	return resp
}

func (s *OrderServiceSuite) TestGetAndListOrders() {
	user, err := s.userService.Register(s.GetContext(), &dto.RegisterUserRequest{
		Email:   "piet@example.com",
		Country: "NL",
	})
	s.Require().NoError(err)

	first := s.checkout(user.ID, "order-1")
	second := s.checkout(user.ID, "order-2")

	got, err := s.service.GetOrder(s.GetContext(), first.OrderID)
	s.NoError(err)
	s.Equal("NL", got.Country)
	s.Equal(int64(7990), got.BaseAmount)
	s.Equal(int64(1678), got.TaxAmount)
	s.Equal("VAT (21%)", got.TaxLabel)

	list, err := s.service.ListUserOrders(s.GetContext(), user.ID)
	s.NoError(err)
	s.Equal(2, list.Total)
	ids := []string{list.Items[0].ID, list.Items[1].ID}
	s.ElementsMatch([]string{first.OrderID, second.OrderID}, ids)
}

func (s *OrderServiceSuite) TestErrors() {
	_, err := s.service.GetOrder(s.GetContext(), "ord_missing")
	s.True(ierr.IsNotFound(err))

	_, err = s.service.ListUserOrders(s.GetContext(), "user_missing")
	s.True(ierr.IsNotFound(err))
}

func (s *OrderServiceSuite) TestOrderEventHandler() {
	user, err := s.userService.Register(s.GetContext(), &dto.RegisterUserRequest{
		Email:   "eva@example.com",
		Country: "AT",
	})
	s.Require().NoError(err)
	s.checkout(user.ID, "order-events-1")

	messages := s.GetPubSub().Messages(s.GetConfig().Checkout.EventTopic)
	s.Require().Len(messages, 1)
	s.NoError(s.eventService.processMessage(messages[0]))

	// malformed payloads are dropped, not retried
	bad := messages[0].Copy()
	bad.Payload = []byte("{not json")
	s.NoError(s.eventService.processMessage(bad))

	// an event for an order the store does not know is retried
	payload, err := json.Marshal(&order.Event{
		ID:        "evt_orphan",
		EventName: order.EventOrderCreated,
		OrderID:   "ord_missing",
	})
	s.Require().NoError(err)
	s.Error(s.eventService.processMessage(message.NewMessage("evt_orphan", payload)))
}
