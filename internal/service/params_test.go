package service

import (
	"github.com/flexprice/storefront/internal/testutil"
)

func newTestServiceParams(s *testutil.BaseServiceTestSuite) ServiceParams {
	stores := s.GetStores()
	return NewServiceParams(
		s.GetLogger(),
		s.GetConfig(),
		s.GetSentry(),
		s.GetCache(),
		stores.UserRepo,
		stores.ProductRepo,
		stores.OrderRepo,
		s.GetGateway(),
		s.GetIdempotencyGenerator(),
		s.GetPublisher(),
	)
}
