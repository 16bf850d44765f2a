package service

import (
	"context"
	"strings"

	"github.com/flexprice/storefront/internal/api/dto"
	"github.com/flexprice/storefront/internal/cache"
	"github.com/flexprice/storefront/internal/domain/tax"
	"github.com/flexprice/storefront/internal/domain/user"
	ierr "github.com/flexprice/storefront/internal/errors"
)

type UserService interface {
	Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error)
	Get(ctx context.Context, id string) (*dto.UserResponse, error)
}

type userService struct {
	ServiceParams
}

func NewUserService(params ServiceParams) UserService {
	return &userService{ServiceParams: params}
}

func (s *userService) Register(ctx context.Context, req *dto.RegisterUserRequest) (*dto.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u := req.ToUser()
	if err := s.UserRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	s.Logger.Infow("registered user",
		"user_id", u.ID,
		"country", u.Country,
	)

	return dto.NewUserResponse(u, tax.CurrencyForCountry(u.Country)), nil
}

func (s *userService) Get(ctx context.Context, id string) (*dto.UserResponse, error) {
	u, err := getUser(ctx, s.ServiceParams, id)
	if err != nil {
		return nil, err
	}
	return dto.NewUserResponse(u, tax.CurrencyForCountry(u.Country)), nil
}

// getUser loads a user through the cache. Users are never updated so entries do not go stale.
func getUser(ctx context.Context, params ServiceParams, id string) (*user.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ierr.NewError("user id is required").
			WithHint("User ID is required").
			Mark(ierr.ErrValidation)
	}

	key := cache.GenerateKey(cache.PrefixUser, id)
	if params.Cache != nil {
		if cached, found := params.Cache.Get(ctx, key); found {
			if u, ok := cached.(*user.User); ok {
				return u, nil
			}
		}
	}

	u, err := params.UserRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Cache != nil {
		params.Cache.Set(ctx, key, u, 0)
	}
	return u, nil
}
