package memory

import (
	"context"
	"strings"

	"github.com/flexprice/storefront/internal/domain/user"
	ierr "github.com/flexprice/storefront/internal/errors"
	"github.com/flexprice/storefront/internal/logger"
)

// UserStore implements user.Repository. Emails are unique, compared case-insensitively.
type UserStore struct {
	*Store[*user.User]
	logger *logger.Logger
}

var _ user.Repository = (*UserStore)(nil)

func NewUserStore(logger *logger.Logger) *UserStore {
	return &UserStore{
		Store:  NewStore[*user.User]("user"),
		logger: logger,
	}
}

func (s *UserStore) Create(ctx context.Context, u *user.User) error {
	if u == nil {
		return ierr.NewError("user cannot be nil").
			WithHint("User is required").
			Mark(ierr.ErrValidation)
	}

	// the email check and the insert are two steps, serialise them
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.items {
		if strings.EqualFold(existing.Email, u.Email) {
			return ierr.NewError("user already exists").
				WithHint("A user with this email already exists").
				WithReportableDetails(map[string]any{
					"email": u.Email,
				}).
				Mark(ierr.ErrAlreadyExists)
		}
	}
	if _, exists := s.items[u.ID]; exists {
		return ierr.NewError("user already exists").
			WithHint("A user with this id already exists").
			Mark(ierr.ErrAlreadyExists)
	}

	s.items[u.ID] = u
	s.logger.Debugw("created user", "user_id", u.ID, "country", u.Country)
	return nil
}

func (s *UserStore) GetByID(ctx context.Context, id string) (*user.User, error) {
	return s.Store.Get(ctx, id)
}

func (s *UserStore) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	u, ok := s.Find(ctx, func(_ context.Context, u *user.User) bool {
		return strings.EqualFold(u.Email, email)
	})
	if !ok {
		return nil, ierr.NewError("user not found").
			WithHint("User not found").
			Mark(ierr.ErrNotFound)
	}
	return u, nil
}
