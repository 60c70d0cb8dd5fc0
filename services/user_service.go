package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brainscript/db"
	"brainscript/internal/logger"
	"brainscript/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore loads and persists whole user documents
type UserStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByGoogleID(ctx context.Context, googleID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
}

// UserService runs every operation as load, mutate in memory, save.
// Saves are version checked so a concurrent writer yields ErrVersionConflict
// instead of silently losing an update.
type UserService struct {
	store   UserStore
	log     *logger.Logger
	timeout time.Duration
	now     func() time.Time
}

func NewUserService(store UserStore, log *logger.Logger, timeout time.Duration) *UserService {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &UserService{
		store:   store,
		log:     log,
		timeout: timeout,
		now:     time.Now,
	}
}

// SetClock replaces the time source, used by tests
func (s *UserService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *UserService) load(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.store.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return nil, notFound("User")
		}
		return nil, fmt.Errorf("load user %s: %w", id.Hex(), err)
	}
	return user, nil
}

func (s *UserService) save(ctx context.Context, user *models.User) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user.UpdatedAt = s.now()
	if err := s.store.Save(ctx, user); err != nil {
		if errors.Is(err, db.ErrUserNotFound) {
			return notFound("User")
		}
		return fmt.Errorf("save user %s: %w", user.ID.Hex(), err)
	}
	return nil
}

// mutate applies fn to a freshly loaded user and persists the result.
// If fn or the save fails, the in-memory changes are dropped.
func (s *UserService) mutate(ctx context.Context, id primitive.ObjectID, fn func(u *models.User, now time.Time) error) (*models.User, error) {
	user, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := fn(user, s.now()); err != nil {
		return nil, err
	}
	if err := s.save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get returns the stored user
func (s *UserService) Get(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.load(ctx, id)
}

// UpdateProfile changes the display name and, when given, the account type
func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, name, accountType string) (*models.User, error) {
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}
	kind := models.AccountType(accountType)
	if accountType != "" && !kind.Valid() {
		return nil, invalid("Invalid account type")
	}

	return s.mutate(ctx, id, func(u *models.User, _ time.Time) error {
		u.Name = name
		if accountType != "" {
			u.AccountType = kind
		}
		return nil
	})
}
