package db

import (
	"context"
	"fmt"
	"sync"

	"brainscript/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryUserStore keeps users in process. Records are stored BSON encoded so
// callers never share memory with the store, the same as a real document
// database.
type MemoryUserStore struct {
	mu    sync.RWMutex
	users map[primitive.ObjectID][]byte
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[primitive.ObjectID][]byte)}
}

func decodeUser(raw []byte) (*models.User, error) {
	var user models.User
	if err := bson.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("decode user: %w", err)
	}
	return &user, nil
}

func (s *MemoryUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return decodeUser(raw)
}

func (s *MemoryUserStore) find(match func(*models.User) bool) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, raw := range s.users {
		user, err := decodeUser(raw)
		if err != nil {
			return nil, err
		}
		if match(user) {
			return user, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *MemoryUserStore) FindByGoogleID(_ context.Context, googleID string) (*models.User, error) {
	return s.find(func(u *models.User) bool { return u.GoogleID == googleID })
}

func (s *MemoryUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	return s.find(func(u *models.User) bool { return u.Email == email })
}

func (s *MemoryUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, raw := range s.users {
		existing, err := decodeUser(raw)
		if err != nil {
			return err
		}
		if existing.GoogleID == user.GoogleID || existing.Email == user.Email {
			return ErrDuplicateUser
		}
	}
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	user.Version = 1

	raw, err := bson.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	s.users[user.ID] = raw
	return nil
}

func (s *MemoryUserStore) Save(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, ok := s.users[user.ID]
	if !ok {
		return ErrUserNotFound
	}
	stored, err := decodeUser(raw)
	if err != nil {
		return err
	}
	if stored.Version != user.Version {
		return ErrVersionConflict
	}

	user.Version++
	next, err := bson.Marshal(user)
	if err != nil {
		user.Version--
		return fmt.Errorf("encode user: %w", err)
	}
	s.users[user.ID] = next
	return nil
}
