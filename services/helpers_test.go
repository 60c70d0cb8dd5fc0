package services

import (
	"context"
	"testing"
	"time"

	"brainscript/db"
	"brainscript/internal/logger"
	"brainscript/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fixedNow is a whole second so BSON's millisecond dates round trip exactly
var fixedNow = time.Date(2024, time.March, 14, 15, 4, 5, 0, time.UTC)

type testClock struct{ now time.Time }

func (c *testClock) Now() time.Time          { return c.now }
func (c *testClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestService(t *testing.T) (*UserService, *db.MemoryUserStore, *testClock) {
	t.Helper()
	store := db.NewMemoryUserStore()
	clock := &testClock{now: fixedNow}
	svc := NewUserService(store, logger.Nop(), time.Second)
	svc.SetClock(clock.Now)
	return svc, store, clock
}

func seedUser(t *testing.T, store *db.MemoryUserStore) primitive.ObjectID {
	t.Helper()
	user := &models.User{
		GoogleID:    "google-" + primitive.NewObjectID().Hex(),
		Name:        "Ada Lovelace",
		Email:       primitive.NewObjectID().Hex() + "@example.com",
		AccountType: models.AccountLearner,
		CreatedAt:   fixedNow,
	}
	if err := store.Create(context.Background(), user); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return user.ID
}

func mustLoad(t *testing.T, store *db.MemoryUserStore, id primitive.ObjectID) *models.User {
	t.Helper()
	user, err := store.FindByID(context.Background(), id)
	if err != nil {
		t.Fatalf("load user: %v", err)
	}
	return user
}
