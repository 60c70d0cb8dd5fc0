package services

import (
	"context"
	"errors"
	"testing"

	"brainscript/db"
	"brainscript/models"
)

func TestLoginWithGoogleEmailOwnedByAnotherAccount(t *testing.T) {
	svc, store, _ := newTestService(t)
	ctx := context.Background()

	owner := &models.User{GoogleID: "g-owner", Name: "Owner", Email: "shared@example.com"}
	if err := store.Create(ctx, owner); err != nil {
		t.Fatalf("create owner: %v", err)
	}

	_, err := svc.LoginWithGoogle(ctx, GoogleIdentity{Subject: "g-other", Name: "Someone Else", Email: "Shared@Example.com"})
	if !errors.Is(err, ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
	if _, err := store.FindByGoogleID(ctx, "g-other"); !errors.Is(err, db.ErrUserNotFound) {
		t.Fatalf("no account should be created, got %v", err)
	}
	if got := mustLoad(t, store, owner.ID); got.GoogleID != "g-owner" || len(got.DailyActivity) != 0 {
		t.Fatalf("owner was modified: %+v", got)
	}
}
