package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"brainscript/db"
	"brainscript/models"
)

const (
	minNameLength = 2
	maxNameLength = 100
)

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// GoogleIdentity is what the OAuth provider tells us about the caller
type GoogleIdentity struct {
	Subject string
	Name    string
	Email   string
	Picture string
}

// LoginWithGoogle finds or creates the user for identity and counts the login
func (s *UserService) LoginWithGoogle(ctx context.Context, identity GoogleIdentity) (*models.User, error) {
	if identity.Subject == "" {
		return nil, invalid("missing identity subject")
	}

	lookupCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	user, err := s.store.FindByGoogleID(lookupCtx, identity.Subject)
	switch {
	case err == nil:
		ApplyLogin(user, s.now())
		if err := s.save(ctx, user); err != nil {
			return nil, err
		}
		return user, nil
	case errors.Is(err, db.ErrUserNotFound):
		return s.createUser(ctx, identity)
	default:
		return nil, fmt.Errorf("find user by google id: %w", err)
	}
}

func (s *UserService) createUser(ctx context.Context, identity GoogleIdentity) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(identity.Email))
	if !emailPattern.MatchString(email) {
		return nil, invalid("Please provide a valid email address")
	}
	name := strings.TrimSpace(identity.Name)
	if len([]rune(name)) < minNameLength {
		name = extractNameFromEmail(email)
	}
	name, err := validateName(name)
	if err != nil {
		return nil, err
	}

	now := s.now()
	user := &models.User{
		GoogleID:    identity.Subject,
		Name:        name,
		Email:       email,
		Picture:     identity.Picture,
		AccountType: models.AccountLearner,
		Stats:       models.Stats{TopicsCleared: []string{}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	ApplyLogin(user, now)

	createCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()
	if err := s.store.Create(createCtx, user); err != nil {
		if errors.Is(err, db.ErrDuplicateUser) {
			if s.log != nil {
				s.log.Warn("google login for an email owned by another account", "google_id", identity.Subject)
			}
			return nil, ErrEmailInUse
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	if s.log != nil {
		s.log.Info("created user", "user_id", user.ID.Hex())
	}
	return user, nil
}

func validateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("Name is required")
	}
	n := len([]rune(name))
	if n < minNameLength || n > maxNameLength {
		return "", invalid(fmt.Sprintf("Name must be between %d and %d characters", minNameLength, maxNameLength))
	}
	return name, nil
}

// extractNameFromEmail extracts the name from an email address
func extractNameFromEmail(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
