package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"
)

// GoogleAuth drives the OAuth code flow against Google's OIDC provider
type GoogleAuth struct {
	verifier *oidc.IDTokenVerifier
	config   oauth2.Config
}

func NewGoogleAuth(ctx context.Context, issuer, clientID, clientSecret, redirectURL string) (*GoogleAuth, error) {
	provider, err := oidc.NewProvider(ctx, issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to init OIDC provider: %w", err)
	}

	return &GoogleAuth{
		verifier: provider.Verifier(&oidc.Config{ClientID: clientID}),
		config: oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Endpoint:     provider.Endpoint(),
			Scopes:       []string{oidc.ScopeOpenID, "profile", "email"},
		},
	}, nil
}

func (a *GoogleAuth) AuthCodeURL(state string) string {
	return a.config.AuthCodeURL(state)
}

// Identify exchanges the authorization code and returns the verified identity
func (a *GoogleAuth) Identify(ctx context.Context, code string) (GoogleIdentity, error) {
	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return GoogleIdentity{}, fmt.Errorf("failed to exchange token: %w", err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return GoogleIdentity{}, errors.New("token response has no id_token")
	}
	idToken, err := a.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return GoogleIdentity{}, fmt.Errorf("id token verification failed: %w", err)
	}

	var claims struct {
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := idToken.Claims(&claims); err != nil {
		return GoogleIdentity{}, fmt.Errorf("failed to decode id token claims: %w", err)
	}

	return GoogleIdentity{
		Subject: idToken.Subject,
		Name:    claims.Name,
		Email:   claims.Email,
		Picture: claims.Picture,
	}, nil
}
