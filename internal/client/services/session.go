package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipebook/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/recipebook/internal/common"
)

// SessionService manages the logged-in user identifier. It is a plain string
// compared by equality, not a credential.
type SessionService interface {
	CurrentUser(ctx context.Context) (string, error)
	Login(ctx context.Context, email string) error
	Logout(ctx context.Context) error
}

type sessionService struct {
	store kvstore.Repository
}

// NewSessionService keeps the identifier in the durable store.
func NewSessionService(store kvstore.Repository) SessionService {
	return &sessionService{store: store}
}

// CurrentUser returns "" when nobody is logged in.
func (s *sessionService) CurrentUser(ctx context.Context) (string, error) {
	v, err := s.store.Get(ctx, common.LoggedInUserKey)
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}
	return string(v), nil
}

func (s *sessionService) Login(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if err := s.store.Set(ctx, common.LoggedInUserKey, []byte(email)); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *sessionService) Logout(ctx context.Context) error {
	if err := s.store.Delete(ctx, common.LoggedInUserKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
