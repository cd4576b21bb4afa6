package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/recipebook/internal/client/models"
	"github.com/dmitrijs2005/recipebook/internal/client/repositories/kvstore"
	"github.com/dmitrijs2005/recipebook/internal/common"
)

// DraftService holds at most one recipe form that was submitted while logged
// out. A staged draft is handed out once by Consume.
type DraftService interface {
	Stage(ctx context.Context, d models.Draft) error
	Consume(ctx context.Context) (*models.Draft, error)
	Pending(ctx context.Context) (bool, error)
}

type draftService struct {
	store kvstore.Repository
}

// NewDraftService keeps the draft in the session-scoped store.
func NewDraftService(store kvstore.Repository) DraftService {
	return &draftService{store: store}
}

// Stage overwrites any previously staged draft.
func (s *draftService) Stage(ctx context.Context, d models.Draft) error {
	raw, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	if err := s.store.Set(ctx, common.DraftKey, raw); err != nil {
		return fmt.Errorf("stage draft: %w", err)
	}
	return nil
}

// Consume returns the staged draft and deletes it, or nil when there is none.
// An unreadable draft is deleted as well and reported as an error.
func (s *draftService) Consume(ctx context.Context) (*models.Draft, error) {
	raw, err := s.store.Get(ctx, common.DraftKey)
	if err != nil {
		return nil, fmt.Errorf("read draft: %w", err)
	}
	if raw == nil {
		return nil, nil
	}

	if err := s.store.Delete(ctx, common.DraftKey); err != nil {
		return nil, fmt.Errorf("delete draft: %w", err)
	}

	var d models.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("decode draft: %w", err)
	}
	return &d, nil
}

func (s *draftService) Pending(ctx context.Context) (bool, error) {
	raw, err := s.store.Get(ctx, common.DraftKey)
	if err != nil {
		return false, fmt.Errorf("read draft: %w", err)
	}
	return raw != nil, nil
}
