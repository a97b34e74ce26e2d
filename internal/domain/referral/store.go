package referral

import (
	"context"
	"errors"
	"time"
)

var ErrDraftNotFound = errors.New("referral draft not found")

// DraftStore holds in-progress wizard drafts keyed by draft id. Drafts expire
// on their own; submission deletes them explicitly.
type DraftStore interface {
	Save(ctx context.Context, id string, state DraftState, ttl time.Duration) error
	Get(ctx context.Context, id string) (DraftState, error)
	Delete(ctx context.Context, id string) error
}
