package contracts

import (
	"context"
	"time"

	"codexrfa-service/internal/app/models"
)

// SessionStore keeps per-session traversal state between advance steps.
// One session is exclusively owned by one caregiver; the store never
// serves concurrent advances for the same session ID by contract.
type SessionStore interface {
	SaveSession(ctx context.Context, session *models.TraversalSession, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (*models.TraversalSession, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Snapshot cache, keyed by form ID and version so in-flight sessions
	// keep observing the definition they pinned. GetSnapshot returns
	// (nil, nil) on a cache miss.
	SaveSnapshot(ctx context.Context, snapshot *models.FormSnapshot, ttl time.Duration) error
	GetSnapshot(ctx context.Context, formID string, version int64) (*models.FormSnapshot, error)
}
