package sessions

import (
	"context"
	"time"
)

// Repo stores sessions.
type Repo interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, id string) (Session, error)
	// Append adds turns in order and moves the expiry, as one step.
	Append(ctx context.Context, id string, expiresAt time.Time, turns ...Turn) (Session, error)
	Delete(ctx context.Context, id string) error
}
