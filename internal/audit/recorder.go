package audit

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"caredocs/pkg/domain"
	"caredocs/pkg/requestcontext"
)

// Store persists the trail. Append-only; entries are never updated or removed.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByClient(ctx context.Context, clientID domain.ClientID) ([]Event, error)
}

// Recorder is the write-side seam services depend on.
type Recorder interface {
	Record(ctx context.Context, event Event) error
}

// StoreRecorder stamps and appends events to a Store.
type StoreRecorder struct {
	store Store
}

func NewRecorder(store Store) *StoreRecorder {
	return &StoreRecorder{store: store}
}

func (r *StoreRecorder) Record(ctx context.Context, event Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = requestcontext.Now(ctx)
	}
	if event.ActorID == "" {
		event.ActorID = requestcontext.ActorID(ctx)
	}
	return r.store.Append(ctx, event)
}

// Log records the event when a recorder is wired, logging rather than failing
// the caller's operation when the trail write itself fails. The mutation has
// already been accepted by its own store at this point.
func Log(ctx context.Context, logger *slog.Logger, recorder Recorder, event Event) {
	if recorder == nil {
		return
	}
	if err := recorder.Record(ctx, event); err != nil && logger != nil {
		logger.ErrorContext(ctx, "failed to record audit event",
			"action", event.Action,
			"client_id", event.ClientID,
			"error", err,
		)
	}
}
