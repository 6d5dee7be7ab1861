package catalog

import (
	"context"
	"time"
)

type ChangeKind string

const (
	ChangeSitter  ChangeKind = "sitter"
	ChangeRequest ChangeKind = "request"
)

// Change avisa que una entidad del catálogo cambió.
type Change struct {
	Kind       ChangeKind `json:"kind"`
	ID         string     `json:"id"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Notifier publica cambios del catálogo. Quien escucha recarga el Store.
type Notifier interface {
	Publish(ctx context.Context, c Change) error
}

// LocalNotifier refresca el Store en el mismo proceso (sin broker).
type LocalNotifier struct {
	store *Store
}

func NewLocalNotifier(store *Store) *LocalNotifier {
	return &LocalNotifier{store: store}
}

func (n *LocalNotifier) Publish(ctx context.Context, _ Change) error {
	n.store.Refresh(ctx)
	return nil
}
