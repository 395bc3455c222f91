package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
)

// SessionTxManager scopes a function to a single MongoDB session
// transaction. Repository calls made with the session context join the
// transaction; an error from fn aborts it, nil commits it.
type SessionTxManager struct {
	client *mongo.Client
}

func NewSessionTxManager(client *mongo.Client) *SessionTxManager {
	return &SessionTxManager{client: client}
}

func (m *SessionTxManager) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	session, err := m.client.StartSession()
	if err != nil {
		return fmt.Errorf("start session: %w", err)
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		return nil, fn(sc)
	})
	return err
}
