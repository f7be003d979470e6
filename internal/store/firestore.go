package store

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/GregMSThompson/dashboard-layout/internal/errs"
	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

type firestoreStore struct {
	client *firestore.Client
}

func NewFirestoreStore(client *firestore.Client) *firestoreStore {
	return &firestoreStore{client: client}
}

func (s *firestoreStore) doc() *firestore.DocumentRef {
	return s.client.Collection("layout_stores").Doc(StateKey)
}

func (s *firestoreStore) Load(ctx context.Context) (*models.LayoutState, error) {
	doc, err := s.doc().Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errs.NewNotFoundError("layout state not found")
		}
		return nil, errs.NewDatabaseError("read", "failed to get layout state", err)
	}
	var env envelope
	if err := doc.DataTo(&env); err != nil {
		return nil, errs.NewValidationError("unreadable layout state: " + err.Error())
	}
	return env.upgrade(time.Now())
}

func (s *firestoreStore) Save(ctx context.Context, state models.LayoutState) error {
	if _, err := s.doc().Set(ctx, newEnvelope(state)); err != nil {
		return errs.NewDatabaseError("write", "failed to save layout state", err)
	}
	return nil
}
