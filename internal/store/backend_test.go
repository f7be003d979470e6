package store

import (
	"context"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/redis/go-redis/v9"

	"github.com/GregMSThompson/dashboard-layout/internal/models"
)

type stateBackend interface {
	Load(ctx context.Context) (*models.LayoutState, error)
	Save(ctx context.Context, state models.LayoutState) error
}

func exerciseBackend(t *testing.T, s stateBackend) {
	t.Helper()
	ctx := context.Background()

	state := models.DefaultState(time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC))
	state.Layouts[0].Widgets[2].Enabled = false
	if err := s.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.CurrentLayoutID != state.CurrentLayoutID || len(got.Layouts) != 1 {
		t.Fatalf("unexpected state %+v", got)
	}
	if got.Layouts[0].Widgets[2].Enabled {
		t.Error("expected widget 2 disabled after round trip")
	}
}

func TestFirestoreStoreWithEmulator(t *testing.T) {
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	client, err := firestore.NewClient(context.Background(), "test-project")
	if err != nil {
		t.Fatalf("firestore client error: %v", err)
	}
	defer client.Close()

	exerciseBackend(t, NewFirestoreStore(client))
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	defer client.Close()

	s := NewRedisStore(client)
	s.key = StateKey + "-test"
	defer client.Del(context.Background(), s.key)

	exerciseBackend(t, s)
}
